package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

// PlatformPriceRepository implements repository.PlatformPriceRepository using
// PostgreSQL.
type PlatformPriceRepository struct {
	db database.DBTX
}

// NewPlatformPriceRepository creates a new PostgreSQL-backed platform price
// repository.
func NewPlatformPriceRepository(db database.DBTX) *PlatformPriceRepository {
	return &PlatformPriceRepository{db: db}
}

// Create inserts a new platform listing into the database.
func (r *PlatformPriceRepository) Create(ctx context.Context, pp *domain.PlatformPrice) error {
	query := `
		INSERT INTO platform_prices (
			id, product_id, platform, current_price, original_price,
			availability, rating, review_count, product_url, affiliate_url,
			last_checked
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		pp.ID,
		pp.ProductID,
		pp.Platform,
		pp.CurrentPrice,
		pp.OriginalPrice,
		pp.Availability,
		pp.Rating,
		pp.ReviewCount,
		pp.ProductURL,
		pp.AffiliateURL,
		pp.LastChecked,
	)
	if err != nil {
		return fmt.Errorf("insert platform price: %w", err)
	}

	return nil
}

// Clear deletes all platform listings and returns the number of rows removed.
func (r *PlatformPriceRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM platform_prices`)
	if err != nil {
		return 0, fmt.Errorf("clear platform prices: %w", err)
	}

	return tag.RowsAffected(), nil
}
