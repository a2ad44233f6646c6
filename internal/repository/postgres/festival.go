package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

// FestivalRepository implements repository.FestivalRepository using
// PostgreSQL.
type FestivalRepository struct {
	db database.DBTX
}

// NewFestivalRepository creates a new PostgreSQL-backed festival repository.
func NewFestivalRepository(db database.DBTX) *FestivalRepository {
	return &FestivalRepository{db: db}
}

// Create inserts a new festival period into the database.
func (r *FestivalRepository) Create(ctx context.Context, f *domain.FestivalPeriod) error {
	query := `
		INSERT INTO festivals (id, name, start_date, end_date, peak_discount)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, f.ID, f.Name, f.StartDate, f.EndDate, f.PeakDiscount)
	if err != nil {
		return fmt.Errorf("insert festival: %w", err)
	}

	return nil
}

// Clear deletes all festival periods and returns the number of rows removed.
func (r *FestivalRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM festivals`)
	if err != nil {
		return 0, fmt.Errorf("clear festivals: %w", err)
	}

	return tag.RowsAffected(), nil
}
