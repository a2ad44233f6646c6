// Package postgres implements the repository contracts on PostgreSQL via
// pgx. Repositories take the database.DBTX interface so tests can swap in a
// pgxmock pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, name, brand, category)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Brand, p.Category)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// Clear deletes all products and returns the number of rows removed.
func (r *ProductRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("clear products: %w", err)
	}

	return tag.RowsAffected(), nil
}
