package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

func setupProductRepo(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewProductRepository(mock)
	return repo, mock
}

func sampleDBProduct() *domain.Product {
	return &domain.Product{
		ID:       "prd-001",
		Name:     "iPhone 15 Pro Max",
		Brand:    "Apple",
		Category: domain.CategorySmartphones,
	}
}

func TestProductRepository_Create(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	p := sampleDBProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.Brand, p.Category).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_DBError(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	p := sampleDBProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.Brand, p.Category).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), p)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Clear(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM products").
		WillReturnResult(pgxmock.NewResult("DELETE", 31))

	removed, err := repo.Clear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(31), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Clear_DBError(t *testing.T) {
	repo, mock := setupProductRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM products").
		WillReturnError(errors.New("permission denied"))

	_, err := repo.Clear(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
