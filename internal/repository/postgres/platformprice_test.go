package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/database"
)

func setupPlatformPriceRepo(t *testing.T) (*PlatformPriceRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewPlatformPriceRepository(mock)
	return repo, mock
}

func samplePlatformPrice() *domain.PlatformPrice {
	return &domain.PlatformPrice{
		ID:            "pp-001",
		ProductID:     "prd-001",
		Platform:      domain.PlatformAmazon,
		CurrentPrice:  152000,
		OriginalPrice: 159900,
		Availability:  domain.AvailabilityInStock,
		Rating:        4.6,
		ReviewCount:   2310,
		ProductURL:    "https://www.amazon.in/product/apple-iphone-15-pro-max",
		AffiliateURL:  "https://www.amazon.in/product/apple-iphone-15-pro-max?tag=priceradar&utm_source=amazon",
		LastChecked:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPlatformPriceRepository_Create(t *testing.T) {
	repo, mock := setupPlatformPriceRepo(t)
	defer mock.Close()

	pp := samplePlatformPrice()
	mock.ExpectExec("INSERT INTO platform_prices").
		WithArgs(
			pp.ID, pp.ProductID, pp.Platform, pp.CurrentPrice, pp.OriginalPrice,
			pp.Availability, pp.Rating, pp.ReviewCount, pp.ProductURL,
			pp.AffiliateURL, pp.LastChecked,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), pp)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlatformPriceRepository_Create_DBError(t *testing.T) {
	repo, mock := setupPlatformPriceRepo(t)
	defer mock.Close()

	pp := samplePlatformPrice()
	mock.ExpectExec("INSERT INTO platform_prices").
		WithArgs(
			pp.ID, pp.ProductID, pp.Platform, pp.CurrentPrice, pp.OriginalPrice,
			pp.Availability, pp.Rating, pp.ReviewCount, pp.ProductURL,
			pp.AffiliateURL, pp.LastChecked,
		).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), pp)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlatformPriceRepository_Clear(t *testing.T) {
	repo, mock := setupPlatformPriceRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM platform_prices").
		WillReturnResult(pgxmock.NewResult("DELETE", 154))

	removed, err := repo.Clear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(154), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
