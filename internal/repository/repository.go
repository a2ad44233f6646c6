// Package repository defines the storage contracts the seeding pipeline
// writes through. Implementations live in the postgres subpackage.
package repository

import (
	"context"

	"github.com/utafrali/priceradar/internal/domain"
)

// ProductRepository stores catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Clear(ctx context.Context) (int64, error)
}

// PlatformPriceRepository stores per-marketplace listings.
type PlatformPriceRepository interface {
	Create(ctx context.Context, pp *domain.PlatformPrice) error
	Clear(ctx context.Context) (int64, error)
}

// PriceHistoryRepository is the batch persister for daily price
// observations. Add buffers a record and flushes automatically when the
// batch threshold is reached; Flush commits any remaining partial batch.
// Each flush is a single all-or-nothing transaction.
type PriceHistoryRepository interface {
	Add(ctx context.Context, rec domain.PriceHistoryRecord) error
	Flush(ctx context.Context) error
	Total() int64
	Clear(ctx context.Context) (int64, error)
}

// FestivalRepository stores festival reference rows.
type FestivalRepository interface {
	Create(ctx context.Context, f *domain.FestivalPeriod) error
	Clear(ctx context.Context) (int64, error)
}

// PlanRepository stores subscription plan and promo code reference rows.
type PlanRepository interface {
	CreatePlan(ctx context.Context, p *domain.Plan) error
	CreatePromoCode(ctx context.Context, pc *domain.PromoCode) error
	ClearPlans(ctx context.Context) (int64, error)
	ClearPromoCodes(ctx context.Context) (int64, error)
}
