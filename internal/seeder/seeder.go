// Package seeder orchestrates the full database seeding run: clearing old
// rows, then writing products, platform listings, price history, festivals,
// and subscription reference data in dependency order.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/priceradar/internal/catalog"
	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/internal/festival"
	"github.com/utafrali/priceradar/internal/pricegen"
	"github.com/utafrali/priceradar/internal/repository"
)

// StageResult records the outcome of one seeding stage.
type StageResult struct {
	Name     string
	Rows     int64
	Duration time.Duration
}

// Summary aggregates the per-stage results of a completed run.
type Summary struct {
	Stages   []StageResult
	Duration time.Duration
}

// Deps bundles everything a Seeder needs. All fields are required except
// HistoryMonths, which defaults to six.
type Deps struct {
	Logger      *slog.Logger
	Rules       *catalog.Rules
	Synthesizer *pricegen.Synthesizer
	Generator   *pricegen.Generator
	Calendar    *festival.Calendar

	Products       repository.ProductRepository
	PlatformPrices repository.PlatformPriceRepository
	History        repository.PriceHistoryRepository
	Festivals      repository.FestivalRepository
	Plans          repository.PlanRepository

	HistoryMonths int
}

// Seeder runs the seeding pipeline. A run either completes every stage or
// stops at the first failure; stages are not retried.
type Seeder struct {
	deps Deps
	now  func() time.Time

	// series carries the synthesized listings from the platform price stage
	// to the history stage, so each walk is calibrated to the current_price
	// actually stored for that (product, platform) pair.
	series []pricegen.Series
}

// New creates a seeder from its dependencies.
func New(deps Deps) *Seeder {
	if deps.HistoryMonths <= 0 {
		deps.HistoryMonths = 6
	}
	return &Seeder{deps: deps, now: time.Now}
}

// Run executes all stages in order and returns the per-stage summary. On
// failure it returns the summary of the stages completed so far alongside the
// error.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	started := s.now()
	summary := &Summary{}

	stages := []struct {
		name string
		fn   func(context.Context) (int64, error)
	}{
		{"clear", s.clear},
		{"products", s.seedProducts},
		{"platform_prices", s.seedPlatformPrices},
		{"price_history", s.seedPriceHistory},
		{"festivals", s.seedFestivals},
		{"plans", s.seedPlans},
	}

	for _, stage := range stages {
		stageStart := s.now()
		rows, err := stage.fn(ctx)
		elapsed := s.now().Sub(stageStart)
		if err != nil {
			summary.Duration = s.now().Sub(started)
			return summary, fmt.Errorf("stage %s: %w", stage.name, err)
		}

		summary.Stages = append(summary.Stages, StageResult{
			Name:     stage.name,
			Rows:     rows,
			Duration: elapsed,
		})
		s.deps.Logger.Info("stage completed",
			slog.String("stage", stage.name),
			slog.Int64("rows", rows),
			slog.Duration("duration", elapsed),
		)
	}

	summary.Duration = s.now().Sub(started)
	return summary, nil
}

// clear removes existing rows, children before parents.
func (s *Seeder) clear(ctx context.Context) (int64, error) {
	var total int64

	steps := []struct {
		name string
		fn   func(context.Context) (int64, error)
	}{
		{"price_history", s.deps.History.Clear},
		{"platform_prices", s.deps.PlatformPrices.Clear},
		{"products", s.deps.Products.Clear},
		{"festivals", s.deps.Festivals.Clear},
		{"promo_codes", s.deps.Plans.ClearPromoCodes},
		{"plans", s.deps.Plans.ClearPlans},
	}
	for _, step := range steps {
		removed, err := step.fn(ctx)
		if err != nil {
			return total, fmt.Errorf("clear %s: %w", step.name, err)
		}
		total += removed
	}

	return total, nil
}

func (s *Seeder) seedProducts(ctx context.Context) (int64, error) {
	products, err := catalog.Load()
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	for i := range products {
		if err := s.deps.Products.Create(ctx, &products[i]); err != nil {
			return int64(i), err
		}
	}

	return int64(len(products)), nil
}

func (s *Seeder) seedPlatformPrices(ctx context.Context) (int64, error) {
	products, err := catalog.Load()
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	s.series = s.series[:0]

	var rows int64
	for _, p := range products {
		assignment, err := s.deps.Rules.Assign(p)
		if err != nil {
			return rows, err
		}

		for _, platform := range assignment.Platforms {
			pp, err := s.deps.Synthesizer.Synthesize(p, platform, assignment.BasePrice)
			if err != nil {
				return rows, err
			}
			if err := s.deps.PlatformPrices.Create(ctx, &pp); err != nil {
				return rows, err
			}
			s.series = append(s.series, pricegen.Series{
				ProductID:    pp.ProductID,
				Platform:     pp.Platform,
				CurrentPrice: pp.CurrentPrice,
			})
			rows++
		}
	}

	return rows, nil
}

func (s *Seeder) seedPriceHistory(ctx context.Context) (int64, error) {
	end := s.now().UTC()
	start := end.AddDate(0, -s.deps.HistoryMonths, 0)

	for _, series := range s.series {
		records, err := s.deps.Generator.Walk(series, start, end)
		if err != nil {
			return s.deps.History.Total(), err
		}
		for _, rec := range records {
			if err := s.deps.History.Add(ctx, rec); err != nil {
				return s.deps.History.Total(), err
			}
		}
	}

	if err := s.deps.History.Flush(ctx); err != nil {
		return s.deps.History.Total(), err
	}

	return s.deps.History.Total(), nil
}

func (s *Seeder) seedFestivals(ctx context.Context) (int64, error) {
	periods := s.deps.Calendar.Periods(s.now().UTC().Year())

	for i := range periods {
		if err := s.deps.Festivals.Create(ctx, &periods[i]); err != nil {
			return int64(i), err
		}
	}

	return int64(len(periods)), nil
}

func (s *Seeder) seedPlans(ctx context.Context) (int64, error) {
	var rows int64

	plans := defaultPlans()
	for i := range plans {
		if err := s.deps.Plans.CreatePlan(ctx, &plans[i]); err != nil {
			return rows, err
		}
		rows++
	}

	promos := defaultPromoCodes(s.now().UTC())
	for i := range promos {
		if err := s.deps.Plans.CreatePromoCode(ctx, &promos[i]); err != nil {
			return rows, err
		}
		rows++
	}

	return rows, nil
}

func defaultPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:            "plan-free",
			Name:          "Free",
			Price:         0,
			BillingPeriod: domain.BillingPeriodMonthly,
			Features:      []string{"track_5_products", "daily_price_check", "email_alerts"},
		},
		{
			ID:            "plan-premium",
			Name:          "Premium",
			Price:         299,
			BillingPeriod: domain.BillingPeriodMonthly,
			Features:      []string{"unlimited_tracking", "hourly_price_check", "instant_alerts", "price_history_charts"},
		},
		{
			ID:            "plan-premium-annual",
			Name:          "Premium Annual",
			Price:         2999,
			BillingPeriod: domain.BillingPeriodYearly,
			Features:      []string{"unlimited_tracking", "hourly_price_check", "instant_alerts", "price_history_charts", "deal_forecasts"},
		},
	}
}

func defaultPromoCodes(now time.Time) []domain.PromoCode {
	return []domain.PromoCode{
		{
			ID:              uuid.NewString(),
			Code:            "WELCOME10",
			DiscountPercent: 10,
			ValidUntil:      now.AddDate(1, 0, 0),
			PlanID:          "plan-premium",
		},
		{
			ID:              uuid.NewString(),
			Code:            "FESTIVE25",
			DiscountPercent: 25,
			ValidUntil:      now.AddDate(0, 3, 0),
			PlanID:          "plan-premium",
		},
		{
			ID:              uuid.NewString(),
			Code:            "ANNUAL20",
			DiscountPercent: 20,
			ValidUntil:      now.AddDate(1, 0, 0),
			PlanID:          "plan-premium-annual",
		},
	}
}
