package pricegen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/internal/festival"
)

// dailyTrend is the constant daily drift applied to every series, modeling
// gradual depreciation.
const dailyTrend = -0.002

// Series identifies one (product, platform) pair whose history is walked.
// CurrentPrice is today's known listing price the walk is calibrated around.
type Series struct {
	ProductID    string
	Platform     domain.Platform
	CurrentPrice int64
}

// Generator walks a bounded random walk per series, one observation per
// calendar day, modulated by festival discounts.
//
// State carry: the carried walk state is the clamped, pre-festival price.
// Clamping feeds back so the walk cannot drift outside its band; festival
// discounts apply to the emitted observation only, so prices recover once a
// sale window closes. Rounding happens only at emission.
type Generator struct {
	rng      *rand.Rand
	calendar *festival.Calendar
}

// NewGenerator creates a trajectory generator drawing from the given random
// source and consulting the given festival calendar.
func NewGenerator(rng *rand.Rand, calendar *festival.Calendar) *Generator {
	return &Generator{rng: rng, calendar: calendar}
}

// Walk produces one price observation per calendar day over the inclusive
// [start, end] range, earliest to latest, recorded at noon UTC. The walk
// starts 5-20% above today's current price and stays within
// [0.70 x current, 1.10 x starting].
func (g *Generator) Walk(series Series, start, end time.Time) ([]domain.PriceHistoryRecord, error) {
	if series.CurrentPrice <= 0 {
		return nil, fmt.Errorf("series %s/%s: current price must be positive, got %d",
			series.ProductID, series.Platform, series.CurrentPrice)
	}

	startDay := dateOnly(start)
	endDay := dateOnly(end)
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("series %s/%s: end %s before start %s",
			series.ProductID, series.Platform, endDay.Format("2006-01-02"), startDay.Format("2006-01-02"))
	}

	current := float64(series.CurrentPrice)
	startingPrice := current * g.uniform(1.05, 1.20)
	volatility := g.uniform(0.015, 0.030)

	floor := current * 0.70
	ceil := startingPrice * 1.10

	records := make([]domain.PriceHistoryRecord, 0, int(endDay.Sub(startDay).Hours()/24)+1)

	price := startingPrice
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		change := g.uniform(-volatility, volatility)
		price *= 1 + change + dailyTrend
		price = clamp(price, floor, ceil)

		observed := price
		if discount := g.calendar.DiscountFor(day); discount > 0 {
			observed = clamp(price*(1-discount), floor, ceil)
		}

		records = append(records, domain.PriceHistoryRecord{
			ID:         uuid.NewString(),
			ProductID:  series.ProductID,
			Platform:   series.Platform,
			Price:      int64(math.Round(observed)),
			RecordedAt: time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC),
		})
	}

	return records, nil
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + (max-min)*g.rng.Float64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
