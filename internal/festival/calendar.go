// Package festival defines the recurring seasonal sale windows and the
// discount lookup the price trajectory generator consults per date.
package festival

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/slug"
)

// Window is an annual sale window expressed as month/day boundaries,
// materialized for a concrete year on lookup. Windows must not cross the
// year boundary.
type Window struct {
	Name         string
	StartMonth   time.Month
	StartDay     int
	EndMonth     time.Month
	EndDay       int
	PeakDiscount float64
}

// DefaultWindows returns the built-in sale calendar.
func DefaultWindows() []Window {
	return []Window{
		{Name: "Republic Day Sale", StartMonth: time.January, StartDay: 24, EndMonth: time.January, EndDay: 26, PeakDiscount: 0.25},
		{Name: "Summer Sale", StartMonth: time.May, StartDay: 10, EndMonth: time.May, EndDay: 16, PeakDiscount: 0.20},
		{Name: "Monsoon Sale", StartMonth: time.July, StartDay: 15, EndMonth: time.July, EndDay: 20, PeakDiscount: 0.22},
		{Name: "Independence Day Sale", StartMonth: time.August, StartDay: 12, EndMonth: time.August, EndDay: 16, PeakDiscount: 0.25},
		{Name: "Big Billion Days", StartMonth: time.October, StartDay: 1, EndMonth: time.October, EndDay: 8, PeakDiscount: 0.28},
		{Name: "Diwali Sale", StartMonth: time.October, StartDay: 20, EndMonth: time.November, EndDay: 3, PeakDiscount: 0.30},
		{Name: "Year End Sale", StartMonth: time.December, StartDay: 20, EndMonth: time.December, EndDay: 30, PeakDiscount: 0.25},
	}
}

// Calendar answers discount lookups for arbitrary dates.
type Calendar struct {
	windows []Window
	rng     *rand.Rand
}

// NewCalendar creates a calendar over the default sale windows using the
// given random source for realized-discount draws.
func NewCalendar(rng *rand.Rand) *Calendar {
	return NewCalendarWithWindows(rng, DefaultWindows())
}

// NewCalendarWithWindows creates a calendar over a custom window set.
func NewCalendarWithWindows(rng *rand.Rand, windows []Window) *Calendar {
	return &Calendar{windows: windows, rng: rng}
}

// DiscountFor returns the realized discount fraction for the given date:
// 0 outside all sale windows; inside one, peak × uniform(0.5, 1.0),
// independently redrawn per call. When windows overlap, the highest peak
// discount wins (deliberate: replaces list-order dependence with a
// deterministic resolution rule).
func (c *Calendar) DiscountFor(date time.Time) float64 {
	peak := 0.0
	for _, w := range c.windows {
		if w.materialize(date.Year()).Contains(date) && w.PeakDiscount > peak {
			peak = w.PeakDiscount
		}
	}
	if peak == 0 {
		return 0
	}
	return peak * (0.5 + 0.5*c.rng.Float64())
}

// Periods materializes every window for the given year as reference rows for
// the festivals table. Row IDs are stable slugs of the name and year so
// re-seeding the same year produces the same IDs.
func (c *Calendar) Periods(year int) []domain.FestivalPeriod {
	out := make([]domain.FestivalPeriod, 0, len(c.windows))
	for _, w := range c.windows {
		p := w.materialize(year)
		p.ID = slug.Generate(fmt.Sprintf("%s %d", w.Name, year))
		out = append(out, p)
	}
	return out
}

func (w Window) materialize(year int) domain.FestivalPeriod {
	return domain.FestivalPeriod{
		Name:         w.Name,
		StartDate:    time.Date(year, w.StartMonth, w.StartDay, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(year, w.EndMonth, w.EndDay, 0, 0, 0, 0, time.UTC),
		PeakDiscount: w.PeakDiscount,
	}
}
