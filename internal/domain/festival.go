package domain

import "time"

// FestivalPeriod is a named seasonal sale window with an associated peak
// discount fraction. Start and end dates are inclusive calendar dates.
// Read-only reference data.
type FestivalPeriod struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	PeakDiscount float64   `json:"peak_discount"`
}

// Contains reports whether the given date falls inside the period's
// inclusive [StartDate, EndDate] window. Only the calendar date matters.
func (f FestivalPeriod) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(f.StartDate.Year(), f.StartDate.Month(), f.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(f.EndDate.Year(), f.EndDate.Month(), f.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
