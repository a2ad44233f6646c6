package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidCategories_ContainsAll(t *testing.T) {
	expected := []string{
		CategorySmartphones, CategoryLaptops, CategoryAudio,
		CategoryWearables, CategoryCameras, CategoryTVs, CategoryHome,
	}
	assert.ElementsMatch(t, expected, ValidCategories())
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories() {
		assert.True(t, IsValidCategory(c), "expected %q to be valid", c)
	}
	assert.False(t, IsValidCategory("gadgets"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Smartphones"))
}

func TestValidPlatforms_EightMarketplaces(t *testing.T) {
	assert.Len(t, ValidPlatforms(), 8)
}

func TestIsValidPlatform(t *testing.T) {
	for _, p := range ValidPlatforms() {
		assert.True(t, IsValidPlatform(p), "expected %q to be valid", p)
	}
	assert.False(t, IsValidPlatform("ebay"))
	assert.False(t, IsValidPlatform(""))
}

func TestPlatform_Domain(t *testing.T) {
	assert.Equal(t, "www.amazon.in", PlatformAmazon.Domain())
	assert.Equal(t, "www.flipkart.com", PlatformFlipkart.Domain())
	// Unknown platforms fall back to the raw identifier.
	assert.Equal(t, "ebay", Platform("ebay").Domain())
}

func TestIsValidAvailability(t *testing.T) {
	assert.True(t, IsValidAvailability(AvailabilityInStock))
	assert.True(t, IsValidAvailability(AvailabilityLimited))
	assert.True(t, IsValidAvailability(AvailabilityOutOfStock))
	assert.False(t, IsValidAvailability("backorder"))
	assert.False(t, IsValidAvailability(""))
}

func TestFestivalPeriod_Contains(t *testing.T) {
	f := FestivalPeriod{
		Name:         "Diwali Sale",
		StartDate:    time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		PeakDiscount: 0.30,
	}

	assert.True(t, f.Contains(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)), "start date is inclusive")
	assert.True(t, f.Contains(time.Date(2025, 11, 3, 23, 59, 0, 0, time.UTC)), "end date is inclusive")
	assert.True(t, f.Contains(time.Date(2025, 10, 28, 12, 0, 0, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)))
}

func TestFestivalPeriod_Contains_IgnoresTimeOfDay(t *testing.T) {
	f := FestivalPeriod{
		StartDate: time.Date(2025, 8, 12, 18, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 16, 6, 0, 0, 0, time.UTC),
	}
	// Midnight on the boundary days still counts.
	assert.True(t, f.Contains(time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.Contains(time.Date(2025, 8, 16, 23, 0, 0, 0, time.UTC)))
}
