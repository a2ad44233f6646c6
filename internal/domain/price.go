package domain

import "time"

// Availability constants for a marketplace listing.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityLimited    = "limited"
	AvailabilityOutOfStock = "out_of_stock"
)

// PlatformPrice represents one marketplace listing of one product. Prices are
// integer currency units. Invariant: CurrentPrice <= OriginalPrice.
type PlatformPrice struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Platform      Platform  `json:"platform"`
	CurrentPrice  int64     `json:"current_price"`
	OriginalPrice int64     `json:"original_price"`
	Availability  string    `json:"availability"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	ProductURL    string    `json:"product_url"`
	AffiliateURL  string    `json:"affiliate_url"`
	LastChecked   time.Time `json:"last_checked"`
}

// PriceHistoryRecord is one daily price observation for a (product, platform)
// pair. RecordedAt is the observation date at noon UTC.
type PriceHistoryRecord struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Platform   Platform  `json:"platform"`
	Price      int64     `json:"price"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ValidAvailabilities returns the set of valid availability states.
func ValidAvailabilities() []string {
	return []string{
		AvailabilityInStock,
		AvailabilityLimited,
		AvailabilityOutOfStock,
	}
}

// IsValidAvailability checks whether the given state is a valid availability value.
func IsValidAvailability(a string) bool {
	for _, v := range ValidAvailabilities() {
		if v == a {
			return true
		}
	}
	return false
}
