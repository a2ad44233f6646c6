package domain

// Product category constants.
const (
	CategorySmartphones = "smartphones"
	CategoryLaptops     = "laptops"
	CategoryAudio       = "audio"
	CategoryWearables   = "wearables"
	CategoryCameras     = "cameras"
	CategoryTVs         = "tvs"
	CategoryHome        = "home"
)

// Product represents one immutable catalog entry. Products are defined once
// at catalog-load time and never mutated by the seeding pipeline.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{
		CategorySmartphones,
		CategoryLaptops,
		CategoryAudio,
		CategoryWearables,
		CategoryCameras,
		CategoryTVs,
		CategoryHome,
	}
}

// IsValidCategory checks whether the given category string is a valid product category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}
