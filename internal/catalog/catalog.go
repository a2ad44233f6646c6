// Package catalog holds the fixed product catalog the seeding pipeline
// populates the store from, together with the rule tables that decide which
// marketplaces carry a product and at what base price.
package catalog

import (
	"fmt"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/validator"
)

// productEntry mirrors domain.Product with validation tags so malformed
// catalog entries fail loudly at load time instead of producing bad rows.
type productEntry struct {
	ID       string `validate:"required"`
	Name     string `validate:"required"`
	Brand    string `validate:"required"`
	Category string `validate:"required"`
}

// The tracked catalog. IDs are stable across re-seeds so history rows remain
// joinable between runs.
var products = []productEntry{
	// Smartphones
	{"prd-001", "iPhone 15 Pro Max", "Apple", domain.CategorySmartphones},
	{"prd-002", "Galaxy S24 Ultra", "Samsung", domain.CategorySmartphones},
	{"prd-003", "Pixel 8 Pro", "Google", domain.CategorySmartphones},
	{"prd-004", "OnePlus 12R", "OnePlus", domain.CategorySmartphones},
	{"prd-005", "Redmi Note 13", "Xiaomi", domain.CategorySmartphones},
	{"prd-006", "Galaxy M34 5G", "Samsung", domain.CategorySmartphones},
	{"prd-007", "Moto G84 5G", "Motorola", domain.CategorySmartphones},
	// Laptops
	{"prd-008", "MacBook Pro 14", "Apple", domain.CategoryLaptops},
	{"prd-009", "MacBook Air M3", "Apple", domain.CategoryLaptops},
	{"prd-010", "XPS 13", "Dell", domain.CategoryLaptops},
	{"prd-011", "Pavilion 15", "HP", domain.CategoryLaptops},
	{"prd-012", "IdeaPad Slim 3", "Lenovo", domain.CategoryLaptops},
	{"prd-013", "ROG Strix G16 Gaming", "ASUS", domain.CategoryLaptops},
	// Audio
	{"prd-014", "WH-1000XM5", "Sony", domain.CategoryAudio},
	{"prd-015", "AirPods Pro 2", "Apple", domain.CategoryAudio},
	{"prd-016", "QuietComfort Ultra", "Bose", domain.CategoryAudio},
	{"prd-017", "Tune 770NC", "JBL", domain.CategoryAudio},
	{"prd-018", "Rockerz 450", "boAt", domain.CategoryAudio},
	// Wearables
	{"prd-019", "Apple Watch Ultra 2", "Apple", domain.CategoryWearables},
	{"prd-020", "Galaxy Watch 6", "Samsung", domain.CategoryWearables},
	{"prd-021", "Mi Smart Band 8", "Xiaomi", domain.CategoryWearables},
	{"prd-022", "ColorFit Icon 3", "Noise", domain.CategoryWearables},
	// Cameras
	{"prd-023", "Alpha 7 IV", "Sony", domain.CategoryCameras},
	{"prd-024", "EOS R50", "Canon", domain.CategoryCameras},
	{"prd-025", "Hero 12 Black", "GoPro", domain.CategoryCameras},
	// TVs
	{"prd-026", "C3 OLED 55", "LG", domain.CategoryTVs},
	{"prd-027", "QLED Q60 50", "Samsung", domain.CategoryTVs},
	{"prd-028", "Smart TV 4A 43", "Xiaomi", domain.CategoryTVs},
	// Home
	{"prd-029", "V15 Detect", "Dyson", domain.CategoryHome},
	{"prd-030", "Roomba Combo Robot", "iRobot", domain.CategoryHome},
	{"prd-031", "HD9252 Air Fryer", "Philips", domain.CategoryHome},
}

// Load returns the fixed product catalog, validating every entry.
func Load() ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	for i, e := range products {
		if err := validator.Validate(&e); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if !domain.IsValidCategory(e.Category) {
			return nil, fmt.Errorf("catalog entry %d (%s): invalid category %q", i, e.ID, e.Category)
		}
		out = append(out, domain.Product{
			ID:       e.ID,
			Name:     e.Name,
			Brand:    e.Brand,
			Category: e.Category,
		})
	}
	return out, nil
}
