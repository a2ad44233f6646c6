package catalog

import (
	"fmt"
	"strings"

	"github.com/utafrali/priceradar/internal/domain"
	apperrors "github.com/utafrali/priceradar/pkg/errors"
	"github.com/utafrali/priceradar/pkg/validator"
)

// PriceRule maps name/brand keywords to a base catalog price. Rules are
// evaluated in order; the first rule whose keyword matches wins.
type PriceRule struct {
	Keywords  []string `validate:"required,min=1"`
	BasePrice int64    `validate:"gt=0"`
}

// CategoryRules holds the ordered price rules for one category plus the
// explicit default applied when no keyword matches.
type CategoryRules struct {
	Rules        []PriceRule
	DefaultPrice int64 `validate:"gt=0"`
}

// Rules decides, for a product, its base catalog price and the set of
// marketplaces that carry it. Assign is a pure function: no randomness, no
// hidden state.
type Rules struct {
	pricing         map[string]CategoryRules
	premiumKeywords []string
	premiumBrands   []string

	majorPlatforms    []domain.Platform
	discountPlatforms []domain.Platform
	apparelPlatforms  []domain.Platform
}

// Assignment is the result of applying the rules to one product.
type Assignment struct {
	BasePrice int64
	Platforms []domain.Platform
	Premium   bool
}

// DefaultRules returns the built-in rule tables. Prices are whole rupees.
func DefaultRules() *Rules {
	return &Rules{
		pricing: map[string]CategoryRules{
			domain.CategorySmartphones: {
				Rules: []PriceRule{
					{Keywords: []string{"pro max"}, BasePrice: 159900},
					{Keywords: []string{"ultra"}, BasePrice: 129999},
					{Keywords: []string{"pro"}, BasePrice: 99999},
					{Keywords: []string{"12r", "edge"}, BasePrice: 39999},
				},
				DefaultPrice: 18999,
			},
			domain.CategoryLaptops: {
				Rules: []PriceRule{
					{Keywords: []string{"macbook pro"}, BasePrice: 199900},
					{Keywords: []string{"macbook air"}, BasePrice: 114900},
					{Keywords: []string{"xps", "spectre"}, BasePrice: 149999},
					{Keywords: []string{"gaming", "rog", "legion"}, BasePrice: 129990},
				},
				DefaultPrice: 49990,
			},
			domain.CategoryAudio: {
				Rules: []PriceRule{
					{Keywords: []string{"wh-1000", "quietcomfort"}, BasePrice: 29990},
					{Keywords: []string{"airpods pro", "buds pro"}, BasePrice: 24900},
				},
				DefaultPrice: 4999,
			},
			domain.CategoryWearables: {
				Rules: []PriceRule{
					{Keywords: []string{"watch ultra"}, BasePrice: 89900},
					{Keywords: []string{"apple watch", "galaxy watch"}, BasePrice: 33999},
					{Keywords: []string{"band"}, BasePrice: 2499},
				},
				DefaultPrice: 5999,
			},
			domain.CategoryCameras: {
				Rules: []PriceRule{
					{Keywords: []string{"alpha", "z8"}, BasePrice: 219990},
					{Keywords: []string{"hero", "action"}, BasePrice: 44990},
				},
				DefaultPrice: 79990,
			},
			domain.CategoryTVs: {
				Rules: []PriceRule{
					{Keywords: []string{"oled"}, BasePrice: 139990},
					{Keywords: []string{"qled"}, BasePrice: 74990},
				},
				DefaultPrice: 29999,
			},
			domain.CategoryHome: {
				Rules: []PriceRule{
					{Keywords: []string{"dyson", "v15"}, BasePrice: 62900},
					{Keywords: []string{"robot", "roomba"}, BasePrice: 39900},
				},
				DefaultPrice: 9999,
			},
		},
		premiumKeywords: []string{"pro", "ultra", "max", "oled", "macbook", "xps", "alpha"},
		premiumBrands:   []string{"apple", "sony", "bose", "dyson"},

		majorPlatforms: []domain.Platform{
			domain.PlatformAmazon,
			domain.PlatformFlipkart,
			domain.PlatformCroma,
			domain.PlatformRelianceDigital,
		},
		discountPlatforms: []domain.Platform{
			domain.PlatformTataCliq,
			domain.PlatformSnapdeal,
		},
		apparelPlatforms: []domain.Platform{
			domain.PlatformMyntra,
			domain.PlatformAjio,
		},
	}
}

// Validate checks every rule table entry. Called once at startup.
func (r *Rules) Validate() error {
	for category, cr := range r.pricing {
		if !domain.IsValidCategory(category) {
			return fmt.Errorf("rules for invalid category %q", category)
		}
		if err := validator.Validate(&cr); err != nil {
			return fmt.Errorf("rules for category %q: %w", category, err)
		}
		for i, rule := range cr.Rules {
			if err := validator.Validate(&rule); err != nil {
				return fmt.Errorf("rule %d for category %q: %w", i, category, err)
			}
		}
	}
	if len(r.majorPlatforms) == 0 {
		return fmt.Errorf("no major platforms configured")
	}
	return nil
}

// Assign determines the base catalog price and eligible marketplace set for
// the given product. An unmapped category is a data invariant violation and
// fails loudly rather than defaulting.
func (r *Rules) Assign(p domain.Product) (Assignment, error) {
	cr, ok := r.pricing[p.Category]
	if !ok {
		return Assignment{}, apperrors.UnknownCategory(p.ID, p.Category)
	}

	key := strings.ToLower(p.Name + " " + p.Brand)

	basePrice := cr.DefaultPrice
	for _, rule := range cr.Rules {
		if matchesAny(key, rule.Keywords) {
			basePrice = rule.BasePrice
			break
		}
	}

	premium := matchesAny(key, r.premiumKeywords) ||
		matchesAny(strings.ToLower(p.Brand), r.premiumBrands)

	platforms := make([]domain.Platform, 0, 8)
	platforms = append(platforms, r.majorPlatforms...)
	if !premium {
		// Budget items additionally list on discount-oriented marketplaces.
		platforms = append(platforms, r.discountPlatforms...)
	}
	if p.Category == domain.CategoryWearables || p.Category == domain.CategoryAudio {
		// Fashion-adjacent categories also list on apparel marketplaces.
		platforms = append(platforms, r.apparelPlatforms...)
	}

	return Assignment{
		BasePrice: basePrice,
		Platforms: platforms,
		Premium:   premium,
	}, nil
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
