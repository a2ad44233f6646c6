// Package pricegen synthesizes marketplace listings and day-by-day price
// trajectories for the seeding pipeline. All randomness flows through an
// injected rand.Rand so runs are reproducible from a logged seed.
package pricegen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/priceradar/internal/domain"
	"github.com/utafrali/priceradar/pkg/slug"
)

// platformProfile holds the per-marketplace price and discount bands.
// Price multipliers straddle 1.0; discount multipliers are strictly below
// 1.0, which is what guarantees current_price <= original_price.
type platformProfile struct {
	priceMin, priceMax       float64
	discountMin, discountMax float64
}

var platformProfiles = map[domain.Platform]platformProfile{
	domain.PlatformAmazon:          {0.95, 1.05, 0.88, 0.97},
	domain.PlatformFlipkart:        {0.93, 1.05, 0.85, 0.96},
	domain.PlatformCroma:           {0.97, 1.08, 0.90, 0.98},
	domain.PlatformRelianceDigital: {0.96, 1.07, 0.90, 0.98},
	domain.PlatformTataCliq:        {0.94, 1.06, 0.87, 0.96},
	domain.PlatformSnapdeal:        {0.90, 1.02, 0.80, 0.94},
	domain.PlatformMyntra:          {0.95, 1.06, 0.84, 0.95},
	domain.PlatformAjio:            {0.93, 1.04, 0.82, 0.94},
}

// premiumReviewThreshold is the base price above which a listing draws from
// the premium review-count band.
const premiumReviewThreshold = 30000

// Synthesizer derives one marketplace listing per (product, platform) pair.
type Synthesizer struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSynthesizer creates a synthesizer drawing from the given random source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng, now: time.Now}
}

// Synthesize builds the listing for one product on one platform from the
// product's base catalog price.
func (s *Synthesizer) Synthesize(p domain.Product, platform domain.Platform, basePrice int64) (domain.PlatformPrice, error) {
	profile, ok := platformProfiles[platform]
	if !ok {
		return domain.PlatformPrice{}, fmt.Errorf("no price profile for platform %q", platform)
	}
	if basePrice <= 0 {
		return domain.PlatformPrice{}, fmt.Errorf("product %s: base price must be positive, got %d", p.ID, basePrice)
	}

	originalPrice := int64(math.Round(float64(basePrice) * s.uniform(profile.priceMin, profile.priceMax)))
	currentPrice := int64(math.Round(float64(originalPrice) * s.uniform(profile.discountMin, profile.discountMax)))
	if currentPrice > originalPrice {
		currentPrice = originalPrice
	}

	availability := domain.AvailabilityInStock
	switch roll := s.rng.Float64(); {
	case roll >= 0.95:
		availability = domain.AvailabilityOutOfStock
	case roll >= 0.85:
		availability = domain.AvailabilityLimited
	}

	rating := math.Round(s.uniform(3.5, 4.9)*10) / 10

	var reviewCount int
	if basePrice > premiumReviewThreshold {
		reviewCount = 500 + s.rng.IntN(4501)
	} else {
		reviewCount = 50 + s.rng.IntN(1951)
	}

	productURL, affiliateURL := listingURLs(p, platform)

	return domain.PlatformPrice{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		Platform:      platform,
		CurrentPrice:  currentPrice,
		OriginalPrice: originalPrice,
		Availability:  availability,
		Rating:        rating,
		ReviewCount:   reviewCount,
		ProductURL:    productURL,
		AffiliateURL:  affiliateURL,
		LastChecked:   s.now().UTC(),
	}, nil
}

func (s *Synthesizer) uniform(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// listingURLs derives the deterministic product and affiliate URLs from the
// slugified product name and the platform's storefront domain.
func listingURLs(p domain.Product, platform domain.Platform) (string, string) {
	productSlug := slug.Generate(p.Brand + " " + p.Name)
	productURL := fmt.Sprintf("https://%s/product/%s", platform.Domain(), productSlug)
	affiliateURL := fmt.Sprintf("%s?tag=priceradar&utm_source=%s", productURL, platform)
	return productURL, affiliateURL
}
