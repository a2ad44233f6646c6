package domain

// Platform identifies one of the marketplaces a product listing can belong to.
type Platform string

// Marketplace platform constants.
const (
	PlatformAmazon          Platform = "amazon"
	PlatformFlipkart        Platform = "flipkart"
	PlatformCroma           Platform = "croma"
	PlatformRelianceDigital Platform = "reliance-digital"
	PlatformTataCliq        Platform = "tata-cliq"
	PlatformSnapdeal        Platform = "snapdeal"
	PlatformMyntra          Platform = "myntra"
	PlatformAjio            Platform = "ajio"
)

// ValidPlatforms returns the full set of marketplace platforms.
func ValidPlatforms() []Platform {
	return []Platform{
		PlatformAmazon,
		PlatformFlipkart,
		PlatformCroma,
		PlatformRelianceDigital,
		PlatformTataCliq,
		PlatformSnapdeal,
		PlatformMyntra,
		PlatformAjio,
	}
}

// IsValidPlatform checks whether the given platform is a known marketplace.
func IsValidPlatform(p Platform) bool {
	for _, v := range ValidPlatforms() {
		if v == p {
			return true
		}
	}
	return false
}

// Domain returns the storefront domain used when deriving product URLs.
func (p Platform) Domain() string {
	switch p {
	case PlatformAmazon:
		return "www.amazon.in"
	case PlatformFlipkart:
		return "www.flipkart.com"
	case PlatformCroma:
		return "www.croma.com"
	case PlatformRelianceDigital:
		return "www.reliancedigital.in"
	case PlatformTataCliq:
		return "www.tatacliq.com"
	case PlatformSnapdeal:
		return "www.snapdeal.com"
	case PlatformMyntra:
		return "www.myntra.com"
	case PlatformAjio:
		return "www.ajio.com"
	default:
		return string(p)
	}
}
