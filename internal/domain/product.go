package domain

// Product as delivered to the storefront. The payments provider is the
// catalog of record; ids are provider-assigned and opaque.
type Product struct {
	ID          string
	Name        string
	Description string
	Images      []string
	Metadata    map[string]string

	// Price is the default price in the listing view; nil when the
	// product has none ("Enquire").
	Price *Price

	// Prices holds every active variant in the detail view, sorted
	// ascending by amount. Empty means enquire-only.
	Prices []Price
}

// Price is one purchasable variant of a product.
type Price struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Nickname string

	// Formatted is regenerated from Amount+Currency at every data
	// preparation point, never stored independently.
	Formatted string
}

// FallbackImage is shown when a product carries no images.
const FallbackImage = "/public/assets/art1.png"

// PrimaryImage returns the first image or the fixed fallback asset.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return FallbackImage
}

// Meta returns a metadata value, or fallback when the key is missing or blank.
func (p *Product) Meta(key, fallback string) string {
	if v, ok := p.Metadata[key]; ok && v != "" {
		return v
	}
	return fallback
}

// ContactMessage is a contact-form submission headed for the mail relay.
type ContactMessage struct {
	Name           string
	Email          string
	Message        string
	RecaptchaToken string
}
