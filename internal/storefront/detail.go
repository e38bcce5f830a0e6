package storefront

import "github.com/lemoralexis/artbeat/internal/domain"

// VariantOption is one selectable price control on the detail page.
type VariantOption struct {
	ID       string
	Label    string
	Selected bool
}

// DetailView is the fully resolved product page: a pure transform of
// (product, selected price id) with no DOM state of its own. Re-rendering it
// replaces everything, so a stale selection can never leave an old checkout
// binding behind and injected affordances exist exactly once.
type DetailView struct {
	Title       string
	PageTitle   string
	Artist      string
	Collection  string
	Badge       string
	Description string

	// Spec slots are positional: 0 = medium, 1 = dimensions.
	Specs [2]string

	ImageURL string

	PriceDisplay string
	ActionLabel  string

	// ActionPriceID is the checkout binding; empty in enquire mode.
	ActionPriceID string
	EnquireOnly   bool

	// Options is nil unless the product has more than one variant.
	Options []VariantOption

	// CustomOrderPrompt prefills the contact modal from the custom-orders
	// affordance (priced products only).
	CustomOrderPrompt string
}

// BuildDetail resolves a product into its page view. selectedPriceID picks
// the active variant; unknown or empty ids fall back to the cheapest
// (first) variant. Prices are assumed sorted ascending by amount.
func BuildDetail(p *domain.Product, selectedPriceID string) DetailView {
	v := DetailView{
		Title:       p.Name,
		PageTitle:   p.Name + " | ARTBEAT",
		Artist:      p.Meta("artist", "Romel"),
		Collection:  p.Meta("collection", "The Collection"),
		Badge:       "ID #" + p.Meta("id", "---"),
		Description: p.Description,
		Specs:       [2]string{p.Meta("medium", "Print"), p.Meta("dimensions", "Variable")},
		ImageURL:    p.PrimaryImage(),
	}

	if len(p.Prices) == 0 {
		v.PriceDisplay = "Enquire for Price"
		v.ActionLabel = "Enquire Now"
		v.EnquireOnly = true
		return v
	}

	sel := p.Prices[0]
	for _, pr := range p.Prices {
		if pr.ID == selectedPriceID {
			sel = pr
			break
		}
	}

	v.PriceDisplay = domain.FormatAmount(sel.Amount, sel.Currency)
	v.ActionLabel = "Order Now"
	v.ActionPriceID = sel.ID
	v.CustomOrderPrompt = `Hi Romel, I'm interested in a custom order related to "` + p.Name + `".`

	if len(p.Prices) > 1 {
		v.Options = make([]VariantOption, 0, len(p.Prices))
		for _, pr := range p.Prices {
			v.Options = append(v.Options, VariantOption{
				ID:       pr.ID,
				Label:    nickname(pr) + " - " + domain.FormatAmount(pr.Amount, pr.Currency),
				Selected: pr.ID == sel.ID,
			})
		}
	}
	return v
}

func nickname(pr domain.Price) string {
	if pr.Nickname != "" {
		return pr.Nickname
	}
	return "Standard"
}
