package storefront

import (
	"fmt"

	"github.com/lemoralexis/artbeat/internal/domain"
)

// BatchSize is how many cards a single "load more" reveals.
const BatchSize = 9

// Card is everything a gallery tile needs, ready for the template.
type Card struct {
	ID           string
	Name         string
	Artist       string
	Specs        string
	PriceDisplay string
	ImageURL     string
	// RevealDelay staggers the card entrance within its batch ("0.3s").
	RevealDelay string
}

// Gallery owns the listing page state: the fetched products and a
// monotonically growing visible-count cursor. It replaces the page-global
// allProducts/visibleCount pair so the cursor arithmetic is testable.
type Gallery struct {
	products []domain.Product
	visible  int
}

func NewGallery(products []domain.Product) *Gallery {
	return &Gallery{products: products}
}

// RevealNext advances the cursor by one batch and returns the newly visible
// cards. Past the end it returns nothing and leaves the cursor alone.
func (g *Gallery) RevealNext() []Card {
	if g.visible >= len(g.products) {
		return nil
	}
	end := g.visible + BatchSize
	if end > len(g.products) {
		end = len(g.products)
	}
	batch := make([]Card, 0, end-g.visible)
	for i, p := range g.products[g.visible:end] {
		batch = append(batch, BuildCard(p, i))
	}
	g.visible = end
	return batch
}

// RevealTo reveals whole batches until at least n cards are visible (capped
// at the total). The cursor never moves backwards, so a stale or hostile
// query value cannot shrink the page.
func (g *Gallery) RevealTo(n int) {
	if n > len(g.products) {
		n = len(g.products)
	}
	for g.visible < n {
		if len(g.RevealNext()) == 0 {
			break
		}
	}
}

// Visible returns every currently revealed card for a full-page render.
func (g *Gallery) Visible() []Card {
	cards := make([]Card, 0, g.visible)
	for j, p := range g.products[:g.visible] {
		cards = append(cards, BuildCard(p, j%BatchSize))
	}
	return cards
}

func (g *Gallery) VisibleCount() int { return g.visible }
func (g *Gallery) Total() int        { return len(g.products) }

// HasMore reports whether the load-more control should stay visible.
func (g *Gallery) HasMore() bool { return g.visible < len(g.products) }

// BuildCard maps one product to a gallery card. idx is the position within
// its reveal batch and only drives the entrance stagger.
func BuildCard(p domain.Product, idx int) Card {
	price := "Enquire"
	if p.Price != nil {
		price = domain.FormatAmount(p.Price.Amount, p.Price.Currency)
	}
	dims := p.Meta("dimensions", "Dimensions TBD")
	medium := p.Meta("medium", "Print")
	return Card{
		ID:           p.ID,
		Name:         p.Name,
		Artist:       p.Meta("artist", "Romel"),
		Specs:        fmt.Sprintf("%s (%s)", dims, medium),
		PriceDisplay: price,
		ImageURL:     p.PrimaryImage(),
		RevealDelay:  fmt.Sprintf("%.1fs", float64(idx)*0.1),
	}
}

// EmptyCatalogMessage replaces the grid when the provider has no active works.
const EmptyCatalogMessage = "No works currently available."
