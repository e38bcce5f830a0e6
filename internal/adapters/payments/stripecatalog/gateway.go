package stripecatalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"golang.org/x/sync/errgroup"

	"github.com/lemoralexis/artbeat/internal/domain"
)

// sessionAPI is the slice of the Stripe client the checkout path needs;
// tests inject a fake here instead of the real backend.
type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Gateway implements domain.Catalog and domain.CheckoutGateway over the
// Stripe API. Stripe is the catalog of record; nothing is cached between
// calls.
type Gateway struct {
	sc       *client.API
	sessions sessionAPI
}

func New(apiKey string) (*Gateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("stripe: api key is required (STRIPE_SECRET_KEY)")
	}
	sc := client.New(apiKey, nil)
	return &Gateway{sc: sc, sessions: sc.CheckoutSessions}, nil
}

// List returns every active product with its default price expanded, in
// provider order.
func (g *Gateway) List(ctx context.Context) ([]domain.Product, error) {
	params := &stripe.ProductListParams{Active: stripe.Bool(true)}
	params.Context = ctx
	params.Limit = stripe.Int64(100)
	params.AddExpand("data.default_price")

	var out []domain.Product
	iter := g.sc.Products.List(params)
	for iter.Next() {
		out = append(out, mapListing(iter.Product()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe: list products: %w", err)
	}
	return out, nil
}

// Get fetches one product and all of its active prices in parallel; both
// calls must succeed or the whole operation fails.
func (g *Gateway) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("stripe: product id is required")
	}

	var (
		prod   *stripe.Product
		prices []domain.Price
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		params := &stripe.ProductParams{}
		params.Context = gctx
		p, err := g.sc.Products.Get(id, params)
		if err != nil {
			return fmt.Errorf("stripe: retrieve product: %w", err)
		}
		prod = p
		return nil
	})
	grp.Go(func() error {
		params := &stripe.PriceListParams{Product: stripe.String(id), Active: stripe.Bool(true)}
		params.Context = gctx
		iter := g.sc.Prices.List(params)
		for iter.Next() {
			prices = append(prices, mapPrice(iter.Price()))
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("stripe: list prices: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(prices, func(i, j int) bool { return prices[i].Amount < prices[j].Amount })

	p := mapProduct(prod)
	p.Prices = prices
	return &p, nil
}

// CreateSession opens a provider-hosted payment flow for one unit of the
// given price and returns the redirect URL.
func (g *Gateway) CreateSession(ctx context.Context, priceID, successURL, cancelURL string) (string, error) {
	if strings.TrimSpace(priceID) == "" {
		return "", errors.New("stripe: price id is required")
	}
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}},
	}
	params.Context = ctx

	sess, err := g.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create checkout session: %w", err)
	}
	if sess.URL == "" {
		return "", domain.ErrNoCheckoutURL
	}
	return sess.URL, nil
}

// mapListing shapes a Stripe product for the catalog listing view: default
// price only, formatted at this preparation point.
func mapListing(sp *stripe.Product) domain.Product {
	p := mapProduct(sp)
	if sp.DefaultPrice != nil {
		price := mapPrice(sp.DefaultPrice)
		p.Price = &price
	}
	return p
}

func mapProduct(sp *stripe.Product) domain.Product {
	meta := sp.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	return domain.Product{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Images:      sp.Images,
		Metadata:    meta,
	}
}

func mapPrice(pr *stripe.Price) domain.Price {
	currency := strings.ToUpper(string(pr.Currency))
	nick := pr.Nickname
	if nick == "" {
		nick = "Standard"
	}
	return domain.Price{
		ID:        pr.ID,
		Amount:    pr.UnitAmount,
		Currency:  currency,
		Nickname:  nick,
		Formatted: domain.FormatAmount(pr.UnitAmount, currency),
	}
}
