package stripecatalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"github.com/lemoralexis/artbeat/internal/domain"
)

type fakeSessions struct {
	gotParams *stripe.CheckoutSessionParams
	session   *stripe.CheckoutSession
	err       error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.gotParams = params
	return f.session, f.err
}

func TestCreateSessionReturnsRedirectURL(t *testing.T) {
	fake := &fakeSessions{session: &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test_1"}}
	g := &Gateway{sessions: fake}

	url, err := g.CreateSession(context.Background(), "price_1", "https://shop/success.html", "https://shop/product?id=prod_1")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", url)

	require.NotNil(t, fake.gotParams)
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *fake.gotParams.Mode)
	assert.Equal(t, "https://shop/success.html", *fake.gotParams.SuccessURL)
	require.Len(t, fake.gotParams.LineItems, 1)
	assert.Equal(t, "price_1", *fake.gotParams.LineItems[0].Price)
	assert.Equal(t, int64(1), *fake.gotParams.LineItems[0].Quantity)
}

func TestCreateSessionMissingURL(t *testing.T) {
	g := &Gateway{sessions: &fakeSessions{session: &stripe.CheckoutSession{}}}
	_, err := g.CreateSession(context.Background(), "price_1", "s", "c")
	assert.ErrorIs(t, err, domain.ErrNoCheckoutURL)
}

func TestCreateSessionProviderError(t *testing.T) {
	g := &Gateway{sessions: &fakeSessions{err: errors.New("api down")}}
	_, err := g.CreateSession(context.Background(), "price_1", "s", "c")
	assert.ErrorContains(t, err, "create checkout session")
}

func TestCreateSessionRequiresPriceID(t *testing.T) {
	g := &Gateway{sessions: &fakeSessions{}}
	_, err := g.CreateSession(context.Background(), "  ", "s", "c")
	assert.Error(t, err)
}

func TestMapListing(t *testing.T) {
	sp := &stripe.Product{
		ID:          "prod_1",
		Name:        "Tidal Lines",
		Description: "Screen print",
		Images:      []string{"https://cdn.example/a.webp"},
		Metadata:    map[string]string{"artist": "Romel"},
		DefaultPrice: &stripe.Price{
			ID:         "price_1",
			UnitAmount: 2550,
			Currency:   stripe.CurrencyCAD,
		},
	}
	p := mapListing(sp)
	assert.Equal(t, "prod_1", p.ID)
	require.NotNil(t, p.Price)
	assert.Equal(t, int64(2550), p.Price.Amount)
	assert.Equal(t, "CAD", p.Price.Currency)
	assert.Equal(t, domain.FormatAmount(2550, "CAD"), p.Price.Formatted)
	assert.Nil(t, p.Prices)
}

func TestMapListingWithoutDefaultPrice(t *testing.T) {
	p := mapListing(&stripe.Product{ID: "prod_2", Name: "Untitled"})
	assert.Nil(t, p.Price)
	assert.NotNil(t, p.Metadata, "metadata is always usable")
}

func TestMapPriceNicknameDefault(t *testing.T) {
	pr := mapPrice(&stripe.Price{ID: "price_2", UnitAmount: 9900, Currency: stripe.CurrencyAUD})
	assert.Equal(t, "Standard", pr.Nickname)
	assert.Equal(t, "AUD", pr.Currency)
	assert.Equal(t, domain.FormatAmount(9900, "AUD"), pr.Formatted)
}
