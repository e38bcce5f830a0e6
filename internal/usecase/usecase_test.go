package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemoralexis/artbeat/internal/domain"
)

type fakeCatalog struct {
	products []domain.Product
	product  *domain.Product
	err      error
	gotID    string
}

func (f *fakeCatalog) List(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*domain.Product, error) {
	f.gotID = id
	return f.product, f.err
}

type fakeGateway struct {
	url string
	err error
}

func (f *fakeGateway) CreateSession(ctx context.Context, priceID, successURL, cancelURL string) (string, error) {
	return f.url, f.err
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg domain.ContactMessage) error {
	f.sent++
	return f.err
}

func TestCatalogGetRequiresID(t *testing.T) {
	cat := &fakeCatalog{}
	uc := &CatalogUC{Catalog: cat}
	_, err := uc.Get(context.Background(), "  ")
	assert.Error(t, err)
	assert.Empty(t, cat.gotID, "provider never called")
}

func TestCatalogGetPassesThrough(t *testing.T) {
	cat := &fakeCatalog{product: &domain.Product{ID: "prod_1"}}
	uc := &CatalogUC{Catalog: cat}
	p, err := uc.Get(context.Background(), "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "prod_1", p.ID)
	assert.Equal(t, "prod_1", cat.gotID)
}

func TestCheckoutStartRequiresPriceID(t *testing.T) {
	uc := &CheckoutUC{Gateway: &fakeGateway{url: "https://pay"}}
	_, err := uc.Start(context.Background(), "", "s", "c")
	assert.Error(t, err)
}

func TestCheckoutStartReturnsURL(t *testing.T) {
	uc := &CheckoutUC{Gateway: &fakeGateway{url: "https://pay"}}
	url, err := uc.Start(context.Background(), "price_1", "s", "c")
	require.NoError(t, err)
	assert.Equal(t, "https://pay", url)
}

func TestContactCaptchaGate(t *testing.T) {
	m := &fakeMailer{}
	uc := &ContactUC{Mailer: m, RecaptchaConfigured: true}

	err := uc.Send(context.Background(), domain.ContactMessage{Name: "Ada", Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrCaptchaRequired)
	assert.Zero(t, m.sent, "mailer must not be called without a token")

	err = uc.Send(context.Background(), domain.ContactMessage{Name: "Ada", RecaptchaToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.sent)
}

func TestContactWithoutCaptchaConfigured(t *testing.T) {
	m := &fakeMailer{}
	uc := &ContactUC{Mailer: m}
	require.NoError(t, uc.Send(context.Background(), domain.ContactMessage{Name: "Ada"}))
	assert.Equal(t, 1, m.sent)
}

func TestContactMailerFailureSurfaces(t *testing.T) {
	m := &fakeMailer{err: errors.New("relay down")}
	uc := &ContactUC{Mailer: m}
	assert.Error(t, uc.Send(context.Background(), domain.ContactMessage{Name: "Ada"}))
}
