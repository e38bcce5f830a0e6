package app

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/lemoralexis/artbeat/internal/adapters/email/elasticemail"
	"github.com/lemoralexis/artbeat/internal/adapters/httpserver"
	"github.com/lemoralexis/artbeat/internal/adapters/payments/stripecatalog"
	"github.com/lemoralexis/artbeat/internal/usecase"
	"github.com/lemoralexis/artbeat/internal/views"
)

// heroImages feeds the landing page strip and its lightbox.
var heroImages = []string{
	"/public/assets/art1.png",
	"/public/assets/art2.png",
	"/public/assets/art3.png",
	"/public/assets/art4.png",
	"/public/assets/art5.png",
}

type App struct {
	Tmpl       *template.Template
	CatalogUC  *usecase.CatalogUC
	CheckoutUC *usecase.CheckoutUC
	ContactUC  *usecase.ContactUC

	baseURL          string
	recaptchaSiteKey string
}

func NewApp() (*App, error) {
	catalog, err := stripecatalog.New(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		return nil, fmt.Errorf("stripe catalog: %w", err)
	}

	mailer := elasticemail.New(
		os.Getenv("ELASTIC_EMAIL_KEY"),
		getenv("CONTACT_FROM", "noreply@artbeat-shop.web.app"),
		getenv("CONTACT_TO", "lemoralexis@gmail.com"),
	)

	tmpl, err := views.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &App{
		Tmpl:       tmpl,
		CatalogUC:  &usecase.CatalogUC{Catalog: catalog},
		CheckoutUC: &usecase.CheckoutUC{Gateway: catalog},
		ContactUC: &usecase.ContactUC{
			Mailer:              mailer,
			RecaptchaConfigured: os.Getenv("RECAPTCHA_SECRET") != "",
		},
		baseURL:          getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		recaptchaSiteKey: os.Getenv("RECAPTCHA_SITE_KEY"),
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.CatalogUC, a.CheckoutUC, a.ContactUC, a.baseURL, heroImages, a.recaptchaSiteKey)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
