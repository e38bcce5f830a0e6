package httpserver

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lemoralexis/artbeat/internal/domain"
	"github.com/lemoralexis/artbeat/internal/storefront"
	"github.com/lemoralexis/artbeat/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	tmpl     *template.Template
	catalog  *usecase.CatalogUC
	checkout *usecase.CheckoutUC
	contact  *usecase.ContactUC

	baseURL          string
	heroImages       []string
	recaptchaSiteKey string
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func New(t *template.Template, cat *usecase.CatalogUC, co *usecase.CheckoutUC, con *usecase.ContactUC, baseURL string, heroImages []string, recaptchaSiteKey string) http.Handler {
	s := &Server{
		mux:              http.NewServeMux(),
		tmpl:             t,
		catalog:          cat,
		checkout:         co,
		contact:          con,
		baseURL:          strings.TrimRight(baseURL, "/"),
		heroImages:       heroImages,
		recaptchaSiteKey: recaptchaSiteKey,
	}
	s.routes()
	return Chain(s.mux,
		CORS,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.Handle("/public/", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	s.mux.HandleFunc("/robots.txt", s.handleRobots)
	s.mux.HandleFunc("/sitemap.xml", s.handleSitemap)

	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/product", s.handleProductPage)
	s.mux.HandleFunc("/checkout", s.handleCheckoutSubmit)
	s.mux.HandleFunc("/success", s.handleSuccess)

	// JSON endpoints: paths and envelopes are a compatibility contract.
	s.mux.HandleFunc("/getProducts", s.apiGetProducts)
	s.mux.HandleFunc("/getProduct", s.apiGetProduct)
	s.mux.HandleFunc("/createCheckoutSession", s.apiCreateCheckoutSession)
	s.mux.HandleFunc("/sendContactEmail", s.apiSendContactEmail)
}

// --- JSON API ---

type priceListingJSON struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type productListingJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	Price       *priceListingJSON `json:"price"`
	Metadata    map[string]string `json:"metadata"`
}

type priceDetailJSON struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Nickname  string `json:"nickname"`
	Formatted string `json:"formatted"`
}

type productDetailJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	Prices      []priceDetailJSON `json:"prices"`
	Metadata    map[string]string `json:"metadata"`
}

func (s *Server) apiGetProducts(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("fetch products")
		writeJSON(w, 500, map[string]any{"error": "Failed to fetch products"})
		return
	}
	out := make([]productListingJSON, 0, len(list))
	for _, p := range list {
		out = append(out, toListingJSON(p))
	}
	writeJSON(w, 200, map[string]any{"data": out})
}

func (s *Server) apiGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		log.Error().Err(err).Msg("fetch product")
		writeJSON(w, 500, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, 200, map[string]any{"data": toDetailJSON(p)})
}

func (s *Server) apiCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", 405)
		return
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, 2048))
	var req struct {
		PriceID    string `json:"priceId"`
		SuccessURL string `json:"successUrl"`
		CancelURL  string `json:"cancelUrl"`
	}
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"error": "invalid json"})
		return
	}
	sessURL, err := s.checkout.Start(r.Context(), req.PriceID, req.SuccessURL, req.CancelURL)
	if err != nil {
		log.Error().Err(err).Str("price_id", req.PriceID).Msg("create checkout session")
		writeJSON(w, 500, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, 200, map[string]any{"url": sessURL})
}

func (s *Server) apiSendContactEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", 405)
		return
	}
	msg, err := readContactMessage(r)
	if err != nil {
		writeJSON(w, 400, map[string]any{"error": "invalid payload"})
		return
	}
	if !emailRe.MatchString(strings.TrimSpace(msg.Email)) {
		writeJSON(w, 400, map[string]any{"error": "a valid email is required"})
		return
	}
	if err := s.contact.Send(r.Context(), msg); err != nil {
		if err == domain.ErrCaptchaRequired {
			writeJSON(w, 400, map[string]any{"error": "Please verify that you are not a robot."})
			return
		}
		log.Error().Err(err).Msg("contact email")
		writeJSON(w, 500, map[string]any{"error": "Failed to send email."})
		return
	}
	writeJSON(w, 200, map[string]any{"success": true})
}

// readContactMessage accepts the JSON contract body; the modal form posts
// the same fields form-encoded when scripting is unavailable.
func readContactMessage(r *http.Request) (domain.ContactMessage, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Name           string `json:"name"`
			Email          string `json:"email"`
			Message        string `json:"message"`
			RecaptchaToken string `json:"recaptchaToken"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 16384)).Decode(&req); err != nil {
			return domain.ContactMessage{}, err
		}
		return domain.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message, RecaptchaToken: req.RecaptchaToken}, nil
	}
	if err := r.ParseForm(); err != nil {
		return domain.ContactMessage{}, err
	}
	return domain.ContactMessage{
		Name:           r.PostForm.Get("name"),
		Email:          r.PostForm.Get("email"),
		Message:        r.PostForm.Get("message"),
		RecaptchaToken: r.PostForm.Get("g-recaptcha-response"),
	}, nil
}

func toListingJSON(p domain.Product) productListingJSON {
	out := productListingJSON{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      nonNil(p.Images),
		Metadata:    p.Metadata,
	}
	if p.Price != nil {
		out.Price = &priceListingJSON{
			Amount:    p.Price.Amount,
			Currency:  strings.ToLower(p.Price.Currency),
			Formatted: domain.FormatAmount(p.Price.Amount, p.Price.Currency),
		}
	}
	return out
}

func toDetailJSON(p *domain.Product) productDetailJSON {
	prices := make([]priceDetailJSON, 0, len(p.Prices))
	for _, pr := range p.Prices {
		prices = append(prices, priceDetailJSON{
			ID:        pr.ID,
			Amount:    pr.Amount,
			Currency:  strings.ToLower(pr.Currency),
			Nickname:  pr.Nickname,
			Formatted: domain.FormatAmount(pr.Amount, pr.Currency),
		})
	}
	return productDetailJSON{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      nonNil(p.Images),
		Prices:      prices,
		Metadata:    p.Metadata,
	}
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// --- pages ---

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	qv := r.URL.Query()

	data := map[string]any{
		"CanonicalURL": s.baseURL + "/",
		"HeroImages":   s.heroImages,
	}

	lb := storefront.NewLightbox(s.heroImages)
	if raw := qv.Get("slide"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			lb.OpenAt(i)
		}
	}
	if lb.IsOpen() {
		data["Lightbox"] = map[string]any{
			"Image":   lb.Current(),
			"PrevURL": "/?slide=" + strconv.Itoa(lb.Prev()) + "#hero",
			"NextURL": "/?slide=" + strconv.Itoa(lb.Next()) + "#hero",
		}
	}

	products, err := s.catalog.List(r.Context())
	if err != nil {
		// Placeholder cards in the template stay up; the page still works.
		log.Error().Err(err).Msg("load catalog")
		data["CatalogError"] = true
		s.render(w, "home.html", data)
		return
	}

	if len(products) == 0 {
		data["EmptyMessage"] = storefront.EmptyCatalogMessage
		s.render(w, "home.html", data)
		return
	}

	visible := storefront.BatchSize
	if raw := qv.Get("visible"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > visible {
			visible = n
		}
	}
	g := storefront.NewGallery(products)
	g.RevealTo(visible)

	data["Cards"] = g.Visible()
	data["HasMore"] = g.HasMore()
	data["LoadMoreURL"] = "/?visible=" + strconv.Itoa(g.VisibleCount()+storefront.BatchSize) + "#gallery"
	s.render(w, "home.html", data)
}

func (s *Server) handleProductPage(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	id := qv.Get("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("load product")
		http.NotFound(w, r)
		return
	}

	view := storefront.BuildDetail(p, qv.Get("price"))
	data := map[string]any{
		"View":         view,
		"ProductID":    p.ID,
		"CanonicalURL": s.baseURL + "/product?id=" + url.QueryEscape(p.ID),
		"Zoom":         qv.Get("zoom") == "1",
	}
	if qv.Get("checkout") == "failed" {
		data["CheckoutError"] = "Unable to start checkout. Please try again."
	}
	if qv.Get("enquire") == "custom" {
		data["Prefill"] = view.CustomOrderPrompt
	}
	s.render(w, "product.html", data)
}

// handleCheckoutSubmit is the detail page's order button: a form POST that
// ends in a provider redirect, or bounces back to the page with the control
// restored and a retry message.
func (s *Server) handleCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", 400)
		return
	}
	priceID := r.PostForm.Get("priceId")
	productID := r.PostForm.Get("productId")

	productURL := s.baseURL + "/product?id=" + url.QueryEscape(productID)
	sessURL, err := s.checkout.Start(r.Context(), priceID, s.baseURL+"/success", productURL)
	if err != nil {
		log.Error().Err(err).Str("price_id", priceID).Msg("checkout failed")
		retry := "/product?id=" + url.QueryEscape(productID) + "&price=" + url.QueryEscape(priceID) + "&checkout=failed"
		http.Redirect(w, r, retry, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, sessURL, http.StatusSeeOther)
}

func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	s.render(w, "success.html", map[string]any{})
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nDisallow:\nSitemap: " + s.baseURL + "/sitemap.xml\n"))
}

// handleSitemap lists the home page and every live product page. A catalog
// failure still yields a valid sitemap with the home entry.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	b.WriteString("\n  <url><loc>" + s.baseURL + "/</loc></url>\n")

	products, err := s.catalog.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("sitemap catalog")
	}
	for _, p := range products {
		var loc bytes.Buffer
		_ = xml.EscapeText(&loc, []byte(s.baseURL+"/product?id="+url.QueryEscape(p.ID)))
		b.WriteString("  <url><loc>" + loc.String() + "</loc></url>\n")
	}
	b.WriteString("</urlset>\n")

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func (s *Server) render(w http.ResponseWriter, name string, data map[string]any) {
	if _, ok := data["Year"]; !ok {
		data["Year"] = time.Now().Year()
	}
	if _, ok := data["RecaptchaSiteKey"]; !ok {
		data["RecaptchaSiteKey"] = s.recaptchaSiteKey
	}
	if _, ok := data["Prefill"]; !ok {
		data["Prefill"] = ""
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", 500)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
