package elasticemail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lemoralexis/artbeat/internal/domain"
)

const defaultEndpoint = "https://api.elasticemail.com/v2/email/send"

// Gateway relays contact messages through the Elastic Email transactional
// API. The provider has no Go SDK, so this is a plain HTTP client.
type Gateway struct {
	apiKey     string
	from       string
	fromName   string
	to         string
	endpoint   string
	httpClient *http.Client
}

func New(apiKey, from, to string) *Gateway {
	return &Gateway{
		apiKey:     apiKey,
		from:       from,
		fromName:   "Artbeat Website",
		to:         to,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Send posts one transactional email composed from the contact message.
func (g *Gateway) Send(ctx context.Context, msg domain.ContactMessage) error {
	if g.apiKey == "" {
		return errors.New("elasticemail: api key missing (ELASTIC_EMAIL_KEY)")
	}

	form := url.Values{}
	form.Set("apikey", g.apiKey)
	form.Set("subject", "Website Inquiry: "+msg.Name)
	form.Set("from", g.from)
	form.Set("fromName", g.fromName)
	form.Set("to", g.to)
	form.Set("bodyHtml", composeBody(msg))
	form.Set("isTransactional", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("elasticemail: send: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("elasticemail: status %d: %s", res.StatusCode, string(body))
	}

	var out sendResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("elasticemail: decode response: %w", err)
	}
	if !out.Success {
		if out.Error == "" {
			out.Error = "send rejected"
		}
		return fmt.Errorf("elasticemail: %s", out.Error)
	}
	return nil
}

// composeBody renders the owner-facing HTML email. User input is escaped;
// message newlines become <br/>.
func composeBody(msg domain.ContactMessage) string {
	text := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br/>")
	return fmt.Sprintf(`
<div style="font-family: sans-serif; padding: 20px;">
    <h2>New Message from Artbeat Contact Form</h2>
    <hr>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <div style="background: #f5f5f5; padding: 15px; border-radius: 5px;">
        %s
    </div>
</div>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), text)
}
