package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/lemoralexis/artbeat/internal/domain"
)

// CheckoutUC starts a provider-hosted checkout for a single price variant.
type CheckoutUC struct {
	Gateway domain.CheckoutGateway
}

// Start returns the URL the browser must be redirected to. There is no
// retry; a failed attempt is surfaced once and abandoned until the user
// clicks again.
func (uc *CheckoutUC) Start(ctx context.Context, priceID, successURL, cancelURL string) (string, error) {
	if strings.TrimSpace(priceID) == "" {
		return "", errors.New("price id is required")
	}
	return uc.Gateway.CreateSession(ctx, priceID, successURL, cancelURL)
}
