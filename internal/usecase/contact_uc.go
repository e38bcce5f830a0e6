package usecase

import (
	"context"
	"strings"

	"github.com/lemoralexis/artbeat/internal/domain"
)

// ContactUC relays contact-form submissions to the shop owner.
type ContactUC struct {
	Mailer domain.Mailer

	// RecaptchaConfigured gates submissions: when set, a missing token is
	// rejected locally and the mail provider is never called.
	RecaptchaConfigured bool
}

func (uc *ContactUC) Send(ctx context.Context, msg domain.ContactMessage) error {
	if uc.RecaptchaConfigured && strings.TrimSpace(msg.RecaptchaToken) == "" {
		return domain.ErrCaptchaRequired
	}
	return uc.Mailer.Send(ctx, msg)
}
