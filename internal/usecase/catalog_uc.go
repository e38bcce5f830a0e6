package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/lemoralexis/artbeat/internal/domain"
)

// CatalogUC serves the listing and detail views straight from the payments
// provider; there is no local copy of the catalog.
type CatalogUC struct {
	Catalog domain.Catalog
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Catalog.List(ctx)
}

func (uc *CatalogUC) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("product id is required")
	}
	return uc.Catalog.Get(ctx, id)
}
