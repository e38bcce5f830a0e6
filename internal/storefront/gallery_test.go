package storefront

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemoralexis/artbeat/internal/domain"
)

func makeProducts(n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Product{
			ID:   fmt.Sprintf("prod_%03d", i),
			Name: fmt.Sprintf("Work %d", i),
			Price: &domain.Price{
				ID:       fmt.Sprintf("price_%03d", i),
				Amount:   int64(1000 + i*50),
				Currency: "AUD",
			},
		})
	}
	return out
}

func TestGalleryRevealArithmetic(t *testing.T) {
	for _, total := range []int{0, 1, 8, 9, 10, 17, 18, 27, 100} {
		t.Run(fmt.Sprintf("total=%d", total), func(t *testing.T) {
			g := NewGallery(makeProducts(total))

			calls := (total + BatchSize - 1) / BatchSize
			for k := 1; k <= calls; k++ {
				require.True(t, g.HasMore(), "call %d: load-more must be visible", k)
				batch := g.RevealNext()
				want := total - (k-1)*BatchSize
				if want > BatchSize {
					want = BatchSize
				}
				assert.Len(t, batch, want)
				wantVisible := k * BatchSize
				if wantVisible > total {
					wantVisible = total
				}
				assert.Equal(t, wantVisible, g.VisibleCount())
			}

			assert.Equal(t, total, g.VisibleCount())
			assert.False(t, g.HasMore(), "load-more hides once everything is out")

			// Past-the-end reveals are no-ops.
			assert.Empty(t, g.RevealNext())
			assert.Equal(t, total, g.VisibleCount())
		})
	}
}

func TestGalleryRevealToClampsAndNeverShrinks(t *testing.T) {
	g := NewGallery(makeProducts(20))

	g.RevealTo(0)
	assert.Equal(t, 0, g.VisibleCount())

	g.RevealTo(5)
	assert.Equal(t, 9, g.VisibleCount(), "reveals whole batches")

	g.RevealTo(3)
	assert.Equal(t, 9, g.VisibleCount(), "cursor is monotonic")

	g.RevealTo(1000)
	assert.Equal(t, 20, g.VisibleCount(), "bounded by total")
	assert.False(t, g.HasMore())
}

func TestGalleryStaggerDelay(t *testing.T) {
	g := NewGallery(makeProducts(12))
	first := g.RevealNext()
	require.Len(t, first, 9)
	assert.Equal(t, "0.0s", first[0].RevealDelay)
	assert.Equal(t, "0.3s", first[3].RevealDelay)
	assert.Equal(t, "0.8s", first[8].RevealDelay)

	// The stagger restarts per batch.
	second := g.RevealNext()
	require.Len(t, second, 3)
	assert.Equal(t, "0.0s", second[0].RevealDelay)
}

func TestBuildCardFieldMapping(t *testing.T) {
	p := domain.Product{
		ID:     "prod_1",
		Name:   "Tidal Lines",
		Images: []string{"https://cdn.example/tidal.webp", "https://cdn.example/alt.webp"},
		Metadata: map[string]string{
			"dimensions": `24" x 36"`,
			"medium":     "Acrylic",
			"artist":     "Romel",
		},
		Price: &domain.Price{Amount: 18500, Currency: "AUD"},
	}
	c := BuildCard(p, 2)
	assert.Equal(t, "https://cdn.example/tidal.webp", c.ImageURL)
	assert.Equal(t, `24" x 36" (Acrylic)`, c.Specs)
	assert.Equal(t, "$185.00", c.PriceDisplay)
	assert.Equal(t, "0.2s", c.RevealDelay)
}

func TestBuildCardFallbacks(t *testing.T) {
	c := BuildCard(domain.Product{ID: "prod_2", Name: "Untitled"}, 0)
	assert.Equal(t, domain.FallbackImage, c.ImageURL)
	assert.Equal(t, "Enquire", c.PriceDisplay)
	assert.Equal(t, "Dimensions TBD (Print)", c.Specs)
	assert.Equal(t, "Romel", c.Artist)
}
