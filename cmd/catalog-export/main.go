// Command catalog-export dumps the live catalog to a spreadsheet so works
// can be checked against Stripe without clicking through the dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/lemoralexis/artbeat/internal/adapters/payments/stripecatalog"
	"github.com/lemoralexis/artbeat/internal/domain"
	"github.com/lemoralexis/artbeat/internal/usecase"
)

func main() {
	out := flag.String("o", "catalog.xlsx", "output file")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	catalog, err := stripecatalog.New(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Fatal().Err(err).Msg("stripe catalog")
	}
	uc := &usecase.CatalogUC{Catalog: catalog}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	products, err := uc.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch products")
	}

	if err := writeWorkbook(products, *out); err != nil {
		log.Fatal().Err(err).Msg("write workbook")
	}
	log.Info().Int("products", len(products)).Str("file", *out).Msg("catalog exported")
}

func writeWorkbook(products []domain.Product, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	headers := []string{"ID", "Name", "Artist", "Medium", "Dimensions", "Price", "Images"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range products {
		price := "Enquire"
		if p.Price != nil {
			price = domain.FormatAmount(p.Price.Amount, p.Price.Currency)
		}
		values := []any{
			p.ID,
			p.Name,
			p.Meta("artist", "Romel"),
			p.Meta("medium", "Print"),
			p.Meta("dimensions", "Variable"),
			price,
			len(p.Images),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
