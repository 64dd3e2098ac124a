// Package importer loads a coffee menu from a CSV export so the shop can
// update its offering without redeploying.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coffeesaf/internal/domain"
)

type MenuWriter interface {
	InsertAll(ctx context.Context, items []domain.CoffeeItem) error
}

// CSVImporter reads menu rows and upserts them through the catalog
// repository. Expected headers: name, type, description, ingredients,
// image_uri, price_s, price_m, price_l, rating, category.
type CSVImporter struct {
	reader *csv.Reader
	repo   MenuWriter
}

func NewCSVImporter(r io.Reader, repo MenuWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, repo: repo}
}

// Run parses all rows and upserts the resulting items in one batch. It
// returns the number of imported items.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"name", "type", "price_s", "price_m", "price_l", "category"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing required column %q", required)
		}
	}

	var items []domain.CoffeeItem
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}
		item := parseRow(record, index)
		if item == nil {
			continue
		}
		items = append(items, *item)
	}

	if len(items) == 0 {
		return 0, nil
	}
	if err := i.repo.InsertAll(ctx, items); err != nil {
		return 0, fmt.Errorf("insert items: %w", err)
	}
	return len(items), nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) *domain.CoffeeItem {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	variant := field("type")
	if name == "" || variant == "" {
		return nil
	}

	rating := 0.0
	if v := field("rating"); v != "" {
		parsed, err := strconv.ParseFloat(v, 32)
		if err == nil {
			rating = parsed
		}
	}

	return &domain.CoffeeItem{
		Name:        name,
		Type:        variant,
		Description: field("description"),
		Ingredients: field("ingredients"),
		ImageURI:    field("image_uri"),
		PriceS:      field("price_s"),
		PriceM:      field("price_m"),
		PriceL:      field("price_l"),
		Rating:      float32(rating),
		Category:    field("category"),
	}
}
