package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"buildmart/internal/domain"
	"buildmart/internal/repository/inventory"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type InventoryWriter interface {
	Upsert(ctx context.Context, in inventory.UpsertInput) (*domain.InventoryItem, error)
}

// CSVImporter loads a catalog CSV with opening stock. Prices are rupee
// decimal strings ("380.00") and are stored as paise.
type CSVImporter struct {
	reader    *csv.Reader
	products  ProductWriter
	inventory InventoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, inv InventoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		products:  products,
		inventory: inv,
	}
}

type csvRow struct {
	Name         string
	Description  string
	Tags         []string
	ImageURL     string
	PDFURL       string
	Stock        int
	SellingPaise int64
	CostPaise    int64
	ReorderLevel int
}

// Run parses CSV rows and creates one product with its inventory row each.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue
		}

		if err := i.save(ctx, row); err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	created, err := i.products.Create(ctx, domain.Product{
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		PDFURL:      row.PDFURL,
		Tags:        row.Tags,
	})
	if err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}

	_, err = i.inventory.Upsert(ctx, inventory.UpsertInput{
		ProductID:         created.ID,
		StockQuantity:     row.Stock,
		SellingPricePaise: row.SellingPaise,
		CostPricePaise:    row.CostPaise,
		ReorderLevel:      row.ReorderLevel,
	})
	if err != nil {
		return fmt.Errorf("set inventory for %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}
	description := pick(record, index, "description")
	if description == "" {
		return nil, fmt.Errorf("product %q: description required", name)
	}

	sellingPaise, err := domain.ParsePaise(pick(record, index, "selling_price"))
	if err != nil {
		return nil, fmt.Errorf("product %q: selling_price: %w", name, err)
	}

	var costPaise int64
	if raw := pick(record, index, "cost_price"); raw != "" {
		costPaise, err = domain.ParsePaise(raw)
		if err != nil {
			return nil, fmt.Errorf("product %q: cost_price: %w", name, err)
		}
	}

	stock, err := pickInt(record, index, "stock_quantity")
	if err != nil {
		return nil, fmt.Errorf("product %q: stock_quantity: %w", name, err)
	}
	if stock < 0 {
		return nil, fmt.Errorf("product %q: stock_quantity must not be negative", name)
	}

	reorder, err := pickInt(record, index, "reorder_level")
	if err != nil {
		return nil, fmt.Errorf("product %q: reorder_level: %w", name, err)
	}

	var tags []string
	if raw := pick(record, index, "tags"); raw != "" {
		for _, t := range strings.Split(raw, ";") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	if len(tags) > 3 {
		tags = tags[:3]
	}

	return &csvRow{
		Name:         name,
		Description:  description,
		Tags:         tags,
		ImageURL:     pick(record, index, "image_url"),
		PDFURL:       pick(record, index, "pdf_url"),
		Stock:        stock,
		SellingPaise: sellingPaise,
		CostPaise:    costPaise,
		ReorderLevel: reorder,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickInt(record []string, index map[string]int, key string) (int, error) {
	raw := pick(record, index, key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
