package seed

import (
	"context"
	"fmt"
	"os"

	"buildmart/internal/service/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name              string
	Description       string
	Tags              [3]string
	StockQuantity     int
	SellingPricePaise int64
	CostPricePaise    int64
	ReorderLevel      int
}

// Apply inserts demo data for manual testing: one admin account, a small
// construction-materials catalog with opening stock, and public site content.
// Safe to run repeatedly.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	adminID, err := ensureAdmin(ctx, pool)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	products := []productSeed{
		{
			Name:              "OPC 53 Grade Cement 50kg",
			Description:       "High-strength ordinary portland cement for structural work",
			Tags:              [3]string{"cement", "structural", ""},
			StockQuantity:     120,
			SellingPricePaise: 38000,
			CostPricePaise:    33500,
			ReorderLevel:      30,
		},
		{
			Name:              "TMT Steel Bar 12mm",
			Description:       "Fe550 grade thermo-mechanically treated rebar, 12 metre length",
			Tags:              [3]string{"steel", "rebar", "structural"},
			StockQuantity:     200,
			SellingPricePaise: 75000,
			CostPricePaise:    68000,
			ReorderLevel:      50,
		},
		{
			Name:              "Red Clay Bricks (per 100)",
			Description:       "Kiln-fired first class bricks, sold in lots of one hundred",
			Tags:              [3]string{"bricks", "masonry", ""},
			StockQuantity:     80,
			SellingPricePaise: 85000,
			CostPricePaise:    72000,
			ReorderLevel:      20,
		},
		{
			Name:              "River Sand (per tonne)",
			Description:       "Washed river sand for plastering and concrete mixes",
			Tags:              [3]string{"sand", "aggregate", ""},
			StockQuantity:     35,
			SellingPricePaise: 180000,
			CostPricePaise:    150000,
			ReorderLevel:      10,
		},
		{
			Name:              "Waterproofing Compound 5L",
			Description:       "Integral liquid waterproofing admixture for mortar and concrete",
			Tags:              [3]string{"waterproofing", "chemicals", ""},
			StockQuantity:     45,
			SellingPricePaise: 62000,
			CostPricePaise:    51000,
			ReorderLevel:      12,
		},
		{
			Name:              "AAC Block 600x200x100mm",
			Description:       "Lightweight autoclaved aerated concrete block",
			Tags:              [3]string{"blocks", "masonry", ""},
			StockQuantity:     300,
			SellingPricePaise: 5500,
			CostPricePaise:    4600,
			ReorderLevel:      75,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := seedContent(ctx, pool, adminID); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	if err := seedReviews(ctx, pool); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@buildmart.in"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM users WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != pgx.ErrNoRows {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO users (email, first_name, password_hash, role)
VALUES ($1, 'Admin', $2, 'admin')
RETURNING id::text
`
	if err := pool.QueryRow(ctx, q, email, hash).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// upsertProduct keys demo products by name: the catalog table has no natural
// key, so the seed looks up before inserting to stay idempotent.
func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	var productID string
	err := pool.QueryRow(ctx, `SELECT id::text FROM products WHERE name = $1`, p.Name).Scan(&productID)
	if err == pgx.ErrNoRows {
		const insert = `
INSERT INTO products (name, description, tag1, tag2, tag3)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
RETURNING id::text
`
		err = pool.QueryRow(ctx, insert, p.Name, p.Description, p.Tags[0], p.Tags[1], p.Tags[2]).Scan(&productID)
	}
	if err != nil {
		return err
	}

	const inv = `
INSERT INTO product_inventory (product_id, stock_quantity, selling_price_paise, cost_price_paise, reorder_level)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (product_id) DO UPDATE
SET selling_price_paise = EXCLUDED.selling_price_paise,
    cost_price_paise = EXCLUDED.cost_price_paise,
    reorder_level = EXCLUDED.reorder_level,
    updated_at = now()
`
	_, err = pool.Exec(ctx, inv, productID, p.StockQuantity, p.SellingPricePaise, p.CostPricePaise, p.ReorderLevel)
	return err
}

func seedContent(ctx context.Context, pool *pgxpool.Pool, adminID string) error {
	sections := map[string]string{
		"hero":    `{"title": "BuildMart Construction Supplies", "subtitle": "Cement, steel, bricks and more at trade prices"}`,
		"about":   `{"heading": "About us", "body": "Family-run building materials supplier serving contractors since 1998."}`,
		"contact": `{"phone": "+91 98765 43210", "address": "Plot 14, Industrial Estate"}`,
	}
	const q = `
INSERT INTO site_content (section, content, updated_by)
VALUES ($1, $2::jsonb, $3)
ON CONFLICT (section) DO NOTHING
`
	for section, content := range sections {
		if _, err := pool.Exec(ctx, q, section, content, adminID); err != nil {
			return err
		}
	}
	return nil
}

func seedReviews(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM reviews`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	const q = `
INSERT INTO reviews (customer_name, rating, comment, project, review_date)
VALUES
    ('Ravi Kumar', 5, 'Cement delivered same day, sites never idle.', 'Duplex construction', '2026-06-12'),
    ('Meena Constructions', 4, 'Good rebar quality, billing could be faster.', 'Apartment block', '2026-07-03')
`
	_, err := pool.Exec(ctx, q)
	return err
}
