package inventory

import (
	"context"
	"errors"
	"io"
	"log"

	"buildmart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const joinedColumns = `
i.id::text, i.product_id::text, i.stock_quantity, i.selling_price_paise,
COALESCE(i.cost_price_paise, 0), i.reorder_level, i.created_at, i.updated_at,
p.name, p.description, COALESCE(p.image_url, '')`

func (r *postgresRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	const q = `
SELECT ` + joinedColumns + `
FROM product_inventory i
JOIN products p ON p.id = i.product_id
ORDER BY p.name ASC
`
	return r.queryItems(ctx, q)
}

func (r *postgresRepo) ListSellable(ctx context.Context, search string) ([]domain.InventoryItem, error) {
	q := `
SELECT ` + joinedColumns + `
FROM product_inventory i
JOIN products p ON p.id = i.product_id
WHERE i.stock_quantity > 0
`
	args := []interface{}{}
	if search != "" {
		q += ` AND (p.name ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}
	q += ` ORDER BY p.name ASC`
	return r.queryItems(ctx, q, args...)
}

func (r *postgresRepo) GetByProductID(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	const q = `
SELECT ` + joinedColumns + `
FROM product_inventory i
JOIN products p ON p.id = i.product_id
WHERE i.product_id = $1
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("inventory repo: get product_id=%s error=%v", productID, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.InventoryItem, error) {
	const q = `
INSERT INTO product_inventory (product_id, stock_quantity, selling_price_paise, cost_price_paise, reorder_level)
VALUES ($1, $2, $3, NULLIF($4, 0), $5)
ON CONFLICT (product_id) DO UPDATE SET
    stock_quantity = EXCLUDED.stock_quantity,
    selling_price_paise = EXCLUDED.selling_price_paise,
    cost_price_paise = EXCLUDED.cost_price_paise,
    reorder_level = EXCLUDED.reorder_level,
    updated_at = now()
RETURNING id::text, product_id::text, stock_quantity, selling_price_paise, COALESCE(cost_price_paise, 0), reorder_level, created_at, updated_at
`
	var item domain.InventoryItem
	err := r.pool.QueryRow(ctx, q, in.ProductID, in.StockQuantity, in.SellingPricePaise, in.CostPricePaise, in.ReorderLevel).Scan(
		&item.ID,
		&item.ProductID,
		&item.StockQuantity,
		&item.SellingPricePaise,
		&item.CostPricePaise,
		&item.ReorderLevel,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		r.logger.Printf("inventory repo: upsert product_id=%s error=%v", in.ProductID, err)
		return nil, err
	}
	r.logger.Printf("inventory repo: upserted product_id=%s stock=%d", item.ProductID, item.StockQuantity)
	return &item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, productID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_inventory WHERE product_id = $1`, productID)
	if err != nil {
		r.logger.Printf("inventory repo: delete product_id=%s error=%v", productID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryItems(ctx context.Context, q string, args ...interface{}) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("inventory repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("inventory repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func scanItem(row pgx.Row) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	var prod domain.Product
	if err := row.Scan(
		&item.ID,
		&item.ProductID,
		&item.StockQuantity,
		&item.SellingPricePaise,
		&item.CostPricePaise,
		&item.ReorderLevel,
		&item.CreatedAt,
		&item.UpdatedAt,
		&prod.Name,
		&prod.Description,
		&prod.ImageURL,
	); err != nil {
		return domain.InventoryItem{}, err
	}
	prod.ID = item.ProductID
	item.Product = &prod
	return item, nil
}
