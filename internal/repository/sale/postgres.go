package sale

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"buildmart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.SaleTransaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var result domain.SaleTransaction
	err = tx.QueryRow(ctx, `
INSERT INTO sales_transactions (transaction_number, total_amount_paise, payment_method, customer_name, customer_phone, notes, created_by)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid)
RETURNING id::text, transaction_number, total_amount_paise, payment_method, customer_name, customer_phone, notes, COALESCE(created_by::text, ''), created_at
`, in.TransactionNumber, in.TotalAmountPaise, in.PaymentMethod, in.CustomerName, in.CustomerPhone, in.Notes, in.CreatedBy).Scan(
		&result.ID,
		&result.TransactionNumber,
		&result.TotalAmountPaise,
		&result.PaymentMethod,
		&result.CustomerName,
		&result.CustomerPhone,
		&result.Notes,
		&result.CreatedBy,
		&result.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("sale repo: insert transaction number=%s error=%v", in.TransactionNumber, err)
		return nil, err
	}

	var sum int64
	for _, line := range in.Lines {
		// Conditional decrement: the WHERE clause is the race guard against
		// a concurrent sale of the same stock, and RETURNING snapshots the
		// unit price inside this transaction.
		var unitPrice int64
		err := tx.QueryRow(ctx, `
UPDATE product_inventory
SET stock_quantity = stock_quantity - $2,
    updated_at = now()
WHERE product_id = $1 AND stock_quantity >= $2
RETURNING selling_price_paise
`, line.ProductID, line.Quantity).Scan(&unitPrice)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.InsufficientStockError{ProductID: line.ProductID}
			}
			r.logger.Printf("sale repo: decrement product_id=%s error=%v", line.ProductID, err)
			return nil, err
		}

		item := domain.SaleLineItem{
			TransactionID:   result.ID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			UnitPricePaise:  unitPrice,
			TotalPricePaise: unitPrice * int64(line.Quantity),
		}
		if err := tx.QueryRow(ctx, `
INSERT INTO sales_items (transaction_id, product_id, quantity, unit_price_paise, total_price_paise)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`, item.TransactionID, item.ProductID, item.Quantity, item.UnitPricePaise, item.TotalPricePaise).Scan(&item.ID, &item.CreatedAt); err != nil {
			r.logger.Printf("sale repo: insert item product_id=%s error=%v", line.ProductID, err)
			return nil, err
		}
		sum += item.TotalPricePaise
		result.Items = append(result.Items, item)
	}

	// A price edit between the cart read and this commit shifts line totals;
	// the stored total must always equal their sum.
	if sum != result.TotalAmountPaise {
		if _, err := tx.Exec(ctx, `
UPDATE sales_transactions SET total_amount_paise = $2 WHERE id = $1
`, result.ID, sum); err != nil {
			return nil, err
		}
		result.TotalAmountPaise = sum
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("sale repo: created transaction %s items=%d total_paise=%d", result.TransactionNumber, len(result.Items), result.TotalAmountPaise)
	return &result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.SaleTransaction, error) {
	const q = `
SELECT id::text, transaction_number, total_amount_paise, payment_method, customer_name, customer_phone, notes, COALESCE(created_by::text, ''), created_at
FROM sales_transactions
WHERE id = $1
`
	var t domain.SaleTransaction
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&t.ID,
		&t.TransactionNumber,
		&t.TotalAmountPaise,
		&t.PaymentMethod,
		&t.CustomerName,
		&t.CustomerPhone,
		&t.Notes,
		&t.CreatedBy,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Items = items[t.ID]
	return &t, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.SaleTransaction, error) {
	q := `
SELECT id::text, transaction_number, total_amount_paise, payment_method, customer_name, customer_phone, notes, COALESCE(created_by::text, ''), created_at
FROM sales_transactions
WHERE 1=1
`
	args := []interface{}{}
	if f.From != nil {
		args = append(args, *f.From)
		q += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		q += ` AND created_at < $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("sale repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.SaleTransaction
	var ids []string
	for rows.Next() {
		var t domain.SaleTransaction
		if err := rows.Scan(
			&t.ID,
			&t.TransactionNumber,
			&t.TotalAmountPaise,
			&t.PaymentMethod,
			&t.CustomerName,
			&t.CustomerPhone,
			&t.Notes,
			&t.CreatedBy,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *postgresRepo) DailySummary(ctx context.Context, days int) ([]domain.DailySales, error) {
	const q = `
SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total_amount_paise), 0)
FROM sales_transactions
WHERE created_at >= date_trunc('day', now()) - make_interval(days => $1 - 1)
GROUP BY day
ORDER BY day ASC
`
	rows, err := r.pool.Query(ctx, q, days)
	if err != nil {
		r.logger.Printf("sale repo: summary error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.DailySales
	for rows.Next() {
		var d domain.DailySales
		if err := rows.Scan(&d.Day, &d.Transactions, &d.RevenuePaise); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *postgresRepo) loadItems(ctx context.Context, transactionIDs []string) (map[string][]domain.SaleLineItem, error) {
	const q = `
SELECT s.id::text, s.transaction_id::text, s.product_id::text, p.name, s.quantity, s.unit_price_paise, s.total_price_paise, s.created_at
FROM sales_items s
JOIN products p ON p.id = s.product_id
WHERE s.transaction_id = ANY($1::uuid[])
ORDER BY s.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, transactionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.SaleLineItem)
	for rows.Next() {
		var item domain.SaleLineItem
		if err := rows.Scan(
			&item.ID,
			&item.TransactionID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPricePaise,
			&item.TotalPricePaise,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		out[item.TransactionID] = append(out[item.TransactionID], item)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
