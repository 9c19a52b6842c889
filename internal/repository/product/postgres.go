package product

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

const productColumns = `id::text, name, description, COALESCE(image_url, ''), COALESCE(pdf_url, ''), COALESCE(tag1, ''), COALESCE(tag2, ''), COALESCE(tag3, ''), created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, image_url, pdf_url, tag1, tag2, tag3)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
RETURNING ` + productColumns + `
`
	t1, t2, t3 := splitTags(product.Tags)
	p, err := scanProduct(r.pool.QueryRow(ctx, q, product.Name, product.Description, product.ImageURL, product.PDFURL, t1, t2, t3))
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", product.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2,
    description = $3,
    image_url = NULLIF($4, ''),
    pdf_url = NULLIF($5, ''),
    tag1 = NULLIF($6, ''),
    tag2 = NULLIF($7, ''),
    tag3 = NULLIF($8, ''),
    updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	t1, t2, t3 := splitTags(product.Tags)
	p, err := scanProduct(r.pool.QueryRow(ctx, q, product.ID, product.Name, product.Description, product.ImageURL, product.PDFURL, t1, t2, t3))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", product.ID, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var t1, t2, t3 string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.PDFURL, &t1, &t2, &t3, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Product{}, err
	}
	for _, t := range []string{t1, t2, t3} {
		if t != "" {
			p.Tags = append(p.Tags, t)
		}
	}
	return p, nil
}

func splitTags(tags []string) (string, string, string) {
	out := [3]string{}
	for i := 0; i < len(tags) && i < 3; i++ {
		out[i] = tags[i]
	}
	return out[0], out[1], out[2]
}
