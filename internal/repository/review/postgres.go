package review

import (
	"context"
	"errors"

	"buildmart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const reviewColumns = `id::text, customer_name, rating, comment, COALESCE(project, ''), review_date, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Review, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM reviews
ORDER BY COALESCE(review_date, created_at::date) DESC, created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, review domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (customer_name, rating, comment, project, review_date)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)
RETURNING ` + reviewColumns + `
`
	rev, err := scanReview(r.pool.QueryRow(ctx, q, review.CustomerName, review.Rating, review.Comment, review.Project, review.ReviewDate))
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) Update(ctx context.Context, review domain.Review) (*domain.Review, error) {
	const q = `
UPDATE reviews
SET customer_name = $2,
    rating = $3,
    comment = $4,
    project = NULLIF($5, ''),
    review_date = $6,
    updated_at = now()
WHERE id = $1
RETURNING ` + reviewColumns + `
`
	rev, err := scanReview(r.pool.QueryRow(ctx, q, review.ID, review.CustomerName, review.Rating, review.Comment, review.Project, review.ReviewDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanReview(row pgx.Row) (domain.Review, error) {
	var rev domain.Review
	if err := row.Scan(&rev.ID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Project, &rev.ReviewDate, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
		return domain.Review{}, err
	}
	return rev, nil
}
