package message

import (
	"context"

	"buildmart/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	const q = `
INSERT INTO contact_messages (name, email, phone, message)
VALUES ($1, $2, $3, $4)
RETURNING id::text, name, email, phone, message, read, created_at
`
	var out domain.ContactMessage
	err := r.pool.QueryRow(ctx, q, msg.Name, msg.Email, msg.Phone, msg.Message).Scan(
		&out.ID, &out.Name, &out.Email, &out.Phone, &out.Message, &out.Read, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	const q = `
SELECT id::text, name, email, phone, message, read, created_at
FROM contact_messages
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *postgresRepo) SetRead(ctx context.Context, id string, read bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE contact_messages SET read = $2 WHERE id = $1`, id, read)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
