package content

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

const sectionColumns = `id::text, section, content, COALESCE(updated_by::text, ''), created_at, updated_at`

func (r *postgresRepo) ListSections(ctx context.Context) ([]domain.SiteContent, error) {
	const q = `
SELECT ` + sectionColumns + `
FROM site_content
ORDER BY section ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SiteContent
	for rows.Next() {
		var c domain.SiteContent
		if err := rows.Scan(&c.ID, &c.Section, &c.Content, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetSection(ctx context.Context, section string) (*domain.SiteContent, error) {
	const q = `
SELECT ` + sectionColumns + `
FROM site_content
WHERE section = $1
`
	var c domain.SiteContent
	err := r.pool.QueryRow(ctx, q, section).Scan(&c.ID, &c.Section, &c.Content, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) UpsertSection(ctx context.Context, section string, content map[string]interface{}, updatedBy string) (*domain.SiteContent, error) {
	const q = `
INSERT INTO site_content (section, content, updated_by)
VALUES ($1, $2, NULLIF($3, '')::uuid)
ON CONFLICT (section) DO UPDATE SET
    content = EXCLUDED.content,
    updated_by = EXCLUDED.updated_by,
    updated_at = now()
RETURNING ` + sectionColumns + `
`
	var c domain.SiteContent
	err := r.pool.QueryRow(ctx, q, section, content, updatedBy).Scan(&c.ID, &c.Section, &c.Content, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ListImages(ctx context.Context) ([]domain.SiteImage, error) {
	const q = `
SELECT id::text, name, url, COALESCE(alt_text, ''), COALESCE(section, ''), COALESCE(uploaded_by::text, ''), created_at
FROM site_images
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SiteImage
	for rows.Next() {
		var img domain.SiteImage
		if err := rows.Scan(&img.ID, &img.Name, &img.URL, &img.AltText, &img.Section, &img.UploadedBy, &img.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	return result, rows.Err()
}

func (r *postgresRepo) CreateImage(ctx context.Context, img domain.SiteImage) (*domain.SiteImage, error) {
	const q = `
INSERT INTO site_images (name, url, alt_text, section, uploaded_by)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, '')::uuid)
RETURNING id::text, name, url, COALESCE(alt_text, ''), COALESCE(section, ''), COALESCE(uploaded_by::text, ''), created_at
`
	var out domain.SiteImage
	err := r.pool.QueryRow(ctx, q, img.Name, img.URL, img.AltText, img.Section, img.UploadedBy).Scan(
		&out.ID, &out.Name, &out.URL, &out.AltText, &out.Section, &out.UploadedBy, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) DeleteImage(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM site_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
