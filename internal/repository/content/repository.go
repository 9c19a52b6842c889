package content

import (
	"context"

	"buildmart/internal/domain"
)

// Repository covers both editable site sections and hosted-image records.
type Repository interface {
	ListSections(ctx context.Context) ([]domain.SiteContent, error)
	GetSection(ctx context.Context, section string) (*domain.SiteContent, error)
	UpsertSection(ctx context.Context, section string, content map[string]interface{}, updatedBy string) (*domain.SiteContent, error)

	ListImages(ctx context.Context) ([]domain.SiteImage, error)
	CreateImage(ctx context.Context, img domain.SiteImage) (*domain.SiteImage, error)
	DeleteImage(ctx context.Context, id string) error
}
