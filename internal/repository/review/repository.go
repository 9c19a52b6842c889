package review

import (
	"context"

	"buildmart/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	Update(ctx context.Context, review domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
