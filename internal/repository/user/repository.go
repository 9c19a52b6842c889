package user

import (
	"context"

	"buildmart/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
}
