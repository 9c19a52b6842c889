package message

import (
	"context"

	"buildmart/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}
