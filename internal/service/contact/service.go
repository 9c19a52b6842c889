package contact

import (
	"context"
	"strings"

	"buildmart/internal/domain"
)

type messageRepo interface {
	Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo messageRepo
}

func New(repo messageRepo) *Service {
	return &Service{repo: repo}
}

type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	body := strings.TrimSpace(in.Message)

	switch {
	case name == "":
		return nil, domain.Invalid("name required")
	case email == "" || !strings.Contains(email, "@"):
		return nil, domain.Invalid("valid email required")
	case phone == "":
		return nil, domain.Invalid("phone required")
	case body == "":
		return nil, domain.Invalid("message required")
	}

	return s.repo.Create(ctx, domain.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: body,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetRead(ctx context.Context, id string, read bool) error {
	return s.repo.SetRead(ctx, id, read)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
