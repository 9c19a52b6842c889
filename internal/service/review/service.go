package review

import (
	"context"
	"strings"
	"time"

	"buildmart/internal/domain"
)

type reviewRepo interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	Update(ctx context.Context, review domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo reviewRepo
}

func New(repo reviewRepo) *Service {
	return &Service{repo: repo}
}

type Input struct {
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Project      string `json:"project"`
	ReviewDate   string `json:"reviewDate"`
}

func (in Input) toDomain() (domain.Review, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return domain.Review{}, domain.Invalid("customerName required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Review{}, domain.Invalid("rating must be between 1 and 5")
	}
	if strings.TrimSpace(in.Comment) == "" {
		return domain.Review{}, domain.Invalid("comment required")
	}

	rev := domain.Review{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
		Project:      strings.TrimSpace(in.Project),
	}
	if d := strings.TrimSpace(in.ReviewDate); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return domain.Review{}, domain.Invalid("reviewDate must be YYYY-MM-DD")
		}
		rev.ReviewDate = &parsed
	}
	return rev, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Review, error) {
	rev, err := in.toDomain()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, rev)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Review, error) {
	rev, err := in.toDomain()
	if err != nil {
		return nil, err
	}
	rev.ID = id
	return s.repo.Update(ctx, rev)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
