package content

import (
	"context"
	"strings"

	"buildmart/internal/domain"
	contentrepo "buildmart/internal/repository/content"
)

type Service struct {
	repo contentrepo.Repository
}

func New(repo contentrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSections(ctx context.Context) ([]domain.SiteContent, error) {
	return s.repo.ListSections(ctx)
}

func (s *Service) GetSection(ctx context.Context, section string) (*domain.SiteContent, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, domain.Invalid("section required")
	}
	return s.repo.GetSection(ctx, section)
}

func (s *Service) UpsertSection(ctx context.Context, section string, content map[string]interface{}, updatedBy string) (*domain.SiteContent, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, domain.Invalid("section required")
	}
	if len(content) == 0 {
		return nil, domain.Invalid("content required")
	}
	return s.repo.UpsertSection(ctx, section, content, updatedBy)
}

type ImageInput struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Section string `json:"section"`
}

func (s *Service) ListImages(ctx context.Context) ([]domain.SiteImage, error) {
	return s.repo.ListImages(ctx)
}

func (s *Service) AddImage(ctx context.Context, in ImageInput, uploadedBy string) (*domain.SiteImage, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, domain.Invalid("url required")
	}
	return s.repo.CreateImage(ctx, domain.SiteImage{
		Name:       strings.TrimSpace(in.Name),
		URL:        strings.TrimSpace(in.URL),
		AltText:    strings.TrimSpace(in.AltText),
		Section:    strings.TrimSpace(in.Section),
		UploadedBy: uploadedBy,
	})
}

func (s *Service) DeleteImage(ctx context.Context, id string) error {
	return s.repo.DeleteImage(ctx, id)
}
