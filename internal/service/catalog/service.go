// Package catalog manages products and their stock records.
package catalog

import (
	"context"
	"strings"

	"buildmart/internal/domain"
	inventoryrepo "buildmart/internal/repository/inventory"
)

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type inventoryRepo interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	ListSellable(ctx context.Context, search string) ([]domain.InventoryItem, error)
	GetByProductID(ctx context.Context, productID string) (*domain.InventoryItem, error)
	Upsert(ctx context.Context, in inventoryrepo.UpsertInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, productID string) error
}

type Service struct {
	products  productRepo
	inventory inventoryRepo
}

func New(products productRepo, inventory inventoryRepo) *Service {
	return &Service{products: products, inventory: inventory}
}

type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	PDFURL      string   `json:"pdfUrl"`
	Tags        []string `json:"tags"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.Invalid("description required")
	}
	if len(in.Tags) > 3 {
		return domain.Invalid("at most three tags")
	}
	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		PDFURL:      strings.TrimSpace(in.PDFURL),
		Tags:        in.Tags,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		PDFURL:      strings.TrimSpace(in.PDFURL),
		Tags:        in.Tags,
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

type InventoryInput struct {
	StockQuantity     int   `json:"stockQuantity"`
	SellingPricePaise int64 `json:"sellingPricePaise"`
	CostPricePaise    int64 `json:"costPricePaise"`
	ReorderLevel      int   `json:"reorderLevel"`
}

func (s *Service) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventory.List(ctx)
}

// ListSellable returns in-stock items for the POS offer list.
func (s *Service) ListSellable(ctx context.Context, search string) ([]domain.InventoryItem, error) {
	return s.inventory.ListSellable(ctx, strings.TrimSpace(search))
}

func (s *Service) UpsertInventory(ctx context.Context, productID string, in InventoryInput) (*domain.InventoryItem, error) {
	if in.StockQuantity < 0 {
		return nil, domain.Invalid("stock quantity must not be negative")
	}
	if in.SellingPricePaise <= 0 {
		return nil, domain.Invalid("selling price must be positive")
	}
	if in.CostPricePaise < 0 {
		return nil, domain.Invalid("cost price must not be negative")
	}
	if in.ReorderLevel < 0 {
		return nil, domain.Invalid("reorder level must not be negative")
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.inventory.Upsert(ctx, inventoryrepo.UpsertInput{
		ProductID:         productID,
		StockQuantity:     in.StockQuantity,
		SellingPricePaise: in.SellingPricePaise,
		CostPricePaise:    in.CostPricePaise,
		ReorderLevel:      in.ReorderLevel,
	})
}

func (s *Service) DeleteInventory(ctx context.Context, productID string) error {
	return s.inventory.Delete(ctx, productID)
}
