package inventory

import (
	"context"

	"buildmart/internal/domain"
)

// UpsertInput creates or replaces the inventory row for one product.
type UpsertInput struct {
	ProductID         string
	StockQuantity     int
	SellingPricePaise int64
	CostPricePaise    int64
	ReorderLevel      int
}

type Repository interface {
	// List returns every inventory row joined with its product.
	List(ctx context.Context) ([]domain.InventoryItem, error)
	// ListSellable returns rows with stock > 0, optionally filtered by a
	// case-insensitive match on product name or description.
	ListSellable(ctx context.Context, search string) ([]domain.InventoryItem, error)
	GetByProductID(ctx context.Context, productID string) (*domain.InventoryItem, error)
	Upsert(ctx context.Context, in UpsertInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, productID string) error
}
