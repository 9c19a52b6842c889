package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PDFURL      string    `json:"pdfUrl,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InventoryItem tracks stock and pricing for one product. Prices are held
// in integer paise so totals never drift.
type InventoryItem struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	StockQuantity     int       `json:"stockQuantity"`
	SellingPricePaise int64     `json:"sellingPricePaise"`
	CostPricePaise    int64     `json:"costPricePaise,omitempty"`
	ReorderLevel      int       `json:"reorderLevel"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Product           *Product  `json:"product,omitempty"`
}

// LowStock reports whether the item has fallen to its reorder level.
func (i InventoryItem) LowStock() bool {
	return i.StockQuantity <= i.ReorderLevel
}
