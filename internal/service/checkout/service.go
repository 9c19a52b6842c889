// Package checkout converts a point-of-sale cart into a persisted sale.
package checkout

import (
	"context"
	"strings"

	"buildmart/internal/cart"
	"buildmart/internal/domain"
	salerepo "buildmart/internal/repository/sale"

	"github.com/google/uuid"
)

type inventoryRepo interface {
	GetByProductID(ctx context.Context, productID string) (*domain.InventoryItem, error)
}

type saleRepo interface {
	Create(ctx context.Context, in salerepo.CreateInput) (*domain.SaleTransaction, error)
}

type Service struct {
	inventory inventoryRepo
	sales     saleRepo
}

func New(inventory inventoryRepo, sales saleRepo) *Service {
	return &Service{inventory: inventory, sales: sales}
}

// LineInput is one requested product and quantity.
type LineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Input struct {
	Lines         []LineInput `json:"lines"`
	PaymentMethod string      `json:"paymentMethod"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Notes         string      `json:"notes"`
	OperatorID    string      `json:"-"`
}

// Checkout validates the requested lines against current stock, then hands
// the sale to the store as one atomic unit: transaction row, line items, and
// stock decrements commit together or not at all. An empty cart fails before
// any store access.
func (s *Service) Checkout(ctx context.Context, in Input) (*domain.SaleTransaction, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	c, err := s.buildCart(ctx, in.Lines)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, domain.ErrEmptyCart
	}

	create := salerepo.CreateInput{
		TransactionNumber: newTransactionNumber(),
		TotalAmountPaise:  c.TotalPaise(),
		PaymentMethod:     method,
		CustomerName:      optional(in.CustomerName),
		CustomerPhone:     optional(in.CustomerPhone),
		Notes:             optional(in.Notes),
		CreatedBy:         in.OperatorID,
	}
	for _, line := range c.Lines() {
		create.Lines = append(create.Lines, salerepo.LineInput{
			ProductID: line.Item.ProductID,
			Quantity:  line.Quantity,
		})
	}

	result, err := s.sales.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	c.Clear()
	return result, nil
}

// buildCart re-reads inventory for every requested product so ceilings are
// checked against the latest known stock, not whatever the client saw.
// Repeated lines for the same product are merged first.
func (s *Service) buildCart(ctx context.Context, lines []LineInput) (*cart.Cart, error) {
	merged := make([]LineInput, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.Invalid("quantity must be positive")
		}
		if strings.TrimSpace(line.ProductID) == "" {
			return nil, domain.Invalid("productId required")
		}
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	c := cart.New()
	for _, line := range merged {
		item, err := s.inventory.GetByProductID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err := c.Add(*item); err != nil {
			return nil, err
		}
		if line.Quantity > 1 {
			if err := c.SetQuantity(item.ID, line.Quantity); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// newTransactionNumber returns a collision-resistant receipt number. The
// sales_transactions table also carries a uniqueness constraint, so a
// duplicate can never be recorded.
func newTransactionNumber() string {
	return "TXN-" + strings.ToUpper(uuid.NewString())
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
