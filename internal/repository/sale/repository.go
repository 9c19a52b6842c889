package sale

import (
	"context"
	"time"

	"buildmart/internal/domain"
)

// LineInput is one cart line at submit time. The unit price is re-read from
// inventory inside the checkout transaction, not taken from here.
type LineInput struct {
	ProductID string
	Quantity  int
}

// CreateInput carries everything needed to persist one checkout.
type CreateInput struct {
	TransactionNumber string
	TotalAmountPaise  int64
	PaymentMethod     domain.PaymentMethod
	CustomerName      *string
	CustomerPhone     *string
	Notes             *string
	CreatedBy         string
	Lines             []LineInput
}

// Filter narrows the sales history listing.
type Filter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type Repository interface {
	// Create persists the transaction, its line items, and the matching
	// stock decrements as a single database transaction. A decrement that
	// would drive stock negative aborts the whole unit of work with
	// *domain.InsufficientStockError.
	Create(ctx context.Context, in CreateInput) (*domain.SaleTransaction, error)
	GetByID(ctx context.Context, id string) (*domain.SaleTransaction, error)
	List(ctx context.Context, f Filter) ([]domain.SaleTransaction, error)
	// DailySummary aggregates the last n days of sales, oldest day first.
	DailySummary(ctx context.Context, days int) ([]domain.DailySales, error)
}
