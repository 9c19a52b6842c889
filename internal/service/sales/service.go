// Package sales exposes the read side of the sales ledger.
package sales

import (
	"context"
	"time"

	"buildmart/internal/domain"
	salerepo "buildmart/internal/repository/sale"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type saleReader interface {
	GetByID(ctx context.Context, id string) (*domain.SaleTransaction, error)
	List(ctx context.Context, f salerepo.Filter) ([]domain.SaleTransaction, error)
	DailySummary(ctx context.Context, days int) ([]domain.DailySales, error)
}

type Service struct {
	repo saleReader
}

func New(repo saleReader) *Service {
	return &Service{repo: repo}
}

type HistoryQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

func (s *Service) History(ctx context.Context, q HistoryQuery) ([]domain.SaleTransaction, error) {
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, domain.Invalid("to must not precede from")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.List(ctx, salerepo.Filter{From: q.From, To: q.To, Limit: limit})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.SaleTransaction, error) {
	return s.repo.GetByID(ctx, id)
}

// WeeklySummary returns per-day totals for the rolling last seven days.
// Days without sales are filled in with zero rows so charts stay contiguous.
func (s *Service) WeeklySummary(ctx context.Context) ([]domain.DailySales, error) {
	rows, err := s.repo.DailySummary(ctx, 7)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]domain.DailySales, len(rows))
	for _, row := range rows {
		byDay[row.Day.Format("2006-01-02")] = row
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	out := make([]domain.DailySales, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if row, ok := byDay[day.Format("2006-01-02")]; ok {
			row.Day = day
			out = append(out, row)
			continue
		}
		out = append(out, domain.DailySales{Day: day})
	}
	return out, nil
}
