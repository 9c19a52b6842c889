package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"buildmart/internal/domain"
	salerepo "buildmart/internal/repository/sale"
)

type stubReader struct {
	txs        []domain.SaleTransaction
	days       []domain.DailySales
	lastFilter salerepo.Filter
}

func (s *stubReader) GetByID(_ context.Context, id string) (*domain.SaleTransaction, error) {
	for i := range s.txs {
		if s.txs[i].ID == id {
			return &s.txs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubReader) List(_ context.Context, f salerepo.Filter) ([]domain.SaleTransaction, error) {
	s.lastFilter = f
	return s.txs, nil
}

func (s *stubReader) DailySummary(_ context.Context, _ int) ([]domain.DailySales, error) {
	return s.days, nil
}

func TestHistory_DefaultAndMaxLimit(t *testing.T) {
	reader := &stubReader{}
	svc := New(reader)

	if _, err := svc.History(context.Background(), HistoryQuery{}); err != nil {
		t.Fatalf("history: %v", err)
	}
	if reader.lastFilter.Limit != 100 {
		t.Fatalf("expected default limit 100, got %d", reader.lastFilter.Limit)
	}

	if _, err := svc.History(context.Background(), HistoryQuery{Limit: 10000}); err != nil {
		t.Fatalf("history: %v", err)
	}
	if reader.lastFilter.Limit != 500 {
		t.Fatalf("expected limit capped at 500, got %d", reader.lastFilter.Limit)
	}
}

func TestHistory_RejectsInvertedRange(t *testing.T) {
	svc := New(&stubReader{})

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -3)
	_, err := svc.History(context.Background(), HistoryQuery{From: &from, To: &to})
	if err == nil {
		t.Fatal("expected error for to before from")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWeeklySummary_FillsMissingDays(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	reader := &stubReader{
		days: []domain.DailySales{
			{Day: today, RevenuePaise: 220000, Transactions: 3},
			{Day: today.AddDate(0, 0, -2), RevenuePaise: 38000, Transactions: 1},
		},
	}
	svc := New(reader)

	out, err := svc.WeeklySummary(context.Background())
	if err != nil {
		t.Fatalf("weekly summary: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("expected 7 days, got %d", len(out))
	}
	if !out[0].Day.Equal(today.AddDate(0, 0, -6)) || !out[6].Day.Equal(today) {
		t.Fatalf("expected oldest-first window ending today, got %v .. %v", out[0].Day, out[6].Day)
	}
	if out[6].RevenuePaise != 220000 || out[6].Transactions != 3 {
		t.Fatalf("unexpected totals for today: %+v", out[6])
	}
	if out[4].RevenuePaise != 38000 {
		t.Fatalf("unexpected totals two days back: %+v", out[4])
	}
	for _, i := range []int{0, 1, 2, 3, 5} {
		if out[i].RevenuePaise != 0 || out[i].Transactions != 0 {
			t.Fatalf("expected zero-filled day at index %d, got %+v", i, out[i])
		}
	}
}
