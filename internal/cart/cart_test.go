package cart

import (
	"errors"
	"testing"

	"buildmart/internal/domain"
)

func stocked(id string, pricePaise int64, stock int) domain.InventoryItem {
	return domain.InventoryItem{
		ID:                id,
		ProductID:         "prod-" + id,
		SellingPricePaise: pricePaise,
		StockQuantity:     stock,
	}
}

func TestAddNewLineStartsAtOne(t *testing.T) {
	c := New()
	if err := c.Add(stocked("a", 12050, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", lines)
	}
}

func TestAddIncrementsUpToStock(t *testing.T) {
	c := New()
	item := stocked("a", 100, 2)
	if err := c.Add(item); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := c.Add(item); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if err := c.Add(item); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 2 {
		t.Fatalf("rejected add must not mutate quantity, got %d", got)
	}
}

func TestAddZeroStockItemRejected(t *testing.T) {
	c := New()
	if err := c.Add(stocked("a", 100, 0)); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if !c.Empty() {
		t.Fatal("cart must stay empty")
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	if err := c.Add(stocked("a", 100, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.SetQuantity("a", 0); err != nil {
		t.Fatalf("set to zero: %v", err)
	}
	if !c.Empty() {
		t.Fatal("expected empty cart")
	}
}

func TestSetQuantityOverStockKeepsPriorQuantity(t *testing.T) {
	c := New()
	item := stocked("a", 100, 4)
	if err := c.Add(item); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.SetQuantity("a", 3); err != nil {
		t.Fatalf("set within stock: %v", err)
	}
	if err := c.SetQuantity("a", 10); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 3 {
		t.Fatalf("expected prior quantity 3 after rejection, got %d", got)
	}
}

func TestSetQuantityUnknownItem(t *testing.T) {
	c := New()
	if err := c.SetQuantity("missing", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveIsUnconditional(t *testing.T) {
	c := New()
	if err := c.Add(stocked("a", 100, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	c.Remove("a")
	c.Remove("a") // absent, no-op
	if !c.Empty() {
		t.Fatal("expected empty cart")
	}
}

func TestTotalIsExactPaise(t *testing.T) {
	// 120.50 x 3 + 75.00 x 2 must be exactly 511.50.
	c := New()
	a := stocked("a", 12050, 10)
	b := stocked("b", 7500, 10)
	for i := 0; i < 3; i++ {
		if err := c.Add(a); err != nil {
			t.Fatalf("add a: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := c.Add(b); err != nil {
			t.Fatalf("add b: %v", err)
		}
	}
	if got := c.TotalPaise(); got != 51150 {
		t.Fatalf("expected 51150 paise, got %d", got)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	if err := c.Add(stocked("a", 100, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	c.Clear()
	c.Clear()
	if !c.Empty() || c.TotalPaise() != 0 {
		t.Fatal("expected empty cart after double clear")
	}
}

func TestLinesInvariantUnderMixedOps(t *testing.T) {
	c := New()
	a := stocked("a", 50000, 2)
	b := stocked("b", 120000, 1)
	if err := c.Add(a); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := c.Add(a); err != nil {
		t.Fatalf("add a again: %v", err)
	}
	if err := c.Add(b); err != nil {
		t.Fatalf("add b: %v", err)
	}
	_ = c.SetQuantity("a", 5) // over stock, rejected
	_ = c.Add(b)              // over stock, rejected

	for _, line := range c.Lines() {
		if line.Quantity < 1 || line.Quantity > line.Item.StockQuantity {
			t.Fatalf("line %s violates 1 <= qty <= stock: %+v", line.Item.ID, line)
		}
	}
	// Product A 500.00 x 2 + Product B 1200.00 x 1 = 2200.00.
	if got := c.TotalPaise(); got != 220000 {
		t.Fatalf("expected 220000 paise, got %d", got)
	}
}
