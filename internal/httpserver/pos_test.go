package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buildmart/internal/domain"
)

func authedDeps() Deps {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{valid: true, user: &domain.User{ID: "op-1", Email: "admin@buildmart.in"}}
	return deps
}

func adminRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer session-token")
	return req
}

func TestPOSInventory_PassesSearchTerm(t *testing.T) {
	deps := authedDeps()
	catalogSvc := &stubCatalogSvc{items: []domain.InventoryItem{{
		ProductID:         "p1",
		StockQuantity:     40,
		SellingPricePaise: 38000,
		ReorderLevel:      50,
	}}}
	deps.CatalogSvc = catalogSvc
	router := newTestRouter(deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodGet, "/api/admin/pos/inventory?search=cement", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if catalogSvc.lastSearch != "cement" {
		t.Fatalf("expected search term to reach the service, got %q", catalogSvc.lastSearch)
	}
	if !strings.Contains(rec.Body.String(), `"priceDisplay":"₹380.00"`) {
		t.Fatalf("expected formatted price in body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"lowStock":true`) {
		t.Fatalf("expected low stock flag in body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_Created(t *testing.T) {
	deps := authedDeps()
	checkoutSvc := &stubCheckoutSvc{
		tx: &domain.SaleTransaction{
			ID:                "tx-1",
			TransactionNumber: "TXN-ABC",
			TotalAmountPaise:  220000,
			PaymentMethod:     domain.PaymentCash,
		},
	}
	deps.CheckoutSvc = checkoutSvc
	router := newTestRouter(deps)

	body := `{"lines":[{"productId":"p1","quantity":2}],"paymentMethod":"cash"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/pos/checkout", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if checkoutSvc.last.OperatorID != "op-1" {
		t.Fatalf("expected operator id from session, got %q", checkoutSvc.last.OperatorID)
	}
	if !strings.Contains(rec.Body.String(), `"totalDisplay":"₹2,200.00"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	deps := authedDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{err: domain.ErrEmptyCart}
	router := newTestRouter(deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/pos/checkout", `{"lines":[],"paymentMethod":"cash"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutHandler_InsufficientStock(t *testing.T) {
	deps := authedDeps()
	deps.CheckoutSvc = &stubCheckoutSvc{err: &domain.InsufficientStockError{ProductID: "p1"}}
	router := newTestRouter(deps)

	body := `{"lines":[{"productId":"p1","quantity":99}],"paymentMethod":"cash"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodPost, "/api/admin/pos/checkout", body))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"productId":"p1"`) {
		t.Fatalf("expected offending product in body: %s", rec.Body.String())
	}
}

func TestSalesHistory_BadDate(t *testing.T) {
	router := newTestRouter(authedDeps())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodGet, "/api/admin/sales?from=yesterday", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSalesHistory_InclusiveToBound(t *testing.T) {
	deps := authedDeps()
	salesSvc := &stubSalesSvc{}
	deps.SalesSvc = salesSvc
	router := newTestRouter(deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(http.MethodGet, "/api/admin/sales?from=2026-08-01&to=2026-08-07", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if salesSvc.last.To == nil || salesSvc.last.To.Format("2006-01-02") != "2026-08-08" {
		t.Fatalf("expected to bound pushed past the named day, got %v", salesSvc.last.To)
	}
}
