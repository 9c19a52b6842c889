package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildmart/internal/domain"
	"buildmart/internal/service/catalog"
	"buildmart/internal/service/checkout"
	"buildmart/internal/service/contact"
	contentsvc "buildmart/internal/service/content"
	"buildmart/internal/service/review"
	"buildmart/internal/service/sales"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubAuthSvc struct {
	token    string
	user     *domain.User
	loginErr error
	valid    bool
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.token, s.user, s.loginErr
}

func (s *stubAuthSvc) Validate(_ context.Context, _ string) (*domain.User, bool) {
	return s.user, s.valid
}

func (s *stubAuthSvc) Logout(_ context.Context, _ string) error { return nil }

type stubCheckoutSvc struct {
	tx   *domain.SaleTransaction
	err  error
	last checkout.Input
}

func (s *stubCheckoutSvc) Checkout(_ context.Context, in checkout.Input) (*domain.SaleTransaction, error) {
	s.last = in
	return s.tx, s.err
}

type stubCatalogSvc struct {
	products   []domain.Product
	items      []domain.InventoryItem
	lastSearch string
	err        error
}

func (s *stubCatalogSvc) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogSvc) GetProduct(_ context.Context, _ string) (*domain.Product, error) {
	if len(s.products) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.products[0], s.err
}

func (s *stubCatalogSvc) CreateProduct(_ context.Context, in catalog.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: "p-new", Name: in.Name}, s.err
}

func (s *stubCatalogSvc) UpdateProduct(_ context.Context, id string, in catalog.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: in.Name}, s.err
}

func (s *stubCatalogSvc) DeleteProduct(_ context.Context, _ string) error { return s.err }

func (s *stubCatalogSvc) ListInventory(_ context.Context) ([]domain.InventoryItem, error) {
	return s.items, s.err
}

func (s *stubCatalogSvc) ListSellable(_ context.Context, search string) ([]domain.InventoryItem, error) {
	s.lastSearch = search
	return s.items, s.err
}

func (s *stubCatalogSvc) UpsertInventory(_ context.Context, productID string, in catalog.InventoryInput) (*domain.InventoryItem, error) {
	return &domain.InventoryItem{ProductID: productID, StockQuantity: in.StockQuantity}, s.err
}

func (s *stubCatalogSvc) DeleteInventory(_ context.Context, _ string) error { return s.err }

type stubSalesSvc struct {
	txs  []domain.SaleTransaction
	days []domain.DailySales
	err  error
	last sales.HistoryQuery
}

func (s *stubSalesSvc) History(_ context.Context, q sales.HistoryQuery) ([]domain.SaleTransaction, error) {
	s.last = q
	return s.txs, s.err
}

func (s *stubSalesSvc) Get(_ context.Context, _ string) (*domain.SaleTransaction, error) {
	if len(s.txs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.txs[0], s.err
}

func (s *stubSalesSvc) WeeklySummary(_ context.Context) ([]domain.DailySales, error) {
	return s.days, s.err
}

type stubReviewSvc struct {
	reviews []domain.Review
	err     error
}

func (s *stubReviewSvc) List(_ context.Context) ([]domain.Review, error) { return s.reviews, s.err }

func (s *stubReviewSvc) Create(_ context.Context, in review.Input) (*domain.Review, error) {
	return &domain.Review{ID: "r-new", CustomerName: in.CustomerName, Rating: in.Rating}, s.err
}

func (s *stubReviewSvc) Update(_ context.Context, id string, in review.Input) (*domain.Review, error) {
	return &domain.Review{ID: id, CustomerName: in.CustomerName, Rating: in.Rating}, s.err
}

func (s *stubReviewSvc) Delete(_ context.Context, _ string) error { return s.err }

type stubContactSvc struct {
	msgs []domain.ContactMessage
	err  error
}

func (s *stubContactSvc) Submit(_ context.Context, in contact.SubmitInput) (*domain.ContactMessage, error) {
	return &domain.ContactMessage{ID: "m-new", Name: in.Name, Email: in.Email}, s.err
}

func (s *stubContactSvc) List(_ context.Context) ([]domain.ContactMessage, error) {
	return s.msgs, s.err
}

func (s *stubContactSvc) SetRead(_ context.Context, _ string, _ bool) error { return s.err }
func (s *stubContactSvc) Delete(_ context.Context, _ string) error          { return s.err }

type stubContentSvc struct {
	sections []domain.SiteContent
	images   []domain.SiteImage
	err      error
}

func (s *stubContentSvc) ListSections(_ context.Context) ([]domain.SiteContent, error) {
	return s.sections, s.err
}

func (s *stubContentSvc) GetSection(_ context.Context, section string) (*domain.SiteContent, error) {
	for i := range s.sections {
		if s.sections[i].Section == section {
			return &s.sections[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubContentSvc) UpsertSection(_ context.Context, section string, content map[string]interface{}, updatedBy string) (*domain.SiteContent, error) {
	return &domain.SiteContent{Section: section, Content: content, UpdatedBy: updatedBy}, s.err
}

func (s *stubContentSvc) ListImages(_ context.Context) ([]domain.SiteImage, error) {
	return s.images, s.err
}

func (s *stubContentSvc) AddImage(_ context.Context, in contentsvc.ImageInput, _ string) (*domain.SiteImage, error) {
	return &domain.SiteImage{ID: "img-new", Name: in.Name, URL: in.URL}, s.err
}

func (s *stubContentSvc) DeleteImage(_ context.Context, _ string) error { return s.err }

func testDeps() Deps {
	return Deps{
		AuthSvc:     &stubAuthSvc{},
		CheckoutSvc: &stubCheckoutSvc{},
		CatalogSvc:  &stubCatalogSvc{},
		SalesSvc:    &stubSalesSvc{},
		ReviewSvc:   &stubReviewSvc{},
		ContactSvc:  &stubContactSvc{},
		ContentSvc:  &stubContentSvc{},
	}
}

func newTestRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), nil, deps, []string{"*"})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_NoDB(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a pool, got %d", rec.Code)
	}
}

func TestAdminRoute_RequiresToken(t *testing.T) {
	router := newTestRouter(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pos/inventory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRoute_RejectsInvalidToken(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{valid: false}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pos/inventory", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPublicProducts(t *testing.T) {
	deps := testDeps()
	deps.CatalogSvc = &stubCatalogSvc{products: []domain.Product{{ID: "p1", Name: "OPC Cement 50kg"}}}
	router := newTestRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
