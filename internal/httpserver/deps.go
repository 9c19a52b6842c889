package httpserver

import (
	"context"

	"buildmart/internal/domain"
	"buildmart/internal/service/catalog"
	"buildmart/internal/service/checkout"
	"buildmart/internal/service/contact"
	contentsvc "buildmart/internal/service/content"
	"buildmart/internal/service/review"
	"buildmart/internal/service/sales"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Validate(ctx context.Context, token string) (*domain.User, bool)
	Logout(ctx context.Context, token string) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, in checkout.Input) (*domain.SaleTransaction, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in catalog.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	ListSellable(ctx context.Context, search string) ([]domain.InventoryItem, error)
	UpsertInventory(ctx context.Context, productID string, in catalog.InventoryInput) (*domain.InventoryItem, error)
	DeleteInventory(ctx context.Context, productID string) error
}

type SalesService interface {
	History(ctx context.Context, q sales.HistoryQuery) ([]domain.SaleTransaction, error)
	Get(ctx context.Context, id string) (*domain.SaleTransaction, error)
	WeeklySummary(ctx context.Context) ([]domain.DailySales, error)
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, in review.Input) (*domain.Review, error)
	Update(ctx context.Context, id string, in review.Input) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type ContactService interface {
	Submit(ctx context.Context, in contact.SubmitInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type ContentService interface {
	ListSections(ctx context.Context) ([]domain.SiteContent, error)
	GetSection(ctx context.Context, section string) (*domain.SiteContent, error)
	UpsertSection(ctx context.Context, section string, content map[string]interface{}, updatedBy string) (*domain.SiteContent, error)
	ListImages(ctx context.Context) ([]domain.SiteImage, error)
	AddImage(ctx context.Context, in contentsvc.ImageInput, uploadedBy string) (*domain.SiteImage, error)
	DeleteImage(ctx context.Context, id string) error
}

// Deps carries every service the router needs.
type Deps struct {
	AuthSvc     AuthService
	CheckoutSvc CheckoutService
	CatalogSvc  CatalogService
	SalesSvc    SalesService
	ReviewSvc   ReviewService
	ContactSvc  ContactService
	ContentSvc  ContentService
}
