package service

import (
	"context"

	"foodfleet/internal/domain"
)

type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}

type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]domain.RestaurantWithMenu, bool, error)
	SetCatalog(ctx context.Context, catalog []domain.RestaurantWithMenu) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.OrderRequest) (int64, error)
	OrderExists(ctx context.Context, orderID int64) (bool, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type InquiryRepository interface {
	InsertHelpInquiry(ctx context.Context, inquiry *domain.HelpInquiry) error
}

type CatalogServiceInterface interface {
	ListRestaurantsWithMenus(ctx context.Context) ([]domain.RestaurantWithMenu, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, order *domain.OrderRequest) (*domain.OrderConfirmation, error)
	OrderQRCode(ctx context.Context, orderID int64) ([]byte, error)
}

type InquiryServiceInterface interface {
	SubmitInquiry(ctx context.Context, inquiry *domain.HelpInquiry) error
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ InquiryServiceInterface = (*InquiryService)(nil)
)
