package service

import (
	"context"

	"menuboard/menu-svc/internal/domain"
	"menuboard/menu-svc/internal/repository"
)

type CatalogRepository interface {
	Restaurants() []domain.Restaurant
	GetRestaurant(id string) (*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, data domain.RestaurantInput, username, password string) (string, error)
	DelistRestaurant(ctx context.Context, id string) error
	AddSection(ctx context.Context, restaurantID string, data domain.SectionInput) (string, error)
	UpdateSection(ctx context.Context, section domain.Section) error
	DeleteSection(ctx context.Context, sectionID, restaurantID string) error
	AddDish(ctx context.Context, restaurantID, sectionID string, data domain.DishInput) (string, error)
	UpdateDish(ctx context.Context, dish domain.Dish) error
	DeleteDish(ctx context.Context, dishID, restaurantID string) error
	AuthenticateOwner(ctx context.Context, username, password string) (string, bool, error)
	Logout(ctx context.Context) error
	CurrentOwner() *domain.Session
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.CatalogEvent) error
}

type MenuServiceInterface interface {
	List(query string) []domain.Restaurant
	Get(id string) (*domain.Restaurant, error)
	Create(ctx context.Context, data domain.RestaurantInput, username, password string) (string, error)
	Delist(ctx context.Context, id string) error

	AddSection(ctx context.Context, restaurantID string, data domain.SectionInput) (string, error)
	UpdateSection(ctx context.Context, section domain.Section) error
	DeleteSection(ctx context.Context, sectionID, restaurantID string) error

	AddDish(ctx context.Context, restaurantID, sectionID string, data domain.DishInput) (string, error)
	UpdateDish(ctx context.Context, dish domain.Dish) error
	DeleteDish(ctx context.Context, dishID, restaurantID string) error
	SetDishImage(ctx context.Context, restaurantID, dishID, imageURL string) error

	Menu(id string) (*domain.Menu, error)
	PublicURL(id string) string
	QRCode(id string) ([]byte, error)

	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentOwner() *domain.Session
}

var _ CatalogRepository = (*repository.Repository)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
