package mocks

import (
	"context"

	"menuboard/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock type for the service.CatalogRepository interface.
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) Restaurants() []domain.Restaurant {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0
}

func (_m *CatalogRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateRestaurant(ctx context.Context, data domain.RestaurantInput, username, password string) (string, error) {
	ret := _m.Called(ctx, data, username, password)
	return ret.String(0), ret.Error(1)
}

func (_m *CatalogRepository) DelistRestaurant(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *CatalogRepository) AddSection(ctx context.Context, restaurantID string, data domain.SectionInput) (string, error) {
	ret := _m.Called(ctx, restaurantID, data)
	return ret.String(0), ret.Error(1)
}

func (_m *CatalogRepository) UpdateSection(ctx context.Context, section domain.Section) error {
	ret := _m.Called(ctx, section)
	return ret.Error(0)
}

func (_m *CatalogRepository) DeleteSection(ctx context.Context, sectionID, restaurantID string) error {
	ret := _m.Called(ctx, sectionID, restaurantID)
	return ret.Error(0)
}

func (_m *CatalogRepository) AddDish(ctx context.Context, restaurantID, sectionID string, data domain.DishInput) (string, error) {
	ret := _m.Called(ctx, restaurantID, sectionID, data)
	return ret.String(0), ret.Error(1)
}

func (_m *CatalogRepository) UpdateDish(ctx context.Context, dish domain.Dish) error {
	ret := _m.Called(ctx, dish)
	return ret.Error(0)
}

func (_m *CatalogRepository) DeleteDish(ctx context.Context, dishID, restaurantID string) error {
	ret := _m.Called(ctx, dishID, restaurantID)
	return ret.Error(0)
}

func (_m *CatalogRepository) AuthenticateOwner(ctx context.Context, username, password string) (string, bool, error) {
	ret := _m.Called(ctx, username, password)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

func (_m *CatalogRepository) Logout(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *CatalogRepository) CurrentOwner() *domain.Session {
	ret := _m.Called()
	var r0 *domain.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}
	return r0
}

// NewCatalogRepository creates a new instance of CatalogRepository and
// asserts its expectations when the test ends.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
