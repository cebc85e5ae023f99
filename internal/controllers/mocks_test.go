package controllers

import (
	"context"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockRestaurantService struct {
	mock.Mock
}

func (m *mockRestaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]models.Restaurant)
	return restaurants, args.Error(1)
}

func (m *mockRestaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *mockRestaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.Pizza)
	return pizzas, args.Error(1)
}

type mockRestaurantPizzaService struct {
	mock.Mock
}

func (m *mockRestaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.RestaurantPizza), args.Error(1)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
