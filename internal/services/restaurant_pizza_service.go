package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService links pizzas to restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the request and persists a new RestaurantPizza.
	// The returned record has Pizza and Restaurant populated.
	CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizza, error) {
	// price is checked before any lookup
	if req.Price == nil {
		return models.RestaurantPizza{}, NewValidationError(models.MsgPriceRequired)
	}
	if err := models.ValidatePrice(*req.Price); err != nil {
		return models.RestaurantPizza{}, NewValidationError(models.MsgPriceOutOfRange)
	}
	if req.PizzaID == nil || req.RestaurantID == nil {
		return models.RestaurantPizza{}, NewValidationError(models.MsgInvalidPizzaOrRestaurant)
	}

	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, *req.PizzaID).Error; err != nil {
			return lookupError(err, "pizza", *req.PizzaID)
		}

		var restaurant models.Restaurant
		if err := tx.First(&restaurant, *req.RestaurantID).Error; err != nil {
			return lookupError(err, "restaurant", *req.RestaurantID)
		}

		rp := models.RestaurantPizza{
			Price:        *req.Price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}

		rp.Pizza = pizza
		rp.Restaurant = restaurant
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

// lookupError turns a missing parent into the client-facing validation error
func lookupError(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewValidationError(models.MsgInvalidPizzaOrRestaurant)
	}
	return fmt.Errorf("get %s %d: %w", entity, id, err)
}
