package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedOffer struct {
	restaurant int
	pizza      int
	price      float64
}

var (
	seedRestaurants = []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	seedPizzas = []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}
	// indexes into seedRestaurants and seedPizzas
	seedOffers = []seedOffer{
		{restaurant: 0, pizza: 0, price: 1},
		{restaurant: 1, pizza: 1, price: 4},
		{restaurant: 2, pizza: 2, price: 5},
	}
)

// SeedIfEmpty seeds sample data only when there are no restaurants and no pizzas.
// It reports whether anything was inserted.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if err := db.WithContext(ctx).Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("count pizzas: %w", err)
	}

	if restaurants > 0 || pizzas > 0 {
		log.WithFields(logrus.Fields{
			"restaurants": restaurants,
			"pizzas":      pizzas,
		}).Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := Seed(ctx, db); err != nil {
		return false, err
	}
	return true, nil
}

// Seed inserts the sample restaurants, pizzas and their offers in one transaction
func Seed(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := make([]models.Restaurant, len(seedRestaurants))
		copy(restaurants, seedRestaurants)
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}

		pizzas := make([]models.Pizza, len(seedPizzas))
		copy(pizzas, seedPizzas)
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		for _, offer := range seedOffers {
			rp := models.RestaurantPizza{
				Price:        offer.price,
				RestaurantID: restaurants[offer.restaurant].ID,
				PizzaID:      pizzas[offer.pizza].ID,
			}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("seed restaurant pizza: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants":       len(seedRestaurants),
		"pizzas":            len(seedPizzas),
		"restaurant_pizzas": len(seedOffers),
	}).Info("Database seeded successfully")
	return nil
}

// Reset removes every restaurant pizza, restaurant and pizza
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}
		log.Info("Database reset")
		return nil
	})
}
