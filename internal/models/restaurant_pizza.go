package models

import (
	"errors"

	"gorm.io/gorm"
)

// Price bounds for a pizza offered at a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrPriceOutOfRange is returned when a price falls outside [MinPrice, MaxPrice]
var ErrPriceOutOfRange = errors.New("price must be between 1 and 30")

// RestaurantPizza links a pizza to a restaurant at a given price
type RestaurantPizza struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Price        float64 `gorm:"not null" json:"price"`
	RestaurantID uint    `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint    `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `json:"-"`
	Pizza      Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice checks the price against the allowed range
func ValidatePrice(price float64) error {
	if price < MinPrice || price > MaxPrice {
		return ErrPriceOutOfRange
	}
	return nil
}

// BeforeCreate keeps every insert path, seeding included, inside the price range
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

// RestaurantPizzaView is how a restaurant's menu entry is rendered in the restaurant detail
type RestaurantPizzaView struct {
	ID           uint      `json:"id"`
	Pizza        PizzaView `json:"pizza"`
	PizzaID      uint      `json:"pizza_id"`
	Price        float64   `json:"price"`
	RestaurantID uint      `json:"restaurant_id"`
}

// CreatedRestaurantPizzaView is returned after a successful creation and embeds both parents
type CreatedRestaurantPizzaView struct {
	ID           uint           `json:"id"`
	Pizza        PizzaView      `json:"pizza"`
	PizzaID      uint           `json:"pizza_id"`
	Price        float64        `json:"price"`
	Restaurant   RestaurantView `json:"restaurant"`
	RestaurantID uint           `json:"restaurant_id"`
}

// View expects Pizza to be loaded
func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
	}
}

// CreatedView expects both Pizza and Restaurant to be loaded
func (rp RestaurantPizza) CreatedView() CreatedRestaurantPizzaView {
	return CreatedRestaurantPizzaView{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		Restaurant:   rp.Restaurant.View(),
		RestaurantID: rp.RestaurantID,
	}
}
