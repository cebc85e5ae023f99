package models

import (
	"encoding/json"
	"errors"
)

// ErrInvalidBody is returned when a request body is not a JSON object
var ErrInvalidBody = errors.New("request body must be a JSON object")

// CreateRestaurantPizzaPayload documents the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaPayload struct {
	Price        float64 `json:"price" example:"10"`
	PizzaID      uint    `json:"pizza_id" example:"1"`
	RestaurantID uint    `json:"restaurant_id" example:"1"`
}

// CreateRestaurantPizzaRequest is the decoded body of POST /restaurant_pizzas.
// A nil field means the value was absent, null, or of the wrong type.
type CreateRestaurantPizzaRequest struct {
	Price        *float64
	PizzaID      *uint
	RestaurantID *uint
}

// ParseCreateRestaurantPizzaRequest decodes every field on its own so that a
// malformed price never masks the IDs and the other way round
func ParseCreateRestaurantPizzaRequest(body []byte) (CreateRestaurantPizzaRequest, error) {
	var raw struct {
		Price        json.RawMessage `json:"price"`
		PizzaID      json.RawMessage `json:"pizza_id"`
		RestaurantID json.RawMessage `json:"restaurant_id"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return CreateRestaurantPizzaRequest{}, ErrInvalidBody
	}

	return CreateRestaurantPizzaRequest{
		Price:        decodeField[float64](raw.Price),
		PizzaID:      decodeField[uint](raw.PizzaID),
		RestaurantID: decodeField[uint](raw.RestaurantID),
	}, nil
}

func decodeField[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
