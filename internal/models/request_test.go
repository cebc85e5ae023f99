package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateRestaurantPizzaRequest(t *testing.T) {
	t.Run("should decode a complete body", func(t *testing.T) {
		req, err := ParseCreateRestaurantPizzaRequest([]byte(`{"price": 10, "pizza_id": 1, "restaurant_id": 2}`))
		require.NoError(t, err)
		require.NotNil(t, req.Price)
		require.NotNil(t, req.PizzaID)
		require.NotNil(t, req.RestaurantID)
		assert.Equal(t, 10.0, *req.Price)
		assert.Equal(t, uint(1), *req.PizzaID)
		assert.Equal(t, uint(2), *req.RestaurantID)
	})

	t.Run("should leave missing fields nil", func(t *testing.T) {
		req, err := ParseCreateRestaurantPizzaRequest([]byte(`{"pizza_id": 1}`))
		require.NoError(t, err)
		assert.Nil(t, req.Price)
		assert.Nil(t, req.RestaurantID)
		assert.NotNil(t, req.PizzaID)
	})

	t.Run("should treat null and wrong types as missing", func(t *testing.T) {
		req, err := ParseCreateRestaurantPizzaRequest([]byte(`{"price": "ten", "pizza_id": null, "restaurant_id": -3}`))
		require.NoError(t, err)
		assert.Nil(t, req.Price)
		assert.Nil(t, req.PizzaID)
		assert.Nil(t, req.RestaurantID)
	})

	t.Run("should keep a valid price when an id is malformed", func(t *testing.T) {
		req, err := ParseCreateRestaurantPizzaRequest([]byte(`{"pizza_id": "one", "price": 4.5}`))
		require.NoError(t, err)
		require.NotNil(t, req.Price)
		assert.Equal(t, 4.5, *req.Price)
		assert.Nil(t, req.PizzaID)
	})

	t.Run("should reject non-object bodies", func(t *testing.T) {
		for _, body := range []string{``, `not json`, `[1, 2, 3]`, `{"price": 1`} {
			_, err := ParseCreateRestaurantPizzaRequest([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidBody, "body %q", body)
		}
	})
}
