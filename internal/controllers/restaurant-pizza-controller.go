package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests that link pizzas to restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaPayload true "Restaurant pizza"
// @Success 201 {object} models.CreatedRestaurantPizzaView
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgInvalidRequestBody))
		return
	}

	req, err := models.ParseCreateRestaurantPizzaRequest(body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgInvalidRequestBody))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr.Messages...))
			return
		}
		logFailure(ctx, "create_restaurant_pizza", err)
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgFailedCreateRestPizza))
		return
	}
	ctx.JSON(http.StatusCreated, created.CreatedView())
}
