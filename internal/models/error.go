package models

// ErrorResponse is the body returned for lookups that fail, e.g. a missing restaurant
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a request payload is rejected
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// HealthResponse is the body returned by the health check endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Error messages exposed to API clients
const (
	MsgRestaurantNotFound        = "Restaurant not found"
	MsgInvalidRequestBody        = "Invalid request body"
	MsgPriceRequired             = "Price is required and must be a number"
	MsgPriceOutOfRange           = "Price must be between 1 and 30"
	MsgInvalidPizzaOrRestaurant  = "Invalid pizza_id or restaurant_id"
	MsgFailedRetrieveRestaurants = "Failed to retrieve restaurants"
	MsgFailedRetrieveRestaurant  = "Failed to retrieve restaurant"
	MsgFailedDeleteRestaurant    = "Failed to delete restaurant"
	MsgFailedRetrievePizzas      = "Failed to retrieve pizzas"
	MsgFailedCreateRestPizza     = "Failed to create restaurant pizza"
)

// NewErrorResponse creates a new single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a new validation error body
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return ValidationErrorResponse{Errors: messages}
}
