package server

import (
	"errors"
	"net/http"

	_ "github.com/franciscosanchezn/gin-pizzeria-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/controllers"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/middleware"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the router wires into controllers
type Dependencies struct {
	DB       *gorm.DB
	Logger   *logrus.Logger
	Registry *prometheus.Registry
}

// SetupRouter initializes the Gin router, its middleware chain and the routes
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.DB == nil {
		return nil, errors.New("router requires a database")
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, err
	}

	metrics, err := middleware.NewMetrics(deps.Registry)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		metrics.Handler(),
		middleware.CORS(),
	)

	setupRoutes(router, routeHandlers{
		health:          controllers.NewHealthController(sqlDB),
		restaurants:     controllers.NewRestaurantController(services.NewRestaurantService(deps.DB)),
		pizzas:          controllers.NewPizzaController(services.NewPizzaService(deps.DB)),
		restaurantPizza: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(deps.DB)),
		metrics:         promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry}),
	})

	return router, nil
}

type routeHandlers struct {
	health          *controllers.HealthController
	restaurants     controllers.RestaurantController
	pizzas          controllers.PizzaController
	restaurantPizza controllers.RestaurantPizzaController
	metrics         http.Handler
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, h routeHandlers) {
	router.GET("/", h.health.Index)
	router.GET("/health", h.health.HealthCheck)
	router.GET(middleware.MetricsPath, gin.WrapH(h.metrics))

	router.GET("/restaurants", h.restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", h.restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", h.restaurants.DeleteRestaurant)

	router.GET("/pizzas", h.pizzas.GetAllPizzas)

	router.POST("/restaurant_pizzas", h.restaurantPizza.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
