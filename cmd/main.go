package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/config"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/database"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/server"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"
)

const serviceName = "gin-pizzeria-api"

// @title Pizzeria API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants offer them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, serviceName, log.StandardLogger())
	checkFatalErr(err, "Failed to initialize tracing")

	// Initialize database connection
	db := setupDatabase(ctx, configuration)
	sqlDB, err := db.DB()
	checkFatalErr(err, "Failed to get database instance")
	defer sqlDB.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, "pizzeria"),
	)

	// Initialize Gin router
	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := server.SetupRouter(server.Dependencies{
		DB:       db,
		Logger:   log.StandardLogger(),
		Registry: registry,
	})
	checkFatalErr(err, "Failed to set up router")

	srv := &http.Server{
		Addr:    configuration.Address(),
		Handler: otelhttp.NewHandler(router, serviceName),
	}

	// Start the server
	go func() {
		log.Infof("Starting server on %s", configuration.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configuration.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush traces")
	}
	log.Info("Server stopped")
}

// checkFatalErr logs the error and exits if it is not nil
func checkFatalErr(err error, msg string) {
	if err != nil {
		log.WithError(err).Fatal(msg)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and the configured level
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(conf.Level())
	database.SetLogger(log.StandardLogger())
}

// loadConfig loads the application configuration
// It exits if the configuration is invalid
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkFatalErr(err, "Failed to load configuration")
	return conf
}

// setupDatabase connects, migrates and optionally seeds the database
func setupDatabase(ctx context.Context, conf *config.Config) *gorm.DB {
	dbConfig, err := conf.Database()
	checkFatalErr(err, "Invalid database configuration")

	db, err := database.InitDatabase(dbConfig)
	checkFatalErr(err, "Failed to connect to database")

	checkFatalErr(database.Migrate(ctx, db), "Failed to migrate database")

	if conf.SeedDatabase {
		_, err := database.SeedIfEmpty(ctx, db)
		checkFatalErr(err, "Failed to seed database")
	}
	return db
}
