package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/config"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	force := flag.Bool("force", false, "Seed even when the database already has data")
	dbURI := flag.String("db", "", "Database URI (defaults to DB_URI or sqlite://app.db)")
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.JSONFormatter{})
	database.SetLogger(log.StandardLogger())

	uri := *dbURI
	if uri == "" {
		uri = config.GetEnvWithDefault("DB_URI", config.Default().DatabaseURI)
	}

	dbConfig, err := database.ParseDatabaseURI(uri)
	if err != nil {
		log.WithError(err).Fatal("Invalid database URI")
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	if *reset {
		if err := database.Reset(ctx, db); err != nil {
			log.WithError(err).Fatal("Failed to reset database")
		}
	}

	seeded := true
	if *reset || *force {
		err = database.Seed(ctx, db)
	} else {
		seeded, err = database.SeedIfEmpty(ctx, db)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}

	if !seeded {
		fmt.Println("Database already has data, nothing to do (use -reset or -force)")
		os.Exit(0)
	}
	fmt.Printf("Sample data seeded into %s\n", database.MaskURI(uri))
}
