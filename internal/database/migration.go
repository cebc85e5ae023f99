package database

import (
	"context"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SchemaMigration records a migration step that has been applied
type SchemaMigration struct {
	Name      string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationStep struct {
	Name string
	Up   func(tx *gorm.DB) error
}

// steps run in order; a step is never re-run once recorded
var steps = []migrationStep{
	{
		Name: "create_restaurants_pizzas_restaurant_pizzas",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
		},
	},
}

// Migrate applies every pending migration step, each in its own transaction
func Migrate(ctx context.Context, db *gorm.DB) error {
	start := time.Now()
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create migration history table: %w", err)
	}

	applied := 0
	for _, step := range steps {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("name = ?", step.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", step.Name, err)
		}
		if count > 0 {
			log.WithField("migration_step", step.Name).Debug("Migration already applied, skipping")
			continue
		}

		stepStart := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Name: step.Name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			log.WithFields(logrus.Fields{
				"migration_step": step.Name,
				"error":          err.Error(),
			}).Error("Migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		applied++
		log.WithFields(logrus.Fields{
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("Migration step applied")
	}

	log.WithFields(logrus.Fields{
		"applied":     applied,
		"total":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Database migrations complete")
	return nil
}
