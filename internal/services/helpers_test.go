package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/franciscosanchezn/gin-pizzeria-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
	require.NoError(t, err)

	return db
}

// setupMockDB returns a postgres-flavoured gorm.DB backed by sqlmock
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

type fixtures struct {
	dough    models.Restaurant
	crust    models.Restaurant
	cheese   models.Pizza
	pepperon models.Pizza
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		dough:    models.Restaurant{Name: "Dough", Address: "1 Main St"},
		crust:    models.Restaurant{Name: "Crust", Address: "2 Side Ave"},
		cheese:   models.Pizza{Name: "Cheese", Ingredients: "Dough, Tomato, Cheese"},
		pepperon: models.Pizza{Name: "Pepperoni", Ingredients: "Dough, Tomato, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&f.dough).Error)
	require.NoError(t, db.Create(&f.crust).Error)
	require.NoError(t, db.Create(&f.cheese).Error)
	require.NoError(t, db.Create(&f.pepperon).Error)
	return f
}

func ptr[T any](v T) *T {
	return &v
}
