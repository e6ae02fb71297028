package services

import (
	"testing"

	"expressfood/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection, or the pool would hand out fresh empty :memory: DBs
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	u := entity.User{Username: username, Name: "Test User"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

// seedCatalog creates one restaurant with two products and returns them.
func seedCatalog(t *testing.T, db *gorm.DB) (entity.Product, entity.Product) {
	t.Helper()

	rest := entity.Restaurant{
		Name:    "Testaurant",
		Address: "1 Test Ln",
		Products: []entity.Product{
			{Name: "Margherita", Price: 2.50, Description: "Classic", ImageURL: "/img/m.jpg"},
			{Name: "Pad Thai", Price: 4.99},
		},
	}
	require.NoError(t, db.Create(&rest).Error)
	return rest.Products[0], rest.Products[1]
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
