package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expressfood/entity"
	"expressfood/middlewares"
	"expressfood/repository"
	"expressfood/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

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

// setupAPI wires the full handler stack against an in-memory DB, the
// same way routes.RegisterRoutes does in main.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)

	anon := entity.User{Username: "guest", Name: "Guest"}
	require.NoError(t, db.Create(&anon).Error)

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authCtrl := NewAuthController(services.NewAuthService(userRepo, testSecret, time.Hour))
	catalogCtrl := NewCatalogController(services.NewCatalogService(catalogRepo))
	orderCtrl := NewOrderController(services.NewOrderService(db, orderRepo, catalogRepo, anon.ID))

	r := gin.New()
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/products", catalogCtrl.Products)
	r.GET("/restaurants", catalogCtrl.Restaurants)
	r.GET("/restaurants/:id/products", catalogCtrl.RestaurantProducts)

	o := r.Group("/", middlewares.OptionalAuth(testSecret))
	{
		o.POST("/order", orderCtrl.Create)
		o.GET("/orders", orderCtrl.History)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) entity.Product {
	t.Helper()

	var rest entity.Restaurant
	err := db.Where("name = ?", "Testaurant").First(&rest).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		rest = entity.Restaurant{Name: "Testaurant", Address: "1 Test Ln"}
		require.NoError(t, db.Create(&rest).Error)
	}

	p := entity.Product{Name: name, Price: price, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&p).Error)
	return p
}
