package routes

import (
	"expressfood/configs"
	"expressfood/controllers"
	"expressfood/middlewares"
	"expressfood/repository"
	"expressfood/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, anonUserID uint) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, catalogRepo, anonUserID)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	// Catalog (public)
	r.GET("/products", catalogCtrl.Products)
	r.GET("/restaurants", catalogCtrl.Restaurants)
	r.GET("/restaurants/:id/products", catalogCtrl.RestaurantProducts)

	// Orders: a token binds the order to its owner, no token means the
	// configured anonymous identity
	o := r.Group("/", middlewares.OptionalAuth(cfg.JWTSecret))
	{
		o.POST("/order", orderCtrl.Create)
		o.GET("/orders", orderCtrl.History)
	}
}
