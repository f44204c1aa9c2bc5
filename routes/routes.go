package routes

import (
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/configs"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/controllers"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/middlewares"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, images *services.ImageStore) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	canteenSvc := services.NewCanteenService(canteenRepo, userRepo, images)
	foodSvc := services.NewFoodService(foodRepo, images)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cfg.StrictTotal)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	canteenCtrl := controllers.NewCanteenController(canteenSvc)
	foodCtrl := controllers.NewFoodController(foodSvc, canteenSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	sellerCtrl := controllers.NewSellerOrderController(orderSvc, canteenSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public browsing
	r.GET("/canteens", canteenCtrl.List)
	r.GET("/canteens/:id", canteenCtrl.Detail)
	r.GET("/canteens/:id/foods", foodCtrl.ListByCanteen)
	r.GET("/foods/search", foodCtrl.Search)

	// Cart + orders (customer)
	u := r.Group("/", auth())
	{
		u.GET("/cart", cartCtrl.Get)
		u.PATCH("/cart", cartCtrl.Apply)
		u.DELETE("/cart", cartCtrl.Clear)
		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.ListForMe)
	}

	// Seller dashboard
	seller := r.Group("/seller", auth("seller", "admin"))
	{
		seller.GET("/orders", sellerCtrl.List)
		seller.PATCH("/orders/:id/status", sellerCtrl.AdvanceStatus)
		seller.POST("/foods", foodCtrl.Create)
		seller.PATCH("/foods/:id", foodCtrl.Update)
		seller.PATCH("/foods/:id/availability", foodCtrl.SetAvailability)
		seller.PATCH("/canteen", canteenCtrl.UpdateOwn)
	}

	// Admin
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/canteens", canteenCtrl.List)
		admin.POST("/canteens", canteenCtrl.Create)
	}
}
