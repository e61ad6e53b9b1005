package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/configs"
	"storefront/controllers"
	"storefront/middlewares"
	"storefront/repository"
	"storefront/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	addressSvc := services.NewAddressService(addressRepo)
	orderSvc := services.NewOrderService(orderRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, addressRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	accountCtrl := controllers.NewAccountController(addressSvc, orderSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, cartSvc, addressSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(catalogRepo, orderSvc)

	// Catalog (public)
	r.GET("/", catalogCtrl.Home)
	r.GET("/deals", catalogCtrl.Home)
	r.GET("/product/:slug", catalogCtrl.Detail)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/category/:slug", catalogCtrl.ByCategory)
	r.GET("/shop", catalogCtrl.Shop)
	r.GET("/search", catalogCtrl.Search)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	// Account (session required)
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/profile", accountCtrl.Profile)
		auth.GET("/address/add", accountCtrl.AddressForm)
		auth.POST("/address/add", accountCtrl.AddAddress)
		auth.POST("/address/remove/:id", accountCtrl.RemoveAddress)

		auth.POST("/cart/add/:slug", cartCtrl.Add)
		auth.GET("/cart", cartCtrl.View)

		auth.GET("/checkout", checkoutCtrl.Preview)
		auth.POST("/checkout", checkoutCtrl.Checkout)

		auth.GET("/orders", orderCtrl.ListMine)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}
}
