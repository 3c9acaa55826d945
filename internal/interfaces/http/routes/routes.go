// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/techstore-backend/internal/config"
	"github.com/your-org/techstore-backend/internal/interfaces/http/handlers"
	"github.com/your-org/techstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/techstore-backend/internal/pkg/invoice"
	"github.com/your-org/techstore-backend/internal/statestore"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(api *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	store := statestore.NewRedisStore(redisClient, cfg.Security.SessionTTL, logger)
	generator := invoice.NewGenerator()

	authHandler := handlers.NewAuthHandler(db, store, cfg, logger)
	productHandler := handlers.NewProductHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, store, cfg, logger)
	wishlistHandler := handlers.NewWishlistHandler(db, store, cfg, logger)
	checkoutHandler := handlers.NewCheckoutHandler(db, store, cfg, generator, logger)
	orderHandler := handlers.NewOrderHandler(db, store, cfg, logger)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)

	// Every route can touch session-scoped container state
	api.Use(middleware.Session(cfg))

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Authenticated auth routes
	authProtected := api.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(cfg))
	{
		authProtected.POST("/logout", authHandler.Logout)
		authProtected.GET("/profile", authHandler.GetProfile)
		authProtected.PUT("/profile", authHandler.UpdateProfile)
	}

	// Public catalog routes
	products := api.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)
		products.GET("/:id/reviews", productHandler.GetReviews)
	}
	api.GET("/categories", productHandler.ListCategories)

	// Review creation requires a user for attribution
	reviewProtected := api.Group("/products")
	reviewProtected.Use(middleware.AuthMiddleware(cfg))
	{
		reviewProtected.POST("/:id/reviews", productHandler.CreateReview)
	}

	// Session cart routes (auth optional, state keyed by session cookie)
	cart := api.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/totals", cartHandler.GetTotals)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	// Session wishlist routes
	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/items", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlist.GET("/contains/:id", wishlistHandler.Contains)
		wishlist.DELETE("", wishlistHandler.ClearWishlist)
	}

	// Checkout and order history
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/checkout", checkoutHandler.Checkout)
		protected.GET("/orders", orderHandler.GetOrders)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.GET("/orders/:id/invoice", orderHandler.DownloadInvoice)
		protected.GET("/invoices/:invoice_number", orderHandler.GetOrderByInvoice)
		protected.POST("/uploads/images", uploadHandler.UploadImage)
	}

	// Legacy session-local order cache
	localOrders := api.Group("/local-orders")
	localOrders.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		localOrders.GET("", orderHandler.GetLocalOrders)
		localOrders.GET("/:invoice_number", orderHandler.GetLocalOrderByInvoice)
	}

	// Admin console routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stats", adminHandler.GetDashboardStats)

		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.PUT("/products/:id/stock", adminHandler.SetStock)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.PUT("/orders/:id/payment-status", adminHandler.UpdatePaymentStatus)

		admin.DELETE("/uploads/images", uploadHandler.DeleteImage)
	}
}
