package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sokoline/soko-api/internal/config"
	"github.com/sokoline/soko-api/internal/domain/enum"
	domainRepo "github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/internal/presentation/http/handler"
	"github.com/sokoline/soko-api/internal/presentation/http/middleware"
	"github.com/sokoline/soko-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Wishlist  *handler.WishlistHandler
	Admin     *handler.AdminHandler
	Review    *handler.ReviewHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerCatalogRoutes(v1, h)

		// The cart and wishlist are storefront surfaces keyed by customer
		// ID; they are reachable without a session.
		registerCartRoutes(v1, h)
		registerWishlistRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/products", h.Product.List)
	v1.GET("/products/:slug", h.Product.Get)
	v1.GET("/categories", h.Category.List)
	v1.GET("/categories/:slug", h.Category.Get)
}

func registerCartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("", h.Cart.AddItem)
		cart.PATCH("", h.Cart.UpdateItem)
		cart.DELETE("", h.Cart.Remove)
		cart.POST("/coupon", h.Cart.ApplyCoupon)
		cart.DELETE("/coupon", h.Cart.RemoveCoupon)
	}
}

func registerWishlistRoutes(v1 *gin.RouterGroup, h *Handlers) {
	wishlist := v1.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.Get)
		wishlist.POST("", h.Wishlist.AddProduct)
		wishlist.DELETE("/:productId", h.Wishlist.RemoveProduct)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Profile)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Supplier surface
	registerSupplierRoutes(protected, h)

	// Back office
	registerAdminRoutes(protected, h)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id", h.Order.UpdateStatus)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	supplier := protected.Group("/supplier")
	supplier.Use(middleware.RequireRole(enum.RoleSupplier, enum.RoleAdmin, enum.RoleSuperAdmin))
	{
		supplier.GET("/orders", h.Order.ListForSupplier)
		supplier.POST("/products", h.Product.Create)
		supplier.PATCH("/products/:id", h.Product.Update)
		supplier.DELETE("/products/:id", h.Product.Delete)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard/stats", h.Dashboard.Stats)

		admin.GET("/customers", h.Admin.ListCustomers)
		admin.GET("/customers/:id", h.Admin.GetCustomer)
		admin.DELETE("/customers/:id", h.Admin.DeleteCustomer)

		admin.GET("/suppliers", h.Admin.ListSuppliers)
		admin.GET("/suppliers/:id", h.Admin.GetSupplier)
		admin.PATCH("/suppliers/:id/verify", h.Admin.VerifySupplier)
		admin.DELETE("/suppliers/:id", h.Admin.DeleteSupplier)

		admin.POST("/delivery-associates", h.Admin.CreateDeliveryAssociate)
		admin.GET("/delivery-associates", h.Admin.ListDeliveryAssociates)
		admin.DELETE("/delivery-associates/:id", h.Admin.DeleteDeliveryAssociate)

		admin.GET("/reviews", h.Review.List)
		admin.GET("/reviews/stats", h.Review.Stats)
		admin.GET("/reviews/:id", h.Review.Get)
		admin.PUT("/reviews/:id", h.Review.Update)
		admin.POST("/reviews/:id/reply", h.Review.Reply)
		admin.DELETE("/reviews/:id", h.Review.Delete)

		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)
	}
}
