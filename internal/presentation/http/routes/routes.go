package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/config"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	domainRepo "github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/handler"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/middleware"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Deal      *handler.DealHandler
	Sale      *handler.SaleHandler
	Order     *handler.OrderHandler
	Udhar     *handler.UdharHandler
	Settings  *handler.SettingsHandler
	Receipt   *handler.ReceiptHandler
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

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	idem := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes: auth, storefront catalog, checkout, tracking
		registerPublicRoutes(v1, h, rateLimiter, idem)

		// Protected routes (staff authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, idem)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, rl *middleware.ClientRateLimiter, idem gin.HandlerFunc) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Storefront: browsing and checkout happen without an account.
	// IP-based rate limiting stands in for auth here.
	store := v1.Group("/store")
	store.Use(rl.Middleware())
	{
		store.GET("/products", h.Product.ListStorefront)
		store.GET("/products/:id", h.Product.Get)
		store.GET("/deals", h.Deal.ListStorefront)
		store.GET("/deals/:id", h.Deal.Get)
		store.GET("/deals/:id/expand", h.Deal.Expand)
		store.POST("/orders", idem, h.Order.Create)
		store.GET("/orders/track/:orderNo", h.Order.Track)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, idem gin.HandlerFunc) {
	// Profile
	protected.GET("/auth/me", h.Auth.GetProfile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Settings: readable by all staff, writable by admins
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequireRole(entity.RoleAdmin), h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", middleware.RequireRole(entity.RoleAdmin), h.Dashboard.GetStats)

	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerDealRoutes(protected, h)
	registerSaleRoutes(protected, h, idem)
	registerOrderRoutes(protected, h, idem)
	registerUdharRoutes(protected, h, idem)
	registerUserRoutes(protected, h)
	registerReceiptRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.ListLowStock)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireRole(entity.RoleAdmin), h.Product.Create)
		products.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Product.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Customer.Delete)
	}
}

func registerDealRoutes(protected *gin.RouterGroup, h *Handlers) {
	deals := protected.Group("/deals")
	{
		deals.GET("", h.Deal.List)
		deals.GET("/:id", h.Deal.Get)
		deals.GET("/:id/expand", h.Deal.Expand)
		deals.POST("", middleware.RequireRole(entity.RoleAdmin), h.Deal.Create)
		deals.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Deal.Update)
		deals.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Deal.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, idem gin.HandlerFunc) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale creation uses idempotency middleware so a retried
		// checkout doesn't decrement stock twice
		sales.POST("", idem, h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Receipt.GetSaleReceipt)
		sales.GET("/:id/receipt/html", h.Receipt.GetSaleReceiptHTML)
		sales.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Sale.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, idem gin.HandlerFunc) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/receipt", h.Receipt.GetOrderReceipt)
		orders.GET("/:id/receipt/html", h.Receipt.GetOrderReceiptHTML)
		orders.PATCH("/:id/status", idem, h.Order.UpdateStatus)
	}
}

func registerUdharRoutes(protected *gin.RouterGroup, h *Handlers, idem gin.HandlerFunc) {
	udhar := protected.Group("/udhar")
	{
		udhar.GET("", h.Udhar.List)
		udhar.POST("", idem, h.Udhar.Create)
		udhar.GET("/:id", h.Udhar.Get)
		udhar.POST("/:id/payments", idem, h.Udhar.RecordPayment)
		udhar.POST("/reminders", middleware.RequireRole(entity.RoleAdmin), h.Udhar.SendReminders)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.Auth.ListUsers)
		users.POST("", h.Auth.CreateUser)
		users.PATCH("/:id/active", h.Auth.SetUserActive)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Receipt.GetPrinterStatus)
		printerGroup.POST("/test", h.Receipt.TestPrint)
	}

	protected.POST("/receipts/print", h.Receipt.PrintReceipt)
}
