package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/application/service"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/config"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/cache"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/database"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/infrastructure/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/handler"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/routes"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/email"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/oauth"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/printer"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/renderer"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	dealRepo := repository.NewDealRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	udharRepo := repository.NewUdharRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Settings cache: Redis when enabled, in-process no-op otherwise
	var settingsCache cache.SettingsCache
	if cfg.Redis.Enabled {
		settingsCache = cache.NewRedisSettingsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Printf("Settings cache: redis (%s)", cfg.Redis.Addr)
	} else {
		settingsCache = cache.NewNoopSettingsCache()
	}

	// Initialize email service when configured
	var mailer *email.EmailService
	if cfg.Email.Enabled {
		mailer = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromEmail,
			StoreName:    cfg.App.Name,
		})
	}

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.DevicePath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize HTML receipt renderer
	htmlRenderer, err := renderer.New()
	if err != nil {
		log.Fatalf("Failed to initialize receipt renderer: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	productService := service.NewProductService(productRepo)
	customerService := service.NewCustomerService(customerRepo)
	settingsService := service.NewSettingsService(settingsRepo, settingsCache)
	dealService := service.NewDealService(dealRepo, productRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, settingsService, dealService)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, customerRepo, settingsService, dealService, mailer)
	udharService := service.NewUdharService(udharRepo, customerRepo, mailer)
	receiptService := service.NewReceiptService(saleRepo, orderRepo, settingsService, htmlRenderer, thermalPrinter, cfg.Printer.Type)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Deal:      handler.NewDealHandler(dealService),
		Sale:      handler.NewSaleHandler(saleService),
		Order:     handler.NewOrderHandler(orderService),
		Udhar:     handler.NewUdharHandler(udharService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
