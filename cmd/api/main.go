package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"entrelink/investor-match/internal/config"
	"entrelink/investor-match/internal/handlers"
	"entrelink/investor-match/internal/repositories"
	"entrelink/investor-match/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	queryLogRepo := repositories.NewQueryLogRepository(db)
	emailRequestRepo := repositories.NewEmailRequestRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	completionService := services.NewOpenAICompletionService(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.Timeout,
	)

	extractorService := services.NewExtractorService(completionService, services.DefaultCatalog())
	apolloService := services.NewApolloService(cfg.Apollo.APIKey, cfg.Apollo.BaseURL, cfg.Apollo.Timeout)
	matcherService := services.NewMatcherService(extractorService, apolloService, queryLogRepo)
	emailWriterService := services.NewEmailWriterService(completionService)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(matcherService)
	emailHandler := handlers.NewEmailHandler(emailWriterService, emailRequestRepo)
	activityHandler := handlers.NewActivityHandler(queryLogRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EntreLink Investor Match API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/generate-email", emailHandler.HandleGenerateEmail)
	api.Post("/request-email", emailHandler.HandleRequestEmail)
	api.Post("/request-email-access", emailHandler.HandleRequestEmailAccess)
	api.Get("/recent-activity", activityHandler.HandleRecentActivity)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "EntreLink Investor Match API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/match",
				"POST /api/v1/generate-email",
				"POST /api/v1/request-email",
				"POST /api/v1/request-email-access",
				"GET /api/v1/recent-activity",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
