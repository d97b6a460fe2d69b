package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"onlineshop/internal/caching"
	"onlineshop/internal/handlers"
	"onlineshop/internal/jobs"
	"onlineshop/internal/repositories"
	"onlineshop/internal/services"
	"onlineshop/pkg/database"
)

const version = "1.0.0"

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create repositories
	customerRepo := repositories.NewCustomerRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	shopItemRepo := repositories.NewShopItemRepo(pool)
	orderItemRepo := repositories.NewOrderItemRepo(pool)

	// Create services
	customerSvc := services.NewCustomerService(customerRepo)
	categorySvc := services.NewCategoryService(categoryRepo, shopItemRepo, cacheSvc)
	shopItemSvc := services.NewShopItemService(pool, cacheSvc)
	orderSvc := services.NewOrderService(pool)

	// Create handlers
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	shopItemHandlers := handlers.NewShopItemHandlers(shopItemSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, version)

	// Background scan for order items orphaned by shop item deletes
	danglingSvc := jobs.NewDanglingReferenceService(orderItemRepo)
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(danglingSvc.ScheduledCheck, context.Background()),
		gocron.WithName("dangling-reference-scan"),
	); err != nil {
		log.Printf("Failed to create dangling-reference job: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Printf("Scheduler shutdown failed: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Pre-routing middleware: the trailing-slash rewrite must run before
	// route matching, so /api/v1/customers/ hits the /api/v1/customers route.
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Banner and health endpoints
	e.GET("/", healthHandlers.Banner)
	e.GET("/health", healthHandlers.HealthCheck)

	// API routes
	v1 := e.Group("/api/v1")

	v1.GET("/customers", customerHandlers.ListCustomers)
	v1.POST("/customers", customerHandlers.CreateCustomer)
	v1.GET("/customers/:id", customerHandlers.GetCustomer)
	v1.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	v1.DELETE("/customers/:id", customerHandlers.DeleteCustomer)

	v1.GET("/categories", categoryHandlers.ListCategories)
	v1.POST("/categories", categoryHandlers.CreateCategory)
	v1.GET("/categories/:id", categoryHandlers.GetCategory)
	v1.PUT("/categories/:id", categoryHandlers.UpdateCategory)
	v1.DELETE("/categories/:id", categoryHandlers.DeleteCategory)

	v1.GET("/items", shopItemHandlers.ListShopItems)
	v1.POST("/items", shopItemHandlers.CreateShopItem)
	v1.GET("/items/:id", shopItemHandlers.GetShopItem)
	v1.PUT("/items/:id", shopItemHandlers.UpdateShopItem)
	v1.DELETE("/items/:id", shopItemHandlers.DeleteShopItem)

	v1.GET("/orders", orderHandlers.ListOrders)
	v1.POST("/orders", orderHandlers.CreateOrder)
	v1.GET("/orders/:id", orderHandlers.GetOrder)
	v1.PUT("/orders/:id", orderHandlers.UpdateOrder)
	v1.DELETE("/orders/:id", orderHandlers.DeleteOrder)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Online Shop API v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
