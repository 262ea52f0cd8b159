package main

import (
	"context"
	"fmt"
	"log"

	"github.com/grocerly/grocerly/internal/config"
	"github.com/grocerly/grocerly/internal/database"
	"github.com/grocerly/grocerly/internal/handler"
	"github.com/grocerly/grocerly/internal/middleware"
	"github.com/grocerly/grocerly/internal/repository"
	"github.com/grocerly/grocerly/internal/server"
	"github.com/grocerly/grocerly/internal/service"
)

// @title Grocerly API
// @version 1.0
// @description Grocery shopping, budgeting and spending analytics API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to Postgres and apply pending migrations
	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	pool := db.GetPool()
	userRepo := repository.NewPostgresUserRepository(pool)
	shoppingRepo := repository.NewPostgresShoppingRepository(pool)
	budgetRepo := repository.NewPostgresBudgetRepository(pool)
	spendingRepo := repository.NewPostgresSpendingRepository(pool)
	recipeRepo := repository.NewPostgresRecipeRepository(pool)
	notificationRepo := repository.NewPostgresNotificationRepository(pool)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:             userRepo,
		JWTSecret:            cfg.JWTSecret,
		JWTAccessExpiration:  cfg.JWTAccessExpiration,
		JWTRefreshExpiration: cfg.JWTRefreshExpiration,
	})
	shoppingService := service.NewShoppingService(shoppingRepo)
	budgetService := service.NewBudgetService(budgetRepo, spendingRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	analyticsService := service.NewAnalyticsService(shoppingRepo, spendingRepo, budgetRepo)
	userService := service.NewUserService(userRepo, shoppingRepo, budgetRepo, spendingRepo, recipeRepo, notificationRepo)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg)
	router := appServer.GetRouter()

	authMiddleware := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	handler.NewAuthHandler(authService).RegisterRoutes(router, authMiddleware)
	handler.NewShoppingHandler(shoppingService).RegisterRoutes(router, authMiddleware)
	handler.NewBudgetHandler(budgetService).RegisterRoutes(router, authMiddleware)
	handler.NewSpendingHandler(budgetService).RegisterRoutes(router, authMiddleware)
	handler.NewRecipeHandler(recipeService).RegisterRoutes(router, authMiddleware, optionalAuth)
	handler.NewUserHandler(userService, authService).RegisterRoutes(router, authMiddleware)
	handler.NewAnalyticsHandler(analyticsService).RegisterRoutes(router, authMiddleware)

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}
