package main

import (
	"fmt"
	"net/http"
	"os"

	"khata/internal/config"
	"khata/internal/credentials"
	"khata/internal/database"
	"khata/internal/handlers"
	"khata/internal/logger"
	"khata/internal/middleware"
	"khata/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           khata API
// @version         1.0
// @description     khata is a minimal personal expense ledger: register, log in, and record income and expenses against a shared ledger.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (KHATA_ENV selects the encoder, default development)
	logger.Init(os.Getenv(logger.EnvVar))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Bring the schema up to date
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Credential strategy: signed stateless tokens
	strategy := credentials.NewJWTStrategy(appConfig.JWTSecret, appConfig.JWTExpirationDur)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, strategy)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.Auth(strategy))

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/add-expense", expenseHandler.AddExpense)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.PUT("/expense/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expense/:id", expenseHandler.DeleteExpense)

	log.Infof("Starting khata backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
