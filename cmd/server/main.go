package main

import (
	"log"
	"time"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/handlers"
	"food_ordering/internal/redis"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/pkg/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.New()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	logger.Info("database connected")

	// Initialize Redis session store
	sessions, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	logger.Info("redis connected")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	// Initialize services
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(db, menuRepo, cartRepo, orderRepo, orderItemRepo, logger)
	userService := services.NewUserService(userRepo, sessions, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	chatService := services.NewChatService(conversationRepo)

	// Initialize handlers and routes
	orderHandler := handlers.NewOrderHandler(menuService, orderService)
	userHandler := handlers.NewUserHandler(userService, chatService)
	router := handlers.SetupRouter(orderHandler, userHandler, userService)

	// Start server
	logger.Info("server starting", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
