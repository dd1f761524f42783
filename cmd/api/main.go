package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/digipants/quicksquad-api/internal/handler/http"
	redisclient "github.com/digipants/quicksquad-api/internal/infrastructure/cache"
	"github.com/digipants/quicksquad-api/internal/infrastructure/config"
	"github.com/digipants/quicksquad-api/internal/infrastructure/database"
	"github.com/digipants/quicksquad-api/internal/infrastructure/external_services"
	"github.com/digipants/quicksquad-api/internal/infrastructure/logger"
	"github.com/digipants/quicksquad-api/internal/infrastructure/repository/mongodb"
	"github.com/digipants/quicksquad-api/internal/infrastructure/store"
	"github.com/digipants/quicksquad-api/internal/infrastructure/uuidgen"
	"github.com/digipants/quicksquad-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewConfig()
	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if cfg.AdminSecret == "" {
		log.Println("[WARN] ADMIN_PASSWORD not set - admin endpoints will reject every request")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(cfg.MongoDBName)
	blogRepo := mongodb.NewBlogRepository(db)
	if err := blogRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	chatService := external_services.NewChatService(cfg.ChatAPIURL, cfg.ChatAPIKey, cfg.ChatModel)
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	blogUsecase := usecase.NewBlogUseCase(blogRepo, uuidGenerator, appLogger)
	contactUsecase := usecase.NewContactUsecase(mailService, cfg.SupportInbox, appLogger)
	chatUsecase := usecase.NewChatUsecase(chatService, appLogger)

	// Optional Dependency Injection: Redis cache
	if cfg.RedisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), cfg.RedisURL); rdb != nil {
			defer redisclient.Close(rdb)
			blogUsecase.SetBlogCache(store.NewBlogCacheStore(rdb))
		}
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(cfg, blogUsecase, contactUsecase, chatUsecase, appLogger)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
