package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/handlers"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/middleware"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/models"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/repositories"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, mongoDatabase string, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
		&models.SavedPost{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(mongoDatabase))
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	savedPostRepo := repositories.NewPostgresSavedPostRepository(pgdb)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo)
	socialGraphService := services.NewSocialGraphService(userRepo, followRepo, notificationService)
	interactionService := services.NewInteractionService(postRepo, userRepo, likeRepo, commentRepo, notificationService)
	visibilityService := services.NewVisibilityService(followRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes (anonymous viewers allowed, claims resolved when present) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware())

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, socialGraphService, visibilityService)
	userHandler.RegisterProfileRoutes(api)
	userHandler.RegisterPublicUserRoutes(public)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, visibilityService)
	postHandler.RegisterPostRoutes(api)
	postHandler.RegisterPublicPostRoutes(public)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, followRepo, likeRepo, savedPostRepo, visibilityService)
	feedHandler.RegisterFeedRoutes(public, api)
	log.Println("Feed routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(socialGraphService, followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(interactionService, likeRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(interactionService, commentRepo)
	commentHandler.RegisterCommentRoutes(api)
	commentHandler.RegisterPublicCommentRoutes(public)
	log.Println("Comment routes configured.")

	// Saved recipe routes
	savedPostHandler := handlers.NewSavedPostHandler(savedPostRepo, postRepo)
	savedPostHandler.RegisterSavedPostRoutes(api)
	log.Println("Saved recipe routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
