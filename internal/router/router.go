package router

import (
	"log"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/salcho-dev/devlog/backend/internal/handlers"
	"github.com/salcho-dev/devlog/backend/internal/middleware"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
	"github.com/salcho-dev/devlog/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, fs *firestore.Client, authClient *auth.Client, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewFirestorePostRepository(fs)
	likeRepo := repositories.NewFirestoreLikeRepository(fs)
	commentRepo := repositories.NewFirestoreCommentRepository(fs)
	userRepo := repositories.NewFirestoreUserRepository(fs, cfg.MasterEmail)
	visitRepo := repositories.NewFirestoreVisitRepository(fs)

	// --- Public routes ---
	public := e.Group("/api/v1")

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPublicRoutes(public)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterPublicRoutes(public)

	visitHandler := handlers.NewVisitHandler(visitRepo)
	visitHandler.RegisterVisitRoutes(public)
	log.Println("Public routes configured.")

	// --- Routes requiring a verified Firebase session ---
	authed := e.Group("/api/v1", middleware.FirebaseAuthMiddleware(authClient))

	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authed)

	likeHandler := handlers.NewLikeHandler(likeRepo)
	likeHandler.RegisterLikeRoutes(authed)

	commentHandler.RegisterAuthRoutes(authed)

	uploadHandler := handlers.NewUploadHandler(cfg.UploadBaseURL)
	uploadHandler.RegisterUploadRoutes(authed)
	log.Println("Authenticated routes configured.")

	// --- Admin-only write routes ---
	admin := e.Group("/api/v1", middleware.FirebaseAuthMiddleware(authClient), middleware.RequireAdmin(userRepo))
	postHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
