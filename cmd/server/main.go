package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/router"
	"github.com/salcho-dev/devlog/backend/internal/session"
	"github.com/salcho-dev/devlog/backend/internal/validators"
	"github.com/salcho-dev/devlog/backend/pkg/config"
	"github.com/salcho-dev/devlog/backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The Firebase clients initialize lazily and exactly once; every caller
	// of Ready shares the same attempt.
	mirror := session.NewMirror(func(ctx context.Context) (*firebase.App, error) {
		return firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.FirestoreProjectID)
	})
	defer mirror.Close()

	app, err := mirror.Ready(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, app.Firestore, app.AuthClient, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
