package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/internal/router"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/pkg/config"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/pkg/firebase"
	"github.com/Harshaka512/CookSync-Skill-Sharing-Learning-Platform/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase. Optional: local JWT auth still works without it.
	ctx := context.Background()
	var firebaseAuth *auth.Client
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Firebase not initialized, firebase-login disabled: %v", err)
	} else {
		firebaseAuth = firebaseApp.AuthClient
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, cfg.MongoDatabase, firebaseAuth)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
