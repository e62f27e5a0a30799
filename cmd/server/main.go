package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/tradekit/botapi/internal/api"
	"github.com/tradekit/botapi/internal/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Initialize router
	router := api.SetupRouter()

	if cfg.Server.Debug {
		api.PrintRoutes(router)
	}

	// Set up CORS
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Apply CORS middleware
	handler := corsMiddleware.Handler(router)

	// Start the server
	logrus.Infof("Server starting on port %s", cfg.Server.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Server.Port, handler))
}
