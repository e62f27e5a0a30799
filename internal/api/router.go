package api

import (
	"github.com/gorilla/mux"

	"github.com/tradekit/botapi/internal/handlers"
	"github.com/tradekit/botapi/internal/middleware"
	"github.com/tradekit/botapi/internal/services"
)

// SetupRouter configures all routes and returns the router
func SetupRouter() *mux.Router {
	// Create a new router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger())

	// Add health check endpoint
	router.HandleFunc("/health", HealthHandler).Methods("GET")

	// Create services
	tradingService := services.NewTradingService()

	// Create handlers using services
	tradingHandler := handlers.NewTradingHandler(tradingService)

	// Register routes
	tradingHandler.RegisterRoutes(router)

	return router
}
