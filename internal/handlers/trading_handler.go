package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tradekit/botapi/internal/models"
	"github.com/tradekit/botapi/internal/services"
)

// TradingHandler handles trading state queries
type TradingHandler struct {
	tradingService services.TradingService
}

// NewTradingHandler creates a new trading handler
func NewTradingHandler(tradingService services.TradingService) *TradingHandler {
	return &TradingHandler{
		tradingService: tradingService,
	}
}

// RegisterRoutes registers trading query routes
func (h *TradingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/positions", h.GetPositions).Methods("GET")
	router.HandleFunc("/orders", h.GetOrders).Methods("GET")
	router.HandleFunc("/performance", h.GetPerformance).Methods("GET")
	router.HandleFunc("/status", h.GetStatus).Methods("GET")
}

// GetPositions returns the current trading positions
func (h *TradingHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions := h.tradingService.GetPositions()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PositionsResponse{Positions: positions})
}

// GetOrders returns the trade order history
func (h *TradingHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.tradingService.GetOrders()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.OrdersResponse{Orders: orders})
}

// GetPerformance returns trading performance metrics
func (h *TradingHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	performance := h.tradingService.GetPerformance()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(performance)
}

// GetStatus returns the current trading status
func (h *TradingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.tradingService.GetStatus()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
