package services

import (
	"github.com/tradekit/botapi/internal/models"
)

// TradingService defines the read-only view of the bot's trading state
type TradingService interface {
	GetPositions() []models.Position
	GetOrders() []models.Order
	GetPerformance() models.Performance
	GetStatus() models.TradingStatus
}

// tradingService implements the TradingService interface
type tradingService struct{}

// NewTradingService creates a new trading service
func NewTradingService() TradingService {
	return &tradingService{}
}

// GetPositions returns the currently open positions
func (s *tradingService) GetPositions() []models.Position {
	return []models.Position{
		{
			Symbol:       "BTCUSDT",
			Quantity:     0.1,
			EntryPrice:   45000.0,
			CurrentPrice: 45500.0,
			PnL:          500.0,
			Status:       "active",
		},
	}
}

// GetOrders returns the trade order history
func (s *tradingService) GetOrders() []models.Order {
	return []models.Order{
		{
			ID:        "ord_123",
			Symbol:    "BTCUSDT",
			Side:      "buy",
			Quantity:  0.1,
			Price:     45000.0,
			Status:    "filled",
			Timestamp: "2025-04-14T01:43:00Z",
		},
	}
}

// GetPerformance returns aggregate performance metrics
func (s *tradingService) GetPerformance() models.Performance {
	return models.Performance{
		TotalPnL:             500.0,
		WinRate:              0.6,
		AverageTradeDuration: "2h",
		LargestWin:           1000.0,
		LargestLoss:          -500.0,
		CurrentBalance:       10000.0,
		InitialBalance:       10000.0,
	}
}

// GetStatus returns the current trading status
func (s *tradingService) GetStatus() models.TradingStatus {
	return models.TradingStatus{
		IsTrading:  true,
		Mode:       "live",
		Strategy:   "moving_average",
		LastTrade:  "2025-04-14T01:43:00Z",
		NextSignal: "2025-04-14T01:44:00Z",
	}
}
