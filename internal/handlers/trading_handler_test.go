package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/botapi/internal/models"
	"github.com/tradekit/botapi/internal/services"
)

func setupTestRouter() *mux.Router {
	router := mux.NewRouter()
	handler := NewTradingHandler(services.NewTradingService())
	handler.RegisterRoutes(router)
	return router
}

func doGet(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPositions(t *testing.T) {
	router := setupTestRouter()
	rec := doGet(t, router, "/positions")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.PositionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Positions, 1)

	position := body.Positions[0]
	require.Equal(t, "BTCUSDT", position.Symbol)
	require.Equal(t, 0.1, position.Quantity)
	require.Equal(t, 45000.0, position.EntryPrice)
	require.Equal(t, 45500.0, position.CurrentPrice)
	require.Equal(t, 500.0, position.PnL)
	require.Equal(t, "active", position.Status)
}

func TestGetOrders(t *testing.T) {
	router := setupTestRouter()
	rec := doGet(t, router, "/orders")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.OrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)

	order := body.Orders[0]
	require.Equal(t, "ord_123", order.ID)
	require.Equal(t, "BTCUSDT", order.Symbol)
	require.Equal(t, "buy", order.Side)
	require.Equal(t, 0.1, order.Quantity)
	require.Equal(t, 45000.0, order.Price)
	require.Equal(t, "filled", order.Status)
	require.Equal(t, "2025-04-14T01:43:00Z", order.Timestamp)
}

func TestGetPerformance(t *testing.T) {
	router := setupTestRouter()
	rec := doGet(t, router, "/performance")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	expectedKeys := []string{
		"total_pnl", "win_rate", "average_trade_duration",
		"largest_win", "largest_loss", "current_balance", "initial_balance",
	}
	require.Len(t, body, len(expectedKeys))
	for _, key := range expectedKeys {
		require.Contains(t, body, key)
	}

	require.Equal(t, 500.0, body["total_pnl"])
	require.Equal(t, "2h", body["average_trade_duration"])
	require.Equal(t, 1000.0, body["largest_win"])
	require.Equal(t, -500.0, body["largest_loss"])
	require.Equal(t, 10000.0, body["current_balance"])
	require.Equal(t, 10000.0, body["initial_balance"])

	winRate := body["win_rate"].(float64)
	require.GreaterOrEqual(t, winRate, 0.0)
	require.LessOrEqual(t, winRate, 1.0)
}

func TestGetStatus(t *testing.T) {
	router := setupTestRouter()
	rec := doGet(t, router, "/status")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	expectedKeys := []string{"is_trading", "mode", "strategy", "last_trade", "next_signal"}
	require.Len(t, body, len(expectedKeys))
	for _, key := range expectedKeys {
		require.Contains(t, body, key)
	}

	require.Equal(t, true, body["is_trading"])
	require.Equal(t, "live", body["mode"])
	require.Equal(t, "moving_average", body["strategy"])
	require.Equal(t, "2025-04-14T01:43:00Z", body["last_trade"])
	require.Equal(t, "2025-04-14T01:44:00Z", body["next_signal"])
}

func TestResponsesAreDeterministic(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/positions", "/orders", "/performance", "/status"} {
		first := doGet(t, router, path)
		second := doGet(t, router, path)

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, first.Body.String(), second.Body.String(), "response for %s changed between calls", path)
	}
}

func TestOnlyGetIsRouted(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/positions", "/orders", "/performance", "/status"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "POST %s should not be routed", path)
	}
}
