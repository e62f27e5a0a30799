package models

// Position represents an open trading position
type Position struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	EntryPrice   float64 `json:"entry_price"`
	CurrentPrice float64 `json:"current_price"`
	PnL          float64 `json:"pnl"`
	Status       string  `json:"status"`
}

// Order represents an executed trade order
type Order struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	// Timestamp is the execution time in ISO-8601 UTC
	Timestamp string `json:"timestamp"`
}

// Performance holds aggregate trading performance metrics
type Performance struct {
	TotalPnL             float64 `json:"total_pnl"`
	WinRate              float64 `json:"win_rate"`
	AverageTradeDuration string  `json:"average_trade_duration"`
	LargestWin           float64 `json:"largest_win"`
	LargestLoss          float64 `json:"largest_loss"`
	CurrentBalance       float64 `json:"current_balance"`
	InitialBalance       float64 `json:"initial_balance"`
}

// TradingStatus describes whether the bot is trading and on what schedule
type TradingStatus struct {
	IsTrading  bool   `json:"is_trading"`
	Mode       string `json:"mode"`
	Strategy   string `json:"strategy"`
	LastTrade  string `json:"last_trade"`
	NextSignal string `json:"next_signal"`
}

// PositionsResponse is the body of GET /positions
type PositionsResponse struct {
	Positions []Position `json:"positions"`
}

// OrdersResponse is the body of GET /orders
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
