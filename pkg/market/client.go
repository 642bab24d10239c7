package market

import (
	"time"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

// BarClient fetches daily OHLCV bars for one symbol over a date range.
type BarClient interface {
	DailyBars(symbol string, from, to time.Time) ([]model.Bar, error)
	Name() string
}

// ProfileClient resolves ticker symbols to company display names.
type ProfileClient interface {
	CompanyName(symbol string) (string, error)
}
