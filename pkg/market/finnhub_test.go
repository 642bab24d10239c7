package market

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

func TestWithDailyReturns(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC)
	}

	bars := []model.Bar{
		{Symbol: "AAPL", Date: day(1), Close: 100},
		{Symbol: "AAPL", Date: day(2), Close: 102},
		{Symbol: "AAPL", Date: day(3), Close: 96.9},
	}

	got := WithDailyReturns(bars)

	assert.Equal(t, 0.0, got[0].DailyReturn)
	assert.Equal(t, true, almostEqual(got[1].DailyReturn, 2.0))
	assert.Equal(t, true, almostEqual(got[2].DailyReturn, -5.0))
}

func TestWithDailyReturnsZeroPrevClose(t *testing.T) {
	bars := []model.Bar{
		{Close: 0},
		{Close: 50},
	}

	got := WithDailyReturns(bars)

	assert.Equal(t, 0.0, got[0].DailyReturn)
	assert.Equal(t, 0.0, got[1].DailyReturn)
}

func TestWithDailyReturnsEmpty(t *testing.T) {
	got := WithDailyReturns(nil)
	assert.Equal(t, 0, len(got))
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
