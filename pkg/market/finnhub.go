package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// DailyBars returns the symbol's daily candles between from and to, with
// the daily return derived close-on-close.
func (c *FinnHubClient) DailyBars(symbol string, from, to time.Time) ([]model.Bar, error) {
	res, _, err := c.client.StockCandles(context.Background()).
		Symbol(symbol).
		Resolution("D").
		From(from.Unix()).
		To(to.Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub candles for %s: %w", symbol, err)
	}

	if res.GetS() != "ok" {
		return nil, nil
	}

	times := res.GetT()
	opens := res.GetO()
	highs := res.GetH()
	lows := res.GetL()
	closes := res.GetC()
	volumes := res.GetV()

	bars := make([]model.Bar, 0, len(times))
	for i := range times {
		if i >= len(opens) || i >= len(highs) || i >= len(lows) || i >= len(closes) || i >= len(volumes) {
			break
		}

		bars = append(bars, model.Bar{
			Symbol: symbol,
			Date:   time.Unix(times[i], 0).UTC(),
			Open:   float64(opens[i]),
			High:   float64(highs[i]),
			Low:    float64(lows[i]),
			Close:  float64(closes[i]),
			Volume: int64(volumes[i]),
		})
	}

	return WithDailyReturns(bars), nil
}

// CompanyName resolves symbol via the company profile endpoint, falling
// back to the symbol itself when no name is on file.
func (c *FinnHubClient) CompanyName(symbol string) (string, error) {
	profile, _, err := c.client.CompanyProfile2(context.Background()).
		Symbol(symbol).
		Execute()
	if err != nil {
		return "", fmt.Errorf("finnhub profile for %s: %w", symbol, err)
	}

	if name := profile.GetName(); name != "" {
		return name, nil
	}
	return symbol, nil
}

// WithDailyReturns fills DailyReturn on each bar as the percentage change
// of close against the previous bar's close. The first bar gets 0.
func WithDailyReturns(bars []model.Bar) []model.Bar {
	for i := range bars {
		if i == 0 || bars[i-1].Close == 0 {
			bars[i].DailyReturn = 0
			continue
		}
		bars[i].DailyReturn = (bars[i].Close - bars[i-1].Close) / bars[i-1].Close * 100
	}
	return bars
}
