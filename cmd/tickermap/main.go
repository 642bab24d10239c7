package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/aggregate"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/market"
)

const defaultTickers = "AAPL,MSFT,GOOGL,AMZN,TSLA,META,NVDA,BRK.B,V,JNJ,WMT,JPM,PG,MA,UNH"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	apiKey := os.Getenv("FINNHUB_API_KEY")
	if apiKey == "" {
		log.Fatalf("FINNHUB_API_KEY environment variable is not set")
	}

	configStore, err := store.NewMinioStore(store.EnvConfig(), envOr("CONFIG_BUCKET", "pipeline-config"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}

	var client market.ProfileClient = market.NewFinnHubClient(apiKey)

	tickers := strings.Split(envOr("TICKERS", defaultTickers), ",")

	names := make(map[string]string, len(tickers))
	for _, ticker := range tickers {
		name, err := client.CompanyName(ticker)
		if err != nil {
			slog.Error("error fetching company profile", "ticker", ticker, "error", err)
			continue
		}
		if name == "" {
			// Profile lookups miss for some share classes; the map consumers
			// fall back to the ticker itself.
			slog.Warn("empty company name", "ticker", ticker)
			continue
		}
		names[ticker] = name
	}

	if len(names) == 0 {
		log.Fatalf("no company profiles resolved, refusing to overwrite map")
	}

	payload, err := json.Marshal(names)
	if err != nil {
		log.Fatalf("error serializing ticker company map: %v", err)
	}

	err = configStore.Put(context.Background(), aggregate.TickerMapObject, payload, "application/json")
	if err != nil {
		log.Fatalf("error writing ticker company map: %v", err)
	}

	slog.Info("ticker company map written", "tickers", len(names), "object", aggregate.TickerMapObject)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
