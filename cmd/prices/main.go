package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/db"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/pipeline"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/repository"
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

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	stockBucket := envOr("STOCK_BUCKET", "stock-data")
	stockStore, err := store.NewMinioStore(store.EnvConfig(), stockBucket)
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}

	var client market.BarClient = market.NewFinnHubClient(apiKey)
	writer := pipeline.NewRecordWriter(stockStore)
	catalog := repository.NewCatalogRepository(db.DB)

	tickers := strings.Split(envOr("TICKERS", defaultTickers), ",")

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -5)

	process := func(ctx context.Context, ticker string) error {
		bars, err := client.DailyBars(ticker, from, to)
		if err != nil {
			return err
		}
		if len(bars) == 0 {
			slog.Info("no candles for ticker", "ticker", ticker)
			return nil
		}

		for _, bar := range bars {
			rec, err := pipeline.Normalize(map[string]any{
				"Date":         bar.Date.UTC().Format("2006-01-02"),
				"Open":         bar.Open,
				"High":         bar.High,
				"Low":          bar.Low,
				"Close":        bar.Close,
				"Volume":       bar.Volume,
				"Daily Return": bar.DailyReturn,
			}, "Date")
			if err != nil {
				return err
			}

			// Repeat runs over the same window must not clobber earlier
			// files, so the filename seconds come from the wall clock.
			key := pipeline.NewPartitionKey(ticker, bar.Date)
			path, err := writer.Write(ctx, key, time.Now(), rec)
			if err != nil {
				return err
			}

			obj := model.StoredObject{
				Source:     ticker,
				Bucket:     stockBucket,
				ObjectPath: path,
				Kind:       model.KindPrice,
				RecordID:   bar.Date.UTC().Format("2006-01-02"),
			}
			if err := catalog.SaveObject(&obj); err != nil {
				slog.Error("error recording object in catalog", "ticker", ticker, "path", path, "error", err)
			}
		}

		slog.Info("candles stored", "ticker", ticker, "bars", len(bars))
		return nil
	}

	scheduler := pipeline.NewScheduler(pipeline.SchedulerOptions{
		Sources:   tickers,
		BatchSize: 1,
		Cooldown:  2 * time.Second,
		Process:   process,
	})

	err = scheduler.RunOnce(context.Background())
	if err != nil {
		log.Fatalf("error running price fetch: %v", err)
	}

	slog.Info("price fetch complete", "tickers", len(tickers))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
