package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/db"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/pipeline"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/repository"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/news"
)

const defaultTickers = "AAPL,MSFT,GOOGL,AMZN,TSLA,META,NVDA,BRK.B,V,JNJ,WMT,JPM,PG,MA,UNH"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	apiKey := os.Getenv("MASSIVE_API_KEY")
	if apiKey == "" {
		log.Fatalf("MASSIVE_API_KEY environment variable is not set")
	}

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var lastSeen pipeline.LastSeenStore = pipeline.NewMemoryLastSeen()
	if os.Getenv("REDIS_URL") != "" {
		err = db.ConnectRedis()
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		lastSeen = db.RedisLastSeen{}
	}

	newsBucket := envOr("NEWS_BUCKET", "news-articles")
	newsStore, err := store.NewMinioStore(store.EnvConfig(), newsBucket)
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}

	var client news.TickerNewsClient = news.NewMassiveClient(apiKey)
	scraper := news.NewScraper()
	gate := pipeline.NewGate(lastSeen)
	writer := pipeline.NewRecordWriter(newsStore)
	catalog := repository.NewCatalogRepository(db.DB)

	tickers := strings.Split(envOr("TICKERS", defaultTickers), ",")

	process := func(ctx context.Context, ticker string) error {
		articles, err := client.Latest(ticker, 1)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			slog.Info("no articles for ticker", "ticker", ticker)
			return nil
		}
		a := articles[0]

		seen, err := gate.Seen(ticker, a.ExternalID)
		if err != nil {
			return err
		}
		if seen {
			slog.Info("duplicate article skipped", "ticker", ticker, "url", a.URL)
			return nil
		}

		content, err := scraper.Content(a.URL)
		if err != nil {
			// Articles behind paywalls still get stored, just without body text.
			slog.Warn("error scraping article content", "ticker", ticker, "url", a.URL, "error", err)
			content = ""
		}

		rec, err := pipeline.Normalize(map[string]any{
			"ticker":        ticker,
			"title":         a.Headline,
			"summary":       a.Detail,
			"content":       content,
			"published_utc": a.PublishedAt.UTC().Format(time.RFC3339),
		}, "ticker", "title", "published_utc")
		if err != nil {
			return err
		}

		key := pipeline.NewPartitionKey(ticker, a.PublishedAt)
		path, err := writer.Write(ctx, key, a.PublishedAt, rec)
		if err != nil {
			return err
		}

		// The id is committed only once the write has landed, so a retry
		// after a failed write does not see its own record as a duplicate.
		if err := gate.Commit(ticker, a.ExternalID); err != nil {
			return err
		}

		obj := model.StoredObject{
			Source:     ticker,
			Bucket:     newsBucket,
			ObjectPath: path,
			Kind:       model.KindNews,
			RecordID:   a.ExternalID,
		}
		if err := catalog.SaveObject(&obj); err != nil {
			slog.Error("error recording object in catalog", "ticker", ticker, "path", path, "error", err)
		}

		slog.Info("article stored", "ticker", ticker, "path", path)
		return nil
	}

	scheduler := pipeline.NewScheduler(pipeline.SchedulerOptions{
		Sources: tickers,
		Retry:   pipeline.RetryPolicy{MaxAttempts: 3, Backoff: 5 * time.Second},
		Process: process,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("fetcher started", "tickers", len(tickers))

	err = scheduler.Run(ctx)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("error running fetch loop: %v", err)
	}

	slog.Info("fetcher stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
