package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/db"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/aggregate"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/handler"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/rag"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/repository"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/llm"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/notify"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/vector"
)

const defaultRetrainThreshold = 5

// redisCounter adapts the shared Redis feedback counter to the handler's
// interface.
type redisCounter struct{}

func (redisCounter) Increment(delta int64) (int64, error) {
	return db.IncrFeedbackCounter(delta)
}

func (redisCounter) Current() (int64, error) {
	return db.GetFeedbackCounter()
}

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	cfg := store.EnvConfig()

	preprocessedStore, err := store.NewMinioStore(cfg, envOr("PREPROCESSED_STOCK_BUCKET", "preprocessed-stock"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}
	transformedStore, err := store.NewMinioStore(cfg, envOr("TRANSFORMED_BUCKET", "transformed-data"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}
	configStore, err := store.NewMinioStore(cfg, envOr("CONFIG_BUCKET", "pipeline-config"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}

	companyNames, err := aggregate.LoadTickerMap(context.Background(), configStore)
	if err != nil {
		// Exports fall back to the raw ticker as the company name.
		slog.Error("error loading ticker company map", "error", err)
		companyNames = map[string]string{}
	}

	aggregator := aggregate.NewAggregator(preprocessedStore)
	exporter := aggregate.NewExporter(aggregator, transformedStore)
	transformHandler := handler.NewTransformHandler(exporter, companyNames)

	embedder := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	index := vector.NewPineconeIndex(os.Getenv("PINECONE_INDEX_HOST"), os.Getenv("PINECONE_API_KEY"))

	var answerer llm.AnswerClient = embedder
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		answerer = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}
	slog.Info("answer model selected", "model", answerer.ModelName())

	engine := rag.NewEngine(embedder, index, answerer)
	predictHandler := handler.NewPredictHandler(engine)

	var notifier notify.Notifier
	if webhookURL := os.Getenv("SLACK_WEBHOOK_URL"); webhookURL != "" {
		notifier = notify.NewSlackWebhook(webhookURL)
	}

	threshold := int64(defaultRetrainThreshold)
	if raw := os.Getenv("RETRAIN_THRESHOLD"); raw != "" {
		threshold, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("invalid RETRAIN_THRESHOLD %q: %v", raw, err)
		}
	}
	feedbackHandler := handler.NewFeedbackHandler(redisCounter{}, notifier, threshold)

	catalogRepo := repository.NewCatalogRepository(db.DB)
	statusHandler := handler.NewStatusHandler(catalogRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/predict", predictHandler.Predict)
	r.POST("/transform", transformHandler.Transform)
	r.POST("/feedback", feedbackHandler.Increment)
	r.GET("/feedback", feedbackHandler.GetCounter)
	r.GET("/status", statusHandler.GetStatus)
	r.GET("/health", predictHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
