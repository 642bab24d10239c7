package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/aggregate"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/llm"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/vector"
)

const embedBatchSize = 100

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := store.EnvConfig()

	configStore, err := store.NewMinioStore(cfg, envOr("CONFIG_BUCKET", "pipeline-config"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}
	newsStore, err := store.NewMinioStore(cfg, envOr("PREPROCESSED_NEWS_BUCKET", "preprocessed-news"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}
	corpusStore, err := store.NewMinioStore(cfg, envOr("NEWS_DATA_BUCKET", "news-data"))
	if err != nil {
		log.Fatalf("error creating object store client: %v", err)
	}

	ctx := context.Background()

	companyNames, err := aggregate.LoadTickerMap(ctx, configStore)
	if err != nil {
		log.Fatalf("error loading ticker company map: %v", err)
	}

	builder := aggregate.NewCorpusBuilder(newsStore, corpusStore)

	lines, err := builder.Build(ctx, companyNames)
	if err != nil {
		log.Fatalf("error building news corpus: %v", err)
	}

	if len(lines) == 0 {
		slog.Info("no news rows to index, exiting")
		return
	}

	err = builder.WriteCorpus(ctx, lines)
	if err != nil {
		log.Fatalf("error writing news corpus: %v", err)
	}

	slog.Info("news corpus written", "lines", len(lines))

	var embedder llm.Embedder = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), "")
	index := vector.NewPineconeIndex(os.Getenv("PINECONE_INDEX_HOST"), os.Getenv("PINECONE_API_KEY"))

	// The index must have been created with a matching dimension.
	slog.Info("indexing corpus", "lines", len(lines), "dimension", embedder.Dimension())

	var upserted int
	for start := 0; start < len(lines); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(lines) {
			end = len(lines)
		}
		batch := lines[start:end]

		embeddings, err := embedder.Embed(batch)
		if err != nil {
			log.Fatalf("error embedding corpus batch: %v", err)
		}

		vectors := make([]vector.Vector, len(batch))
		for i, line := range batch {
			vectors[i] = vector.Vector{
				ID:     fmt.Sprintf("news-%d", start+i),
				Values: embeddings[i],
				Text:   line,
			}
		}

		n, err := index.Upsert(vectors)
		if err != nil {
			log.Fatalf("error upserting vectors: %v", err)
		}
		upserted += n

		slog.Info("batch indexed", "from", start, "count", len(batch))
	}

	slog.Info("indexing complete", "lines", len(lines), "upserted", upserted)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
