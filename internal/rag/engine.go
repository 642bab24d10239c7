package rag

import (
	"fmt"
	"log/slog"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/llm"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/vector"
)

const defaultTopK = 5

// Engine answers questions by embedding the query, retrieving the
// nearest corpus documents from the vector index, and prompting the
// answer model with them.
type Engine struct {
	embedder llm.Embedder
	index    vector.Index
	answerer llm.AnswerClient
	topK     int
}

func NewEngine(embedder llm.Embedder, index vector.Index, answerer llm.AnswerClient) *Engine {
	return &Engine{
		embedder: embedder,
		index:    index,
		answerer: answerer,
		topK:     defaultTopK,
	}
}

// Retrieve returns the texts of the topK documents nearest to the query.
func (e *Engine) Retrieve(query string) ([]string, error) {
	vectors, err := e.embedder.Embed([]string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed query: no vector returned")
	}

	matches, err := e.index.Query(vectors[0], e.topK)
	if err != nil {
		return nil, err
	}

	docs := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Text != "" {
			docs = append(docs, m.Text)
		}
	}
	return docs, nil
}

// Answer runs retrieval and generation for one question.
func (e *Engine) Answer(question string) (string, error) {
	docs, err := e.Retrieve(question)
	if err != nil {
		return "", err
	}

	slog.Info("retrieved context for query", "documents", len(docs), "model", e.answerer.ModelName())

	answer, err := e.answerer.Answer(question, docs)
	if err != nil {
		return "", err
	}
	return answer, nil
}
