package llm

import (
	"fmt"
	"strings"
)

// AnswerClient generates an answer to a question given retrieved context
// documents.
type AnswerClient interface {
	Answer(question string, context []string) (string, error)
	ModelName() string
}

// Embedder turns text into embedding vectors for the vector index.
type Embedder interface {
	Embed(texts []string) ([][]float32, error)
	Dimension() int
}

// answerPrompt joins the retrieved documents into the single user prompt
// both answer clients send.
func answerPrompt(question string, docs []string) string {
	return fmt.Sprintf("For question: %s and given relevant content: %s",
		question, strings.Join(docs, " "))
}
