package rag

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/vector"
)

type fakeEmbedder struct {
	vectors [][]float32
	err     error
}

func (f *fakeEmbedder) Embed(texts []string) ([][]float32, error) {
	return f.vectors, f.err
}

func (f *fakeEmbedder) Dimension() int { return 3 }

type fakeIndex struct {
	matches []vector.Match
	err     error
	gotTopK int
}

func (f *fakeIndex) Query(vec []float32, topK int) ([]vector.Match, error) {
	f.gotTopK = topK
	return f.matches, f.err
}

func (f *fakeIndex) Upsert(vectors []vector.Vector) (int, error) {
	return len(vectors), nil
}

type fakeAnswerer struct {
	answer  string
	err     error
	gotDocs []string
}

func (f *fakeAnswerer) Answer(question string, docs []string) (string, error) {
	f.gotDocs = docs
	return f.answer, f.err
}

func (f *fakeAnswerer) ModelName() string { return "fake-model" }

func TestEngineAnswer(t *testing.T) {
	index := &fakeIndex{matches: []vector.Match{
		{ID: "1", Text: "AAPL rose 2% on earnings."},
		{ID: "2", Text: ""},
		{ID: "3", Text: "iPhone sales beat estimates."},
	}}
	answerer := &fakeAnswerer{answer: "Apple stock rose on strong earnings."}

	e := NewEngine(&fakeEmbedder{vectors: [][]float32{{0.1, 0.2, 0.3}}}, index, answerer)

	answer, err := e.Answer("Why did AAPL go up?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Apple stock rose on strong earnings.", answer)
	assert.Equal(t, 5, index.gotTopK)

	// Empty match texts are dropped before prompting.
	assert.Equal(t, []string{"AAPL rose 2% on earnings.", "iPhone sales beat estimates."}, answerer.gotDocs)
}

func TestEngineAnswerEmbedError(t *testing.T) {
	e := NewEngine(&fakeEmbedder{err: errors.New("quota exceeded")}, &fakeIndex{}, &fakeAnswerer{})

	_, err := e.Answer("anything")
	assert.NotEqual(t, nil, err)
}

func TestEngineAnswerIndexError(t *testing.T) {
	e := NewEngine(
		&fakeEmbedder{vectors: [][]float32{{0.1}}},
		&fakeIndex{err: errors.New("index unavailable")},
		&fakeAnswerer{},
	)

	_, err := e.Answer("anything")
	assert.NotEqual(t, nil, err)
}
