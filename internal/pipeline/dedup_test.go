package pipeline

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGateSeenAfterCommit(t *testing.T) {
	gate := NewGate(NewMemoryLastSeen())

	seen, err := gate.Seen("AAPL", "article-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, seen)

	err = gate.Commit("AAPL", "article-1")
	assert.Equal(t, nil, err)

	seen, err = gate.Seen("AAPL", "article-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, seen)

	seen, err = gate.Seen("AAPL", "article-2")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, seen)
}

func TestGateSeenDoesNotCommit(t *testing.T) {
	gate := NewGate(NewMemoryLastSeen())

	// A check whose downstream write fails must leave the record new, so
	// the retry gets another shot at it.
	seen, _ := gate.Seen("AAPL", "article-1")
	assert.Equal(t, false, seen)

	seen, _ = gate.Seen("AAPL", "article-1")
	assert.Equal(t, false, seen)
}

func TestGatePerSource(t *testing.T) {
	gate := NewGate(NewMemoryLastSeen())

	err := gate.Commit("AAPL", "article-1")
	assert.Equal(t, nil, err)

	// Same id under a different source is still new.
	seen, _ := gate.Seen("MSFT", "article-1")
	assert.Equal(t, false, seen)
}

type failingLastSeen struct{}

func (failingLastSeen) Get(source string) (string, error) {
	return "", errors.New("store unavailable")
}

func (failingLastSeen) Set(source, id string) error {
	return errors.New("store unavailable")
}

func TestGateStoreError(t *testing.T) {
	gate := NewGate(failingLastSeen{})

	_, err := gate.Seen("AAPL", "article-1")
	assert.NotEqual(t, nil, err)

	err = gate.Commit("AAPL", "article-1")
	assert.NotEqual(t, nil, err)
}
