package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
)

// RecordWriter serializes normalized records and puts them under their
// partition path. Delivery is at-least-once; a rewrite of the same path
// overwrites the previous object.
type RecordWriter struct {
	store store.ObjectStore
}

func NewRecordWriter(s store.ObjectStore) *RecordWriter {
	return &RecordWriter{store: s}
}

// Write puts rec at key's path and returns the object path written.
// nameTime supplies the filename's seconds component, see
// PartitionKey.ObjectName.
func (w *RecordWriter) Write(ctx context.Context, key PartitionKey, nameTime time.Time, rec model.NormalizedRecord) (string, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("serialize record for %s: %w", key.Source, err)
	}

	path := key.Path(nameTime, ".json")
	if err := w.store.Put(ctx, path, payload, "application/json"); err != nil {
		return "", err
	}
	return path, nil
}
