package model

import "time"

const (
	KindNews  = "news"
	KindPrice = "price"
)

// NormalizedRecord is a flat mapping of field name to a JSON-serializable
// scalar. It always carries the timestamp field its partition key was
// derived from.
type NormalizedRecord map[string]any

// StoredObject is one row of the ingestion catalog: a write the pipeline
// performed against the object store.
type StoredObject struct {
	ID         int64
	Source     string
	Bucket     string
	ObjectPath string
	Kind       string
	RecordID   string
	WrittenAt  time.Time
}

// SourceCount is a per-ticker object count from the catalog.
type SourceCount struct {
	Source string
	Count  int
}
