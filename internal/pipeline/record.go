package pipeline

import (
	"fmt"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

// Normalize coerces every value of raw to a JSON-serializable scalar and
// verifies the required fields are present and non-empty. Non-scalar
// values are stringified rather than rejected, so one odd upstream field
// never drops a whole record.
func Normalize(raw map[string]any, required ...string) (model.NormalizedRecord, error) {
	rec := make(model.NormalizedRecord, len(raw))
	for k, v := range raw {
		rec[k] = scalarize(v)
	}

	for _, field := range required {
		v, ok := rec[field]
		if !ok || v == nil {
			return nil, fmt.Errorf("normalize: missing required field %q", field)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, fmt.Errorf("normalize: missing required field %q", field)
		}
	}

	return rec, nil
}

func scalarize(v any) any {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
