package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeScalars(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"ticker": "AAPL",
		"close":  228.2,
		"volume": int64(31855200),
		"active": true,
		"note":   nil,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "AAPL", rec["ticker"])
	assert.Equal(t, 228.2, rec["close"])
	assert.Equal(t, int64(31855200), rec["volume"])
	assert.Equal(t, true, rec["active"])
	assert.Equal(t, nil, rec["note"])
}

func TestNormalizeStringifiesNonScalars(t *testing.T) {
	ts := time.Date(2024, time.October, 1, 14, 30, 5, 0, time.UTC)

	rec, err := Normalize(map[string]any{
		"published": ts,
		"tags":      []string{"earnings", "tech"},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "2024-10-01 14:30:05 +0000 UTC", rec["published"])
	assert.Equal(t, "[earnings tech]", rec["tags"])
}

func TestNormalizeMissingRequiredField(t *testing.T) {
	_, err := Normalize(map[string]any{"ticker": "AAPL"}, "ticker", "published_utc")
	assert.NotEqual(t, nil, err)

	_, err = Normalize(map[string]any{"ticker": ""}, "ticker")
	assert.NotEqual(t, nil, err)

	_, err = Normalize(map[string]any{"ticker": "AAPL", "id": nil}, "id")
	assert.NotEqual(t, nil, err)
}

func TestNormalizedRecordRoundTrip(t *testing.T) {
	rec, err := Normalize(map[string]any{
		"ticker":        "AAPL",
		"title":         "Apple unveils new chip",
		"published_utc": "2024-10-01T14:30:05Z",
		"close":         228.2,
	}, "ticker", "published_utc")
	assert.Equal(t, nil, err)

	payload, err := json.Marshal(rec)
	assert.Equal(t, nil, err)

	var decoded map[string]any
	err = json.Unmarshal(payload, &decoded)
	assert.Equal(t, nil, err)

	assert.Equal(t, "AAPL", decoded["ticker"])
	assert.Equal(t, "Apple unveils new chip", decoded["title"])
	assert.Equal(t, "2024-10-01T14:30:05Z", decoded["published_utc"])
	assert.Equal(t, 228.2, decoded["close"])
}
