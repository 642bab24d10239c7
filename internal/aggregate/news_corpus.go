package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
)

const (
	TickerMapObject  = "ticker_company_map.json"
	CorpusObjectName = "news_data.json"
)

// CorpusBuilder walks the preprocessed news partitions and projects each
// article row into one corpus line for the vector index.
type CorpusBuilder struct {
	news store.ObjectStore
	out  store.ObjectStore
}

func NewCorpusBuilder(news, out store.ObjectStore) *CorpusBuilder {
	return &CorpusBuilder{news: news, out: out}
}

// Build renders a corpus line per article row across every parquet
// object in the news bucket. A partition that fails to decode is logged
// and skipped; the rest of the corpus still builds.
func (b *CorpusBuilder) Build(ctx context.Context, companyNames map[string]string) ([]string, error) {
	keys, err := b.news.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, key := range keys {
		if !strings.HasSuffix(key, ".parquet") {
			continue
		}

		data, err := b.news.Get(ctx, key)
		if err != nil {
			slog.Error("failed to download news partition", "object", key, "error", err)
			continue
		}

		rows, err := readParquetRows(ctx, data)
		if err != nil {
			slog.Error("failed to decode news partition", "object", key, "error", err)
			continue
		}

		for _, row := range rows {
			line, ok := corpusLine(row, companyNames)
			if !ok {
				slog.Warn("skipping news row without date or ticker", "object", key)
				continue
			}
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// WriteCorpus stores the collected lines as a JSON array object for the
// embedding stage, overwriting the previous corpus.
func (b *CorpusBuilder) WriteCorpus(ctx context.Context, lines []string) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("serialize corpus: %w", err)
	}
	return b.out.Put(ctx, CorpusObjectName, payload, "application/json")
}

func corpusLine(row map[string]any, companyNames map[string]string) (string, bool) {
	date, ok := rowTime(row, "date")
	if !ok {
		return "", false
	}

	ticker := rowString(row, "ticker")
	if ticker == "" {
		return "", false
	}

	company := companyNames[ticker]
	if company == "" {
		company = ticker
	}

	return fmt.Sprintf(
		"On date %s, for company name %s and Ticker name %s news title is %q with summary : %q and sentiment score : %q",
		date.Format("January 2006 02"), company, ticker,
		rowString(row, "title"), rowString(row, "summary"), rowString(row, "sentiment"),
	), true
}

// LoadTickerMap reads the ticker to company-name mapping from the config
// bucket.
func LoadTickerMap(ctx context.Context, cfg store.ObjectStore) (map[string]string, error) {
	data, err := cfg.Get(ctx, TickerMapObject)
	if err != nil {
		return nil, err
	}

	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decode %s: %w", TickerMapObject, err)
	}
	return names, nil
}
