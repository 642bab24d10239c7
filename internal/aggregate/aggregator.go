package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
)

// Aggregator reads a month of preprocessed columnar bar files for one
// ticker and concatenates them into a single chronological dataset.
type Aggregator struct {
	store store.ObjectStore
}

func NewAggregator(s store.ObjectStore) *Aggregator {
	return &Aggregator{store: s}
}

// MonthRows loads every parquet partition under
// {ticker}/year={YYYY}/month={MM}/, tags rows with the ticker, and sorts
// them by date. The storage listing carries no order guarantee, so the
// sort here is what makes downstream text exports deterministic.
func (a *Aggregator) MonthRows(ctx context.Context, ticker string, year, month int) ([]model.Bar, error) {
	prefix := fmt.Sprintf("%s/year=%d/month=%02d/", ticker, year, month)

	keys, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var bars []model.Bar
	for _, key := range keys {
		if !strings.HasSuffix(key, ".parquet") {
			continue
		}

		data, err := a.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		rows, err := readParquetRows(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}

		for _, row := range rows {
			bar, ok := barFromRow(row, ticker)
			if !ok {
				slog.Warn("skipping malformed bar row", "object", key)
				continue
			}
			bars = append(bars, bar)
		}
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func barFromRow(row map[string]any, ticker string) (model.Bar, bool) {
	date, ok := rowTime(row, "Date")
	if !ok {
		return model.Bar{}, false
	}

	open, okO := rowFloat(row, "Open")
	high, okH := rowFloat(row, "High")
	low, okL := rowFloat(row, "Low")
	closePrice, okC := rowFloat(row, "Close")
	if !okO || !okH || !okL || !okC {
		return model.Bar{}, false
	}

	volume, _ := rowInt(row, "Volume")
	dailyReturn, _ := rowFloat(row, "Daily Return")

	return model.Bar{
		Symbol:      ticker,
		Date:        date,
		Open:        open,
		High:        high,
		Low:         low,
		Close:       closePrice,
		Volume:      volume,
		DailyReturn: dailyReturn,
	}, true
}
