package aggregate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/store"
)

// MonthSource produces the aggregated bars the exporter renders.
type MonthSource interface {
	MonthRows(ctx context.Context, ticker string, year, month int) ([]model.Bar, error)
}

// Exporter projects a month of bars into a plain-text summary object in
// the transformed bucket.
type Exporter struct {
	source MonthSource
	out    store.ObjectStore
}

func NewExporter(source MonthSource, out store.ObjectStore) *Exporter {
	return &Exporter{source: source, out: out}
}

// ExportMonth renders and writes {ticker}/year={YYYY}/month={MM}/
// {ticker}_{YYYYMM}.txt, overwriting any prior object. It reports
// whether a write happened: an empty month produces no object at all,
// not an empty file.
func (e *Exporter) ExportMonth(ctx context.Context, ticker, companyName string, year, month int) (bool, error) {
	bars, err := e.source.MonthRows(ctx, ticker, year, month)
	if err != nil {
		return false, err
	}

	if len(bars) == 0 {
		return false, nil
	}

	text := RenderBarLines(bars, companyName)
	path := fmt.Sprintf("%s/year=%d/month=%02d/%s_%d%02d.txt", ticker, year, month, ticker, year, month)

	if err := e.out.Put(ctx, path, []byte(text), "text/plain"); err != nil {
		return false, err
	}
	return true, nil
}

// RenderBarLines renders one summary line per bar, joined by newlines.
// Given a fixed row order the output is byte-identical across calls.
func RenderBarLines(bars []model.Bar, companyName string) string {
	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		lines = append(lines, fmt.Sprintf(
			"On %s, %s company's stock made a high and low of %s$ and %s$, "+
				"its closing and opening market prices were %s$ and %s$ "+
				"with an overall volume of %d shares traded "+
				"and a return of %.6f%% on daily basis.",
			b.Date.Format("2006-01-02"), companyName,
			formatPrice(b.High), formatPrice(b.Low),
			formatPrice(b.Close), formatPrice(b.Open),
			b.Volume, b.DailyReturn,
		))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
