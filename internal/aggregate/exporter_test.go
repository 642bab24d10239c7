package aggregate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

type fakeMonthSource struct {
	bars []model.Bar
	err  error
}

func (f *fakeMonthSource) MonthRows(ctx context.Context, ticker string, year, month int) ([]model.Bar, error) {
	return f.bars, f.err
}

type fakeObjectStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
	putErr       error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	f.contentTypes[key] = contentType
	return nil
}

func (f *fakeObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return data, nil
}

func (f *fakeObjectStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range f.objects {
		keys = append(keys, k)
	}
	return keys, nil
}

func octBars() []model.Bar {
	return []model.Bar{
		{
			Symbol: "AAPL",
			Date:   time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
			Open:   228.9, High: 229.5, Low: 227.1, Close: 228.2,
			Volume:      31855200,
			DailyReturn: 0.023456,
		},
		{
			Symbol: "AAPL",
			Date:   time.Date(2024, time.October, 2, 0, 0, 0, 0, time.UTC),
			Open:   228.2, High: 230.0, Low: 226.8, Close: 229.1,
			Volume:      29847100,
			DailyReturn: 0.394391,
		},
	}
}

func TestRenderBarLines(t *testing.T) {
	text := RenderBarLines(octBars()[:1], "Apple Inc")

	assert.Equal(t,
		"On 2024-10-01, Apple Inc company's stock made a high and low of 229.5$ and 227.1$, "+
			"its closing and opening market prices were 228.2$ and 228.9$ "+
			"with an overall volume of 31855200 shares traded "+
			"and a return of 0.023456% on daily basis.",
		text)
}

func TestRenderBarLinesSixDecimalReturn(t *testing.T) {
	bars := []model.Bar{{
		Date:        time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC),
		DailyReturn: 0.023456,
	}}

	text := RenderBarLines(bars, "AAPL")

	assert.Equal(t, true, len(text) > 0)
	assert.Equal(t, true, strings.HasSuffix(text, "a return of 0.023456% on daily basis."))
}

func TestRenderBarLinesIdempotent(t *testing.T) {
	bars := octBars()
	first := RenderBarLines(bars, "Apple Inc")
	second := RenderBarLines(bars, "Apple Inc")

	assert.Equal(t, first, second)
}

func TestExportMonth(t *testing.T) {
	out := newFakeObjectStore()
	e := NewExporter(&fakeMonthSource{bars: octBars()}, out)

	wrote, err := e.ExportMonth(context.Background(), "AAPL", "Apple Inc", 2024, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, wrote)

	data, ok := out.objects["AAPL/year=2024/month=10/AAPL_202410.txt"]
	assert.Equal(t, true, ok)
	assert.Equal(t, "text/plain", out.contentTypes["AAPL/year=2024/month=10/AAPL_202410.txt"])
	assert.Equal(t, RenderBarLines(octBars(), "Apple Inc"), string(data))
}

func TestExportMonthEmptyWritesNothing(t *testing.T) {
	out := newFakeObjectStore()
	e := NewExporter(&fakeMonthSource{}, out)

	wrote, err := e.ExportMonth(context.Background(), "AAPL", "Apple Inc", 2024, 11)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, wrote)
	assert.Equal(t, 0, len(out.objects))
}

func TestExportMonthSourceError(t *testing.T) {
	out := newFakeObjectStore()
	e := NewExporter(&fakeMonthSource{err: errors.New("listing failed")}, out)

	wrote, err := e.ExportMonth(context.Background(), "AAPL", "Apple Inc", 2024, 10)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, wrote)
	assert.Equal(t, 0, len(out.objects))
}
