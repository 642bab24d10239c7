package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type exportCall struct {
	ticker string
	name   string
	year   int
	month  int
}

type fakeExporter struct {
	calls []exportCall
	wrote bool
	err   error
}

func (f *fakeExporter) ExportMonth(ctx context.Context, ticker, companyName string, year, month int) (bool, error) {
	f.calls = append(f.calls, exportCall{ticker: ticker, name: companyName, year: year, month: month})
	return f.wrote, f.err
}

func newTestTransformRouter(exporter MonthExporter, names map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTransformHandler(exporter, names)
	r.POST("/transform", h.Transform)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTransform_MissingParams(t *testing.T) {
	exporter := &fakeExporter{wrote: true}
	r := newTestTransformRouter(exporter, nil)

	for _, body := range []string{
		`{}`,
		`{"tickers":["AAPL"],"year":2024}`,
		`{"tickers":["AAPL"],"months":[10]}`,
		`{"year":2024,"months":[10]}`,
		`{"tickers":[],"year":2024,"months":[10]}`,
	} {
		w := postJSON(r, "/transform", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// No partial processing on client errors.
	assert.Equal(t, 0, len(exporter.calls))
}

func TestTransform_ExportsEveryTickerMonth(t *testing.T) {
	exporter := &fakeExporter{wrote: true}
	names := map[string]string{"AAPL": "Apple Inc"}
	r := newTestTransformRouter(exporter, names)

	w := postJSON(r, "/transform", `{"tickers":["AAPL","MSFT"],"year":2024,"months":[9,10]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, len(exporter.calls))
	assert.Equal(t, "Apple Inc", exporter.calls[0].name)
	assert.Equal(t, "MSFT", exporter.calls[2].name) // no mapping, falls back to ticker
	assert.Equal(t, 2024, exporter.calls[0].year)

	var res TransformResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 4, res.Exported)
	assert.Equal(t, 0, res.Skipped)
}

func TestTransform_EmptyMonthsSkipped(t *testing.T) {
	exporter := &fakeExporter{wrote: false}
	r := newTestTransformRouter(exporter, nil)

	w := postJSON(r, "/transform", `{"tickers":["AAPL"],"year":2024,"months":[11]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res TransformResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, res.Exported)
	assert.Equal(t, 1, res.Skipped)
}

func TestTransform_ExportError(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("bucket unavailable")}
	r := newTestTransformRouter(exporter, nil)

	w := postJSON(r, "/transform", `{"tickers":["AAPL"],"year":2024,"months":[10]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
