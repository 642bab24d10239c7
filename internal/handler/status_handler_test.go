package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

type fakeCatalog struct {
	objects []model.StoredObject
	counts  []model.SourceCount
	err     error
}

func (f *fakeCatalog) RecentObjects(limit int) ([]model.StoredObject, error) {
	return f.objects, f.err
}

func (f *fakeCatalog) CountBySource() ([]model.SourceCount, error) {
	return f.counts, f.err
}

func newTestStatusRouter(catalog CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStatusHandler(catalog)
	r.GET("/status", h.GetStatus)
	return r
}

func TestGetStatus(t *testing.T) {
	catalog := &fakeCatalog{
		objects: []model.StoredObject{
			{
				Source:     "AAPL",
				Bucket:     "news-articles",
				ObjectPath: "AAPL/2024/Month=10/Day=01/Hour=14/Minute=30/AAPL_05.json",
				Kind:       model.KindNews,
				WrittenAt:  time.Date(2024, time.October, 1, 14, 30, 5, 0, time.UTC),
			},
		},
		counts: []model.SourceCount{
			{Source: "AAPL", Count: 12},
			{Source: "MSFT", Count: 9},
		},
	}

	r := newTestStatusRouter(catalog)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StatusResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, len(res.Recent))
	assert.Equal(t, "AAPL", res.Recent[0].Source)
	assert.Equal(t, "2024-10-01T14:30:05Z", res.Recent[0].WrittenAt)

	assert.Equal(t, 2, len(res.Sources))
	assert.Equal(t, 12, res.Sources[0].Count)
}

func TestGetStatus_DBError(t *testing.T) {
	r := newTestStatusRouter(&fakeCatalog{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
