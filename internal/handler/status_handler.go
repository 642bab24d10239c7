package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

type CatalogStore interface {
	RecentObjects(limit int) ([]model.StoredObject, error)
	CountBySource() ([]model.SourceCount, error)
}

type StatusHandler struct {
	catalog CatalogStore
}

func NewStatusHandler(catalog CatalogStore) *StatusHandler {
	return &StatusHandler{catalog: catalog}
}

func (h *StatusHandler) GetStatus(c *gin.Context) {
	objects, err := h.catalog.RecentObjects(50)
	if err != nil {
		slog.Error("error fetching recent objects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	counts, err := h.catalog.CountBySource()
	if err != nil {
		slog.Error("error fetching source counts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := StatusResponse{
		Recent:  make([]StoredObjectResponse, 0, len(objects)),
		Sources: make([]SourceCountResponse, 0, len(counts)),
	}

	for _, o := range objects {
		res.Recent = append(res.Recent, StoredObjectResponse{
			Source:     o.Source,
			Bucket:     o.Bucket,
			ObjectPath: o.ObjectPath,
			Kind:       o.Kind,
			WrittenAt:  o.WrittenAt.Format(time.RFC3339),
		})
	}

	for _, s := range counts {
		res.Sources = append(res.Sources, SourceCountResponse{
			Source: s.Source,
			Count:  s.Count,
		})
	}

	c.JSON(http.StatusOK, res)
}
