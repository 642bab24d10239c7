package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MonthExporter aggregates one ticker-month of columnar data and writes
// its text summary, reporting whether anything was written.
type MonthExporter interface {
	ExportMonth(ctx context.Context, ticker, companyName string, year, month int) (bool, error)
}

type TransformHandler struct {
	exporter     MonthExporter
	companyNames map[string]string
}

func NewTransformHandler(exporter MonthExporter, companyNames map[string]string) *TransformHandler {
	return &TransformHandler{exporter: exporter, companyNames: companyNames}
}

// Transform is the aggregation entry point: it projects the requested
// ticker-months into text summary objects. Missing parameters are a
// client error with no partial processing.
func (h *TransformHandler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Tickers) == 0 || req.Year == 0 || len(req.Months) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: 'tickers', 'year', 'months'",
		})
		return
	}

	var exported, skipped int
	for _, ticker := range req.Tickers {
		name := h.companyNames[ticker]
		if name == "" {
			name = ticker
		}

		for _, month := range req.Months {
			wrote, err := h.exporter.ExportMonth(c.Request.Context(), ticker, name, req.Year, month)
			if err != nil {
				slog.Error("error processing transform request", "ticker", ticker, "year", req.Year, "month", month, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Error processing request",
					"details": err.Error(),
				})
				return
			}

			if !wrote {
				slog.Info("no data found for month", "ticker", ticker, "year", req.Year, "month", month)
				skipped++
				continue
			}
			exported++
		}
	}

	c.JSON(http.StatusOK, TransformResponse{
		Message:  "Processing complete. Check the transformed bucket for results.",
		Exported: exported,
		Skipped:  skipped,
	})
}
