package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/pkg/notify"
)

// FeedbackCounter reads and adjusts the incorrect-response counter,
// returning the current value.
type FeedbackCounter interface {
	Increment(delta int64) (int64, error)
	Current() (int64, error)
}

type FeedbackHandler struct {
	counter   FeedbackCounter
	notifier  notify.Notifier
	threshold int64
}

func NewFeedbackHandler(counter FeedbackCounter, notifier notify.Notifier, threshold int64) *FeedbackHandler {
	return &FeedbackHandler{counter: counter, notifier: notifier, threshold: threshold}
}

// Increment applies user feedback to the counter. Crossing the retrain
// threshold on the way up fires the notifier, fire-and-forget.
func (h *FeedbackHandler) Increment(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	count, err := h.counter.Increment(req.IncrementBy)
	if err != nil {
		slog.Error("error updating feedback counter", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update counter"})
		return
	}

	if req.IncrementBy > 0 && count > h.threshold && h.notifier != nil {
		if err := h.notifier.Notify(notify.RetrainMessage); err != nil {
			slog.Error("error sending retrain notification", "error", err)
		}
	}

	c.JSON(http.StatusOK, FeedbackResponse{Counter: count})
}

// GetCounter reports the current incorrect-response count without
// changing it.
func (h *FeedbackHandler) GetCounter(c *gin.Context) {
	count, err := h.counter.Current()
	if err != nil {
		slog.Error("error reading feedback counter", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read counter"})
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{Counter: count})
}
