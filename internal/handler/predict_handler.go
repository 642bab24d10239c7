package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuestionAnswerer runs retrieval-augmented generation for one question.
type QuestionAnswerer interface {
	Answer(question string) (string, error)
}

type PredictHandler struct {
	engine QuestionAnswerer
}

func NewPredictHandler(engine QuestionAnswerer) *PredictHandler {
	return &PredictHandler{engine: engine}
}

func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: 'query'"})
		return
	}

	answer, err := h.engine.Answer(req.Query)
	if err != nil {
		slog.Error("error during prediction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An error occurred during prediction.",
			"details": err.Error(),
		})
		return
	}

	slog.Info("prediction successful")
	c.JSON(http.StatusOK, PredictResponse{Answer: answer})
}

func (h *PredictHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
