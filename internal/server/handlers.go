package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sairam-sr8/Product-Review-Analyzer/internal/analyzer"
	"github.com/sairam-sr8/Product-Review-Analyzer/internal/models"
)

// Handler carries the analyzer service into the gin handlers.
type Handler struct {
	service *analyzer.Service
	dataset *models.DatasetStats
}

func NewHandler(service *analyzer.Service, dataset *models.DatasetStats) *Handler {
	return &Handler{service: service, dataset: dataset}
}

// AnalyzeReview handles POST /api/analyze.
func (h *Handler) AnalyzeReview(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review_text is required"})
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), req.ReviewText)
	if err != nil {
		var validationErr *analyzer.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
			return
		}
		slog.Error("[Server] Analysis failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DatasetStats handles GET /api/dataset/stats.
func (h *Handler) DatasetStats(c *gin.Context) {
	if h.dataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reference dataset not loaded"})
		return
	}
	c.JSON(http.StatusOK, h.dataset)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"model_available": !h.service.Degraded(),
	})
}
