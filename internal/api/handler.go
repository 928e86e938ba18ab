package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astralhq/github-wrapped/internal/collector"
	apperrors "github.com/astralhq/github-wrapped/internal/errors"
	"github.com/astralhq/github-wrapped/internal/journey"
	"github.com/astralhq/github-wrapped/internal/stats"
)

// Handler handles API requests
type Handler struct {
	collector collector.Collector

	journeyDuration float64
	journeyDistance float64
	journeyStages   []journey.StageParams
}

// NewHandler creates a new API handler. The collector is nil when no GitHub
// credential is configured; the wrapped endpoint reports that as a
// per-request configuration error. A nil stage table selects the built-in
// defaults.
func NewHandler(col collector.Collector, journeyDuration, journeyDistance float64, stages []journey.StageParams) *Handler {
	return &Handler{
		collector:       col,
		journeyDuration: journeyDuration,
		journeyDistance: journeyDistance,
		journeyStages:   stages,
	}
}

// GetWrapped returns the normalized wrapped profile document
// GET /api/wrapped?username=<string> (alias query key "user")
func (h *Handler) GetWrapped(c *gin.Context) {
	if h.collector == nil {
		respondError(c, apperrors.NewConfigurationError(
			"no GitHub access token configured; set GITHUB_TOKEN and restart"))
		return
	}

	username := c.Query("username")
	if username == "" {
		username = c.Query("user")
	}
	if username == "" {
		respondError(c, apperrors.NewBadRequestError("username query parameter is required"))
		return
	}

	snapshot, err := h.collector.FetchProfile(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	activity := h.collector.FetchActivityStats(c.Request.Context(), username, snapshot.Repositories.Nodes)
	snapshot.ActivityStats = &activity

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"viewer": snapshot,
		},
	})
}

// GetSummary returns the derived summary statistics for a user
// GET /api/wrapped/summary?username=<string>
func (h *Handler) GetSummary(c *gin.Context) {
	if h.collector == nil {
		respondError(c, apperrors.NewConfigurationError(
			"no GitHub access token configured; set GITHUB_TOKEN and restart"))
		return
	}

	username := c.Query("username")
	if username == "" {
		username = c.Query("user")
	}
	if username == "" {
		respondError(c, apperrors.NewBadRequestError("username query parameter is required"))
		return
	}

	snapshot, err := h.collector.FetchProfile(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	activity := h.collector.FetchActivityStats(c.Request.Context(), username, snapshot.Repositories.Nodes)
	snapshot.ActivityStats = &activity

	c.JSON(http.StatusOK, gin.H{
		"data": stats.BuildSummary(snapshot),
	})
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondError sends an error response in the wrapped error shape:
// {"error": <code>, "message"|"details": <text>}
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case apperrors.ErrCodeConfiguration:
			status = http.StatusUnauthorized
		case apperrors.ErrCodeBadRequest:
			status = http.StatusBadRequest
		case apperrors.ErrCodeUpstream:
			status = http.StatusInternalServerError
		}

		body := gin.H{
			"error":   string(appErr.Code),
			"message": appErr.Message,
		}
		if appErr.Err != nil {
			body["details"] = appErr.Err.Error()
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   string(apperrors.ErrCodeInternal),
		"message": err.Error(),
	})
}
