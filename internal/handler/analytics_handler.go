package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
)

// AnalyticsHandler serves the account dashboard aggregates.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	log              zerolog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		log:              log.With().Str("component", "analytics_handler").Logger(),
	}
}

// AccountStats godoc
// GET /api/v1/analytics/stats
func (h *AnalyticsHandler) AccountStats(c *gin.Context) {
	stats, err := h.analyticsService.AccountStats(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		failInternal(c, h.log, err, "Failed to compute account stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// AttendanceTrend godoc
// GET /api/v1/analytics/attendance-trend?days=<n>
func (h *AnalyticsHandler) AttendanceTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	points, err := h.analyticsService.AttendanceTrend(c.Request.Context(), middleware.AccountID(c), days)
	if err != nil {
		failInternal(c, h.log, err, "Failed to compute attendance trend")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trend": points})
}

// TopPerformers godoc
// GET /api/v1/analytics/top-performers?limit=<n>
func (h *AnalyticsHandler) TopPerformers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	performers, err := h.analyticsService.TopPerformers(c.Request.Context(), middleware.AccountID(c), limit)
	if err != nil {
		failInternal(c, h.log, err, "Failed to compute top performers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"performers": performers})
}

// SubjectPerformance godoc
// GET /api/v1/analytics/subjects
func (h *AnalyticsHandler) SubjectPerformance(c *gin.Context) {
	subjects, err := h.analyticsService.SubjectPerformance(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		failInternal(c, h.log, err, "Failed to compute subject performance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}
