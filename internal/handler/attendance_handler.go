package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
	"github.com/edukita/studentbook-backend/internal/validator"
)

// AttendanceHandler handles the per-student attendance ledger.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	log               zerolog.Logger
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService, log zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		log:               log.With().Str("component", "attendance_handler").Logger(),
	}
}

// MarkAttendance godoc
// POST /api/v1/students/:id/attendance
// Upserts the presence flag for (student, date).
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rec, err := h.attendanceService.Mark(c.Request.Context(), middleware.AccountID(c), studentID, req.Date, *req.Present)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to mark attendance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": rec})
}

// ListAttendance godoc
// GET /api/v1/students/:id/attendance?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if fields := validateDateRange(from, to); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	records, err := h.attendanceService.List(c.Request.Context(), middleware.AccountID(c), studentID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to list attendance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// AttendanceSummary godoc
// GET /api/v1/students/:id/attendance/summary
func (h *AttendanceHandler) AttendanceSummary(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	summary, err := h.attendanceService.Summarize(c.Request.Context(), middleware.AccountID(c), studentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to summarize attendance")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

// validateDateRange checks the optional from/to query params against
// the ledger's calendar-date format. Returns nil when both are fine.
func validateDateRange(from, to string) map[string]string {
	fields := map[string]string{}
	if from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			fields["from"] = "must be a date in YYYY-MM-DD format"
		}
	}
	if to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			fields["to"] = "must be a date in YYYY-MM-DD format"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
