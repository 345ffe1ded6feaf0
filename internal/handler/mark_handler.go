package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
	"github.com/edukita/studentbook-backend/internal/validator"
)

// MarkHandler handles the per-student marks ledger.
type MarkHandler struct {
	markService *service.MarkService
	log         zerolog.Logger
}

// NewMarkHandler creates a new MarkHandler.
func NewMarkHandler(markService *service.MarkService, log zerolog.Logger) *MarkHandler {
	return &MarkHandler{
		markService: markService,
		log:         log.With().Str("component", "mark_handler").Logger(),
	}
}

// AddMark godoc
// POST /api/v1/students/:id/marks
func (h *MarkHandler) AddMark(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddMarkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry, err := h.markService.Add(c.Request.Context(), middleware.AccountID(c), studentID, req.Subject, *req.Score)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to add mark")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"entry": entry})
}

// ListMarks godoc
// GET /api/v1/students/:id/marks?subject=<subject>
func (h *MarkHandler) ListMarks(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	entries, err := h.markService.List(c.Request.Context(), middleware.AccountID(c), studentID, c.Query("subject"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to list marks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

// MarksSummary godoc
// GET /api/v1/students/:id/marks/summary
func (h *MarkHandler) MarksSummary(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	summary, err := h.markService.SummarizeBySubject(c.Request.Context(), middleware.AccountID(c), studentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to summarize marks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
