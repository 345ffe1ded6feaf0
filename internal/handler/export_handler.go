package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/service"
)

// ExportHandler serves CSV downloads of directory and ledger data.
type ExportHandler struct {
	exportService *service.ExportService
	log           zerolog.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		log:           log.With().Str("component", "export_handler").Logger(),
	}
}

// ExportStudents godoc
// GET /api/v1/export/students.csv
func (h *ExportHandler) ExportStudents(c *gin.Context) {
	data, filename, err := h.exportService.StudentsCSV(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		failInternal(c, h.log, err, "Failed to export students")
		return
	}

	serveCSV(c, filename, data)
}

// ExportAttendance godoc
// GET /api/v1/export/attendance.csv
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	data, filename, err := h.exportService.AttendanceCSV(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		failInternal(c, h.log, err, "Failed to export attendance")
		return
	}

	serveCSV(c, filename, data)
}

func serveCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
