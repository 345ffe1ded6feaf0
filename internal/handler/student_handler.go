package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
	"github.com/edukita/studentbook-backend/internal/validator"
)

// StudentHandler handles the owner-scoped student directory.
type StudentHandler struct {
	studentService *service.StudentService
	log            zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// ListStudents godoc
// GET /api/v1/students?q=<name>&course_id=<id>
func (h *StudentHandler) ListStudents(c *gin.Context) {
	ownerID := middleware.AccountID(c)

	filter := model.StudentFilter{Name: c.Query("q")}
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.CourseID = &courseID
	}

	students, err := h.studentService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		failInternal(c, h.log, err, "Failed to list students")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetStudent godoc
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id, middleware.AccountID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to get student")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// CreateStudent godoc
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		Name:           req.Name,
		CourseID:       req.CourseID,
		OwnerAccountID: middleware.AccountID(c),
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Unknown course id is user-correctable input, not a storage fault.
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"course_id": "course does not exist"})
			return
		}
		failInternal(c, h.log, err, "Failed to create student")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := &model.Student{
		ID:             id,
		Name:           req.Name,
		CourseID:       req.CourseID,
		OwnerAccountID: middleware.AccountID(c),
	}

	updated, err := h.studentService.Update(c.Request.Context(), student)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"course_id": "course does not exist"})
			return
		}
		failInternal(c, h.log, err, "Failed to update student")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": updated})
}

// DeleteStudent godoc
// DELETE /api/v1/students/:id
// Removes the student with all their attendance and mark rows.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id, middleware.AccountID(c)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failInternal(c, h.log, err, "Failed to delete student")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
