package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// CourseService handles the global course catalog.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Create adds a course to the catalog. Duplicate names surface as a
// pg 23505 which the handler maps to a conflict.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	return s.courseRepo.Create(ctx, course)
}

// Update renames a course. Zero rows affected means the course does not
// exist.
func (s *CourseService) Update(ctx context.Context, course *model.Course) error {
	affected, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a course. A course still referenced by students fails
// with a pg 23503 which the handler maps to a dependency conflict.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	affected, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
