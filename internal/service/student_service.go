package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// StudentService handles the owner-scoped student directory.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// List retrieves an account's students, optionally filtered by name
// substring and course.
func (s *StudentService) List(ctx context.Context, ownerID int, filter model.StudentFilter) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// Get retrieves one of the account's students. A student owned by a
// different account returns ErrNotFound, same as a nonexistent id.
func (s *StudentService) Get(ctx context.Context, id, ownerID int) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

// Create adds a student under the owner's account. A dangling course id
// surfaces as a pg 23503 which the handler maps to a validation error.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies a student's name and course. Zero rows affected means
// the student does not exist for this owner.
func (s *StudentService) Update(ctx context.Context, student *model.Student) (*model.Student, error) {
	affected, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, student.ID, student.OwnerAccountID)
}

// Delete removes a student together with all their attendance and mark
// rows in one transaction.
func (s *StudentService) Delete(ctx context.Context, id, ownerID int) error {
	affected, err := s.studentRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
