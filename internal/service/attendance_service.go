package service

import (
	"context"

	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// AttendanceService handles the per-student attendance ledger. Every
// operation resolves the student through the owner-scoped directory
// first, so a foreign student id behaves like a missing one.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	students       *StudentService
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo *repository.AttendanceRepository, students *StudentService) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, students: students}
}

// Mark upserts the presence flag for (student, date).
func (s *AttendanceService) Mark(ctx context.Context, ownerID, studentID int, date string, present bool) (*model.AttendanceRecord, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	rec := &model.AttendanceRecord{StudentID: studentID, Date: date, Present: present}
	if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List retrieves a student's attendance records newest date first,
// optionally restricted to [from, to].
func (s *AttendanceService) List(ctx context.Context, ownerID, studentID int, from, to string) ([]model.AttendanceRecord, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	return records, nil
}

// Summarize aggregates a student's attendance records. Percentage is
// present/total*100 rounded to one decimal, zero when there are no
// records.
func (s *AttendanceService) Summarize(ctx context.Context, ownerID, studentID int) (*model.AttendanceSummary, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	total, present, err := s.attendanceRepo.Counts(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &model.AttendanceSummary{
		Total:      total,
		Present:    present,
		Absent:     total - present,
		Percentage: percentage(present, total),
	}, nil
}
