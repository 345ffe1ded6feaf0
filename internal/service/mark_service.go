package service

import (
	"context"

	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// MarkService handles the append-only per-student marks ledger. Like
// attendance, every operation resolves the student through the
// owner-scoped directory first.
type MarkService struct {
	markRepo *repository.MarkRepository
	students *StudentService
}

// NewMarkService creates a new MarkService.
func NewMarkService(markRepo *repository.MarkRepository, students *StudentService) *MarkService {
	return &MarkService{markRepo: markRepo, students: students}
}

// Add appends one assessment score. Repeated subjects are separate
// assessments, never overwrites.
func (s *MarkService) Add(ctx context.Context, ownerID, studentID int, subject string, score int) (*model.MarkEntry, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	entry := &model.MarkEntry{StudentID: studentID, Subject: subject, Score: score}
	if err := s.markRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves a student's mark entries grouped by subject, newest
// entry first within each subject.
func (s *MarkService) List(ctx context.Context, ownerID, studentID int, subject string) ([]model.MarkEntry, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	entries, err := s.markRepo.List(ctx, studentID, subject)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.MarkEntry{}
	}
	return entries, nil
}

// SummarizeBySubject aggregates a student's marks per subject. Averages
// are rounded to one decimal; subjects without entries do not appear.
func (s *MarkService) SummarizeBySubject(ctx context.Context, ownerID, studentID int) (map[string]model.SubjectSummary, error) {
	if _, err := s.students.Get(ctx, studentID, ownerID); err != nil {
		return nil, err
	}

	aggs, err := s.markRepo.SummarizeBySubject(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]model.SubjectSummary, len(aggs))
	for _, a := range aggs {
		summary[a.Subject] = model.SubjectSummary{
			Average: round1(a.Average),
			Highest: a.Highest,
			Lowest:  a.Lowest,
			Count:   a.Count,
		}
	}
	return summary, nil
}
