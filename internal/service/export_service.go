package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/edukita/studentbook-backend/internal/export"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// ExportService renders directory and ledger data as CSV files. It
// reads through the same owner-scoped repositories as everything else.
type ExportService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
}

// NewExportService creates a new ExportService.
func NewExportService(studentRepo *repository.StudentRepository, attendanceRepo *repository.AttendanceRepository) *ExportService {
	return &ExportService{studentRepo: studentRepo, attendanceRepo: attendanceRepo}
}

// StudentsCSV renders the account's student directory. The returned
// filename is students_<date>.csv.
func (s *ExportService) StudentsCSV(ctx context.Context, ownerID int) (data []byte, filename string, err error) {
	students, err := s.studentRepo.List(ctx, ownerID, model.StudentFilter{})
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{strconv.Itoa(st.ID), st.Name, st.CourseName})
	}

	data, err = export.CSV([]string{"ID", "Name", "Course"}, rows)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("students_%s.csv", today()), nil
}

// AttendanceCSV renders every attendance record across the account's
// students. The returned filename is attendance_<date>.csv.
func (s *ExportService) AttendanceCSV(ctx context.Context, ownerID int) (data []byte, filename string, err error) {
	records, err := s.attendanceRepo.ListForAccount(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		status := "Absent"
		if rec.Present {
			status = "Present"
		}
		rows = append(rows, []string{strconv.Itoa(rec.StudentID), rec.StudentName, rec.Date, status})
	}

	data, err = export.CSV([]string{"Student ID", "Student Name", "Date", "Status"}, rows)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("attendance_%s.csv", today()), nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
