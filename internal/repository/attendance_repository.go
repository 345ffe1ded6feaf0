package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukita/studentbook-backend/internal/model"
)

// AttendanceRepository handles per-student attendance records. Callers
// are expected to have ownership-checked the student id already.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Upsert records presence for (studentID, date). The unique index on
// (student_id, date) plus ON CONFLICT makes the check-then-act atomic,
// so concurrent marks for the same day can never produce duplicate rows.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attendance_records (student_id, date, present)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (student_id, date) DO UPDATE SET present = EXCLUDED.present
		 RETURNING id, created_at`,
		rec.StudentID, rec.Date, rec.Present,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// List retrieves a student's attendance records newest date first,
// optionally restricted to an inclusive date range.
func (r *AttendanceRepository) List(ctx context.Context, studentID int, from, to string) ([]model.AttendanceRecord, error) {
	query := `SELECT id, student_id, to_char(date, 'YYYY-MM-DD'), present, created_at
		 FROM attendance_records WHERE student_id = $1`
	args := []interface{}{studentID}

	if from != "" {
		args = append(args, from)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if to != "" {
		args = append(args, to)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.Date, &rec.Present, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// AccountRow pairs an attendance record with its student's name, for
// account-wide exports.
type AccountRow struct {
	StudentID   int
	StudentName string
	Date        string
	Present     bool
}

// ListForAccount retrieves every attendance record across an account's
// students, ordered by student name then newest date first.
func (r *AttendanceRepository) ListForAccount(ctx context.Context, ownerID int) ([]AccountRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.student_id, s.name, to_char(a.date, 'YYYY-MM-DD'), a.present
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.owner_account_id = $1
		 ORDER BY s.name ASC, a.date DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AccountRow
	for rows.Next() {
		var ar AccountRow
		if err := rows.Scan(&ar.StudentID, &ar.StudentName, &ar.Date, &ar.Present); err != nil {
			return nil, err
		}
		result = append(result, ar)
	}
	return result, rows.Err()
}

// Counts returns the total and present record counts for a student.
func (r *AttendanceRepository) Counts(ctx context.Context, studentID int) (total, present int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE present)
		 FROM attendance_records WHERE student_id = $1`, studentID,
	).Scan(&total, &present)
	return
}
