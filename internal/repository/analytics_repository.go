package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukita/studentbook-backend/internal/model"
)

// AnalyticsRepository composes directory and ledger queries into
// account-level aggregates. All queries are owner-scoped.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// CountStudents returns the number of students owned by the account.
func (r *AnalyticsRepository) CountStudents(ctx context.Context, ownerID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE owner_account_id = $1`, ownerID,
	).Scan(&n)
	return n, err
}

// CountByCourse returns student counts keyed by course name.
func (r *AnalyticsRepository) CountByCourse(ctx context.Context, ownerID int) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT COALESCE(c.name, ''), COUNT(*)
		 FROM students s
		 LEFT JOIN courses c ON c.id = s.course_id
		 WHERE s.owner_account_id = $1
		 GROUP BY c.name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, rows.Err()
}

// AttendanceCounts returns total and present record counts across all
// of an account's students, restricted to the trailing windowDays.
func (r *AnalyticsRepository) AttendanceCounts(ctx context.Context, ownerID, windowDays int) (total, present int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE a.present)
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.owner_account_id = $1
		   AND a.date >= CURRENT_DATE - $2::int`, ownerID, windowDays,
	).Scan(&total, &present)
	return
}

// AttendanceTrend returns per-day totals over the trailing windowDays,
// oldest date first. Days with no records do not appear.
func (r *AnalyticsRepository) AttendanceTrend(ctx context.Context, ownerID, windowDays int) ([]model.TrendPoint, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT to_char(a.date, 'YYYY-MM-DD'), COUNT(*), COUNT(*) FILTER (WHERE a.present)
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE s.owner_account_id = $1
		   AND a.date >= CURRENT_DATE - $2::int
		 GROUP BY a.date
		 ORDER BY a.date ASC`, ownerID, windowDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		if err := rows.Scan(&p.Date, &p.Total, &p.Present); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// TopPerformers ranks an account's students by average score across all
// subjects. Students with no mark entries are excluded by the inner
// join; ties break on student id so the order is stable.
func (r *AnalyticsRepository) TopPerformers(ctx context.Context, ownerID, limit int) ([]model.PerformerRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.name, COALESCE(c.name, ''), AVG(m.score)
		 FROM students s
		 JOIN mark_entries m ON m.student_id = s.id
		 LEFT JOIN courses c ON c.id = s.course_id
		 WHERE s.owner_account_id = $1
		 GROUP BY s.id, s.name, c.name
		 ORDER BY AVG(m.score) DESC, s.id ASC
		 LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performers []model.PerformerRow
	for rows.Next() {
		var p model.PerformerRow
		if err := rows.Scan(&p.StudentName, &p.CourseName, &p.AverageScore); err != nil {
			return nil, err
		}
		performers = append(performers, p)
	}
	return performers, rows.Err()
}

// SubjectPerformance aggregates marks per subject across all of an
// account's students, best average first.
func (r *AnalyticsRepository) SubjectPerformance(ctx context.Context, ownerID int) ([]model.SubjectRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.subject, AVG(m.score), COUNT(*)
		 FROM mark_entries m
		 JOIN students s ON s.id = m.student_id
		 WHERE s.owner_account_id = $1
		 GROUP BY m.subject
		 ORDER BY AVG(m.score) DESC, m.subject ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.SubjectRow
	for rows.Next() {
		var sr model.SubjectRow
		if err := rows.Scan(&sr.Subject, &sr.AverageScore, &sr.EntryCount); err != nil {
			return nil, err
		}
		subjects = append(subjects, sr)
	}
	return subjects, rows.Err()
}
