package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukita/studentbook-backend/internal/model"
)

// MarkRepository handles per-student mark entries. The ledger is
// append-only; entries are never updated in place.
type MarkRepository struct {
	pool *pgxpool.Pool
}

// NewMarkRepository creates a new MarkRepository.
func NewMarkRepository(pool *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{pool: pool}
}

// Create appends a new mark entry.
func (r *MarkRepository) Create(ctx context.Context, m *model.MarkEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO mark_entries (student_id, subject, score)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.StudentID, m.Subject, m.Score,
	).Scan(&m.ID, &m.CreatedAt)
}

// List retrieves a student's mark entries grouped by subject, newest
// entry first within each subject. An empty subject returns all.
func (r *MarkRepository) List(ctx context.Context, studentID int, subject string) ([]model.MarkEntry, error) {
	query := `SELECT id, student_id, subject, score, created_at
		 FROM mark_entries WHERE student_id = $1`
	args := []interface{}{studentID}

	if subject != "" {
		args = append(args, subject)
		query += ` AND subject = $2`
	}
	query += ` ORDER BY subject ASC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.MarkEntry
	for rows.Next() {
		var m model.MarkEntry
		if err := rows.Scan(&m.ID, &m.StudentID, &m.Subject, &m.Score, &m.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, rows.Err()
}

// SubjectAggregate is the raw per-subject rollup used by SummarizeBySubject.
type SubjectAggregate struct {
	Subject string
	Average float64
	Highest int
	Lowest  int
	Count   int
}

// SummarizeBySubject aggregates a student's marks per subject. Subjects
// without entries simply do not appear.
func (r *MarkRepository) SummarizeBySubject(ctx context.Context, studentID int) ([]SubjectAggregate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT subject, AVG(score), MAX(score), MIN(score), COUNT(*)
		 FROM mark_entries WHERE student_id = $1
		 GROUP BY subject ORDER BY subject`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggs []SubjectAggregate
	for rows.Next() {
		var a SubjectAggregate
		if err := rows.Scan(&a.Subject, &a.Average, &a.Highest, &a.Lowest, &a.Count); err != nil {
			return nil, err
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}
