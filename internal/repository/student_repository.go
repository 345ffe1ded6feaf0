package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukita/studentbook-backend/internal/model"
)

// StudentRepository handles student data access. Every query is scoped
// to the owning account: ownership is a filtering predicate inside the
// SQL, never a separate authorization check, so a foreign student looks
// exactly like a missing one.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `s.id, s.name, s.course_id, COALESCE(c.name, ''), s.owner_account_id, s.created_at, s.updated_at`

// GetByID retrieves a student by ID, restricted to the owner's account.
func (r *StudentRepository) GetByID(ctx context.Context, id, ownerID int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s
		 LEFT JOIN courses c ON c.id = s.course_id
		 WHERE s.id = $1 AND s.owner_account_id = $2`, id, ownerID,
	).Scan(&s.ID, &s.Name, &s.CourseID, &s.CourseName, &s.OwnerAccountID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves an account's students enriched with course names,
// optionally filtered, ordered by name ascending.
func (r *StudentRepository) List(ctx context.Context, ownerID int, filter model.StudentFilter) ([]model.Student, error) {
	query := `SELECT ` + studentColumns + `
		 FROM students s
		 LEFT JOIN courses c ON c.id = s.course_id
		 WHERE s.owner_account_id = $1`
	args := []interface{}{ownerID}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += ` AND s.name ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		query += ` AND s.course_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY s.name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.CourseID, &s.CourseName, &s.OwnerAccountID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student under the owner's account.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (name, course_id, owner_account_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.CourseID, s.OwnerAccountID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a student's name and course, restricted to the
// owner's account. Returns the number of rows affected; zero means the
// student does not exist for this owner.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, course_id = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3 AND owner_account_id = $4`,
		s.Name, s.CourseID, s.ID, s.OwnerAccountID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes a student and all their attendance and mark rows in a
// single transaction. Partial deletes are never observable: if the
// student row turns out not to exist for this owner the whole
// transaction rolls back. Returns the number of student rows deleted.
func (r *StudentRepository) Delete(ctx context.Context, id, ownerID int) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Ledger rows first; the WHERE EXISTS keeps the cascade scoped to
	// the owner so a non-owner cannot purge another account's ledgers.
	if _, err := tx.Exec(ctx,
		`DELETE FROM attendance_records
		 WHERE student_id = $1
		   AND EXISTS (SELECT 1 FROM students WHERE id = $1 AND owner_account_id = $2)`,
		id, ownerID,
	); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM mark_entries
		 WHERE student_id = $1
		   AND EXISTS (SELECT 1 FROM students WHERE id = $1 AND owner_account_id = $2)`,
		id, ownerID,
	); err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM students WHERE id = $1 AND owner_account_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		// Nothing to delete; roll back via the deferred Rollback.
		return 0, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
