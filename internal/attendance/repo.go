package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"schoolportal/internal/store"
)

// Record is one attendance entry: one per student per calendar day.
type Record struct {
	ID          int64     `db:"id" json:"id"`
	StudentID   int64     `db:"student_id" json:"student_id"`
	StudentName *string   `db:"student_name" json:"student_name,omitempty"`
	Class       *string   `db:"class" json:"class,omitempty"`
	Date        string    `db:"date" json:"date"`
	Status      string    `db:"status" json:"status"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Repository persists attendance records.
type Repository struct {
	db *store.DB
}

// NewRepository creates a repo.
func NewRepository(db *store.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new record. The unique index on (student_id, date) makes
// duplicate same-day submissions fail atomically; that failure is surfaced
// as ErrAlreadyMarked.
func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	q := r.db.Rebind(`
		INSERT INTO attendance (student_id, date, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRowxContext(ctx, q, rec.StudentID, rec.Date, rec.Status, rec.Notes, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return Record{}, ErrAlreadyMarked
		}
		return Record{}, err
	}
	return rec, nil
}

// GetForDate returns the record for a student on a given day, or nil.
func (r *Repository) GetForDate(ctx context.Context, studentID int64, date string) (*Record, error) {
	q := r.db.Rebind(`
		SELECT id, student_id, date, status, notes, created_at
		FROM attendance
		WHERE student_id = ? AND date = ?
	`)
	var rec Record
	if err := r.db.GetContext(ctx, &rec, q, studentID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ListByStudent returns a student's own records, newest date first.
func (r *Repository) ListByStudent(ctx context.Context, studentID int64) ([]Record, error) {
	q := r.db.Rebind(`
		SELECT a.id, a.student_id, u.name AS student_name, a.date, a.status, a.notes, a.created_at
		FROM attendance a
		LEFT JOIN users u ON a.student_id = u.id
		WHERE a.student_id = ?
		ORDER BY a.date DESC
	`)
	var res []Record
	if err := r.db.SelectContext(ctx, &res, q, studentID); err != nil {
		return nil, err
	}
	return res, nil
}

// ListAll returns every record joined with student name and class, newest
// date first then by name.
func (r *Repository) ListAll(ctx context.Context) ([]Record, error) {
	q := `
		SELECT a.id, a.student_id, u.name AS student_name, u.class, a.date, a.status, a.notes, a.created_at
		FROM attendance a
		LEFT JOIN users u ON a.student_id = u.id
		ORDER BY a.date DESC, u.name
	`
	var res []Record
	if err := r.db.SelectContext(ctx, &res, q); err != nil {
		return nil, err
	}
	return res, nil
}
