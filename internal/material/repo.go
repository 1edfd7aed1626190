package material

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"schoolportal/internal/store"
)

// Material is an uploaded learning resource, optionally backed by a file.
type Material struct {
	ID             int64     `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Description    *string   `db:"description" json:"description"`
	FilePath       *string   `db:"file_path" json:"file_path"`
	FileName       *string   `db:"file_name" json:"file_name"`
	Subject        *string   `db:"subject" json:"subject"`
	Class          *string   `db:"class" json:"class"`
	UploadedBy     int64     `db:"uploaded_by" json:"uploaded_by"`
	UploadedByName *string   `db:"uploaded_by_name" json:"uploaded_by_name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Repository persists materials.
type Repository struct {
	db *store.DB
}

// NewRepository creates a repo.
func NewRepository(db *store.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new material and returns its id.
func (r *Repository) Insert(ctx context.Context, m Material) (int64, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	q := r.db.Rebind(`
		INSERT INTO materials (title, description, file_path, file_name, subject, class, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	var id int64
	err := r.db.QueryRowxContext(ctx, q,
		m.Title, m.Description, m.FilePath, m.FileName, m.Subject, m.Class, m.UploadedBy, m.CreatedAt,
	).Scan(&id)
	return id, err
}

// List returns all materials, newest first, joined with the uploader name.
func (r *Repository) List(ctx context.Context) ([]Material, error) {
	q := `
		SELECT m.id, m.title, m.description, m.file_path, m.file_name, m.subject,
		       m.class, m.uploaded_by, u.name AS uploaded_by_name, m.created_at
		FROM materials m
		LEFT JOIN users u ON m.uploaded_by = u.id
		ORDER BY m.created_at DESC
	`
	var res []Material
	if err := r.db.SelectContext(ctx, &res, q); err != nil {
		return nil, err
	}
	return res, nil
}

// Get returns a single material, or nil when the row does not exist.
func (r *Repository) Get(ctx context.Context, id int64) (*Material, error) {
	q := r.db.Rebind(`
		SELECT id, title, description, file_path, file_name, subject, class, uploaded_by, created_at
		FROM materials WHERE id = ?
	`)
	var m Material
	if err := r.db.GetContext(ctx, &m, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Delete removes a material row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	q := r.db.Rebind(`DELETE FROM materials WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
