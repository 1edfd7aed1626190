package material

import (
	"context"
	"errors"
	"log"

	"schoolportal/internal/uploads"
)

var (
	// ErrTitleRequired means the create request had no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrNotFound means the material does not exist.
	ErrNotFound = errors.New("material not found")
)

// CreateInput carries the fields of a material upload. FilePath and FileName
// are nil when no file was attached.
type CreateInput struct {
	Title       string
	Description string
	Subject     string
	Class       string
	FilePath    *string
	FileName    *string
	UploadedBy  int64
}

// Service coordinates material rows and their backing files.
type Service struct {
	repo  *Repository
	files *uploads.Store
}

// NewService creates a service backed by a repository and a file store.
func NewService(repo *Repository, files *uploads.Store) *Service {
	return &Service{repo: repo, files: files}
}

// Create validates and stores a material record.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	if in.Title == "" {
		return 0, ErrTitleRequired
	}
	m := Material{
		Title:       in.Title,
		Description: optional(in.Description),
		Subject:     optional(in.Subject),
		Class:       optional(in.Class),
		FilePath:    in.FilePath,
		FileName:    in.FileName,
		UploadedBy:  in.UploadedBy,
	}
	return s.repo.Insert(ctx, m)
}

// List returns all materials, newest first.
func (s *Service) List(ctx context.Context) ([]Material, error) {
	return s.repo.List(ctx)
}

// Delete removes the row and, when present, the backing file. A missing file
// is logged and ignored: the row going away is what callers depend on.
func (s *Service) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	if m.FilePath != nil {
		if err := s.files.Remove(*m.FilePath); err != nil {
			log.Printf("deleting material file %s: %v", *m.FilePath, err)
		}
	}
	return s.repo.Delete(ctx, m.ID)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
