package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrFileType means the extension is not on the allowlist.
	ErrFileType = errors.New("file type not allowed")
	// ErrFileTooLarge means the upload exceeds the size cap.
	ErrFileTooLarge = errors.New("file too large")
)

var allowedExt = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
	".mp4": true, ".avi": true, ".mov": true,
}

// Store writes uploaded files to a local directory under server-generated
// unique names. Stored paths are relative (e.g. "uploads/<uuid>.pdf") so they
// can be served back under the same prefix.
type Store struct {
	dir      string
	maxBytes int64
}

// New ensures the upload directory exists.
func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates and writes a multipart file, returning the stored path.
// The original filename is kept only as metadata; the on-disk name is unique.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", ErrFileType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	stored := path.Join(s.dir, uuid.NewString()+ext)
	dst, err := os.Create(stored)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(stored)
		return "", fmt.Errorf("write file: %w", err)
	}
	return stored, nil
}

// Remove deletes a stored file. Paths outside the store directory are
// rejected so a corrupted DB row cannot unlink arbitrary files.
func (s *Store) Remove(storedPath string) error {
	clean := path.Clean(storedPath)
	if !strings.HasPrefix(clean, s.dir+"/") {
		return fmt.Errorf("path %q not under upload dir", storedPath)
	}
	return os.Remove(clean)
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string { return s.dir }
