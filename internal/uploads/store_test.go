package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func newStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "uploads"), maxBytes)
	require.NoError(t, err)
	return s
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s := newStore(t, 0)

	first, err := s.Save(fileHeader(t, "bab1.pdf", []byte("one")))
	require.NoError(t, err)
	second, err := s.Save(fileHeader(t, "bab1.pdf", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".pdf"))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	s := newStore(t, 0)
	_, err := s.Save(fileHeader(t, "virus.exe", []byte("nope")))
	assert.ErrorIs(t, err, ErrFileType)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	s := newStore(t, 4)
	_, err := s.Save(fileHeader(t, "big.pdf", []byte("more than four bytes")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestRemove(t *testing.T) {
	s := newStore(t, 0)
	stored, err := s.Save(fileHeader(t, "bab1.pdf", []byte("bytes")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(stored))
	_, statErr := os.Stat(stored)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveRejectsPathsOutsideStore(t *testing.T) {
	s := newStore(t, 0)
	err := s.Remove("/etc/passwd")
	assert.Error(t, err)

	err = s.Remove(filepath.Join(s.Dir(), "..", "escape.pdf"))
	assert.Error(t, err)
}
