package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes validated uploads to the upload directory
type Store struct {
	dir string
}

// NewStore creates an upload store rooted at dir, creating it if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are stored in
func (s *Store) Dir() string {
	return s.dir
}

// SaveFile writes the upload to disk under a collision-free name and returns
// the stored filename. The name embeds category and kind so operators can
// identify files on disk, plus a UUID so repeated uploads never clash.
func (s *Store) SaveFile(header *multipart.FileHeader, category, kind string) (string, error) {
	name := storedName(header.Filename, category, kind)

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored file by name. A missing file is not an error; the
// settings document is the source of truth, not the directory listing.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// storedName builds "<category>_<kind>_<uuid><ext>" from a client filename,
// keeping only the extension from the original name.
func storedName(original, category, kind string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return fmt.Sprintf("%s_%s_%s%s", sanitize(category), sanitize(kind), uuid.New().String(), ext)
}

// sanitize strips path separators and whitespace from a name component
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ':
			return '-'
		}
		return r
	}, s)
	return s
}
