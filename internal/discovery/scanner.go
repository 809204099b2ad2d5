package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"mtc/internal/domain"
)

// Scanner scans a flat directory for test case documents
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the paths of documents directly inside dir, sorted by filename.
// A missing directory yields no paths and wraps domain.ErrNotFound so callers can
// decide whether absence is an error.
func (s *Scanner) Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NotFoundError("directory", dir)
		}
		return nil, domain.IOError("read directory", dir, err)
	}

	var names []string
	for _, entry := range entries {
		// Sub-directories are never descended into
		if entry.IsDir() {
			continue
		}
		if domain.HasDocumentExtension(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
