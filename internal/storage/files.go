package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"mtc/internal/domain"
)

// Save writes content to dir/filename after validating it. The directory is
// created when missing and an existing file is overwritten.
func (s *FileStore) Save(dir, filename, content string) (string, error) {
	if _, err := s.parser.Parse(content); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", domain.IOError("create directory", dir, err)
	}

	path := filepath.Join(dir, documentName(filename))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", domain.IOError("write test case", path, err)
	}
	return path, nil
}

// documentName appends the default extension unless filename already has a recognized one
func documentName(filename string) string {
	if domain.HasDocumentExtension(filename) {
		return filename
	}
	return filename + domain.DefaultExtension
}

// List returns valid documents in dir sorted by filename. A missing directory
// is an empty result; unreadable or invalid documents are skipped.
func (s *FileStore) List(dir string, opts ListOptions) ([]domain.Document, error) {
	paths, err := s.scanner.Scan(dir)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	paths = s.filter.FilterByName(paths, opts.NamePattern)
	docs := s.loader.LoadAll(paths)
	return s.filter.FilterByPlatform(docs, opts.Platform), nil
}

// Get reads and validates the document at path
func (s *FileStore) Get(path string) (*domain.Document, error) {
	res := s.loader.LoadOne(path)
	if res.Err != nil {
		var perr *domain.ParseError
		var verr *domain.ValidationError
		if errors.As(res.Err, &perr) || errors.As(res.Err, &verr) {
			return nil, res.Err
		}
		// Any read failure is reported as a missing file
		return nil, domain.NotFoundError("file", path)
	}
	return &res.Doc, nil
}

// Delete removes the file at path
func (s *FileStore) Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NotFoundError("file", path)
		}
		return domain.IOError("stat", path, err)
	}
	if info.IsDir() {
		return domain.IOError("delete", path, errors.New("is a directory"))
	}
	if err := os.Remove(path); err != nil {
		return domain.IOError("delete", path, err)
	}
	return nil
}
