package storage

import (
	"mtc/internal/discovery"
	"mtc/internal/domain"
	"mtc/internal/parser"
)

// Store manages test case documents on disk. Every call reads the filesystem
// fresh; nothing is cached between calls.
type Store interface {
	// Save validates content and writes it verbatim, returning the path written.
	Save(dir, filename, content string) (string, error)
	// List returns the valid documents in dir, optionally narrowed to one platform.
	List(dir string, opts ListOptions) ([]domain.Document, error)
	// Get reads and validates a single document.
	Get(path string) (*domain.Document, error)
	// Delete removes the file at path without validating it.
	Delete(path string) error
	// Suite resolves ids against dir in the order given.
	Suite(dir string, ids []string, onResolve func(id string, found bool)) ([]domain.SuiteEntry, error)
}

// ListOptions narrows a List call
type ListOptions struct {
	Platform    string // Case-insensitive platform match
	NamePattern string // Filename pattern, see discovery.Filter.FilterByName
}

// FileStore stores each test case as one YAML file in a flat directory
type FileStore struct {
	scanner *discovery.Scanner
	filter  *discovery.Filter
	loader  *discovery.Loader
	parser  parser.Parser
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a Store backed by the local filesystem
func NewFileStore(scanner *discovery.Scanner, filter *discovery.Filter, p parser.Parser) *FileStore {
	return &FileStore{
		scanner: scanner,
		filter:  filter,
		loader:  discovery.NewLoader(p),
		parser:  p,
	}
}
