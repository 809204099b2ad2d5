package discovery

import (
	"log/slog"
	"os"
	"path/filepath"

	"mtc/internal/domain"
	"mtc/internal/logging"
	"mtc/internal/parser"
)

// LoadResult is the outcome of loading one document during a bulk scan
type LoadResult struct {
	Path string
	Doc  domain.Document
	Err  error
}

// Loader reads and parses documents found by a Scanner
type Loader struct {
	parser parser.Parser
}

// NewLoader creates a new Loader
func NewLoader(p parser.Parser) *Loader {
	return &Loader{parser: p}
}

// LoadOne reads and parses a single document
func (l *Loader) LoadOne(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{Path: path, Err: err}
	}

	content := string(data)
	tc, err := l.parser.Parse(content)
	if err != nil {
		return LoadResult{Path: path, Err: err}
	}

	return LoadResult{
		Path: path,
		Doc: domain.Document{
			Path:     path,
			FileName: filepath.Base(path),
			Raw:      content,
			TestCase: tc,
		},
	}
}

// LoadAll loads every path in order and keeps only the documents that loaded.
// Failed entries are logged at debug level and dropped.
func (l *Loader) LoadAll(paths []string) []domain.Document {
	log := logging.New("discovery")
	docs := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		res := l.LoadOne(path)
		if res.Err != nil {
			log.Debug("skipping test case", slog.String("path", res.Path), slog.Any("error", res.Err))
			continue
		}
		docs = append(docs, res.Doc)
	}
	return docs
}
