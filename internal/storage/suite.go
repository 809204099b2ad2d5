package storage

import (
	"mtc/internal/domain"
)

// Suite returns one entry per requested id that matches a valid document in
// dir, in the order the ids were given. When several files share an id the
// first one in filename order wins. Unmatched ids are left out. onResolve,
// when set, is called once per requested id.
func (s *FileStore) Suite(dir string, ids []string, onResolve func(id string, found bool)) ([]domain.SuiteEntry, error) {
	paths, err := s.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}
	docs := s.loader.LoadAll(paths)

	var entries []domain.SuiteEntry
	for _, id := range ids {
		doc, ok := firstWithID(docs, id)
		if ok {
			entries = append(entries, domain.SuiteEntry{
				ID:      doc.TestCase.ID,
				Name:    doc.FileName,
				Content: doc.Raw,
			})
		}
		if onResolve != nil {
			onResolve(id, ok)
		}
	}
	return entries, nil
}

func firstWithID(docs []domain.Document, id string) (domain.Document, bool) {
	for _, doc := range docs {
		if doc.TestCase.ID == id {
			return doc, true
		}
	}
	return domain.Document{}, false
}
