package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mtc/internal/domain"
)

// EncodeReport renders suite entries as a pretty-printed JSON array.
// Characters such as & < > are written as-is.
func EncodeReport(entries []domain.SuiteEntry) (string, error) {
	if entries == nil {
		entries = []domain.SuiteEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("marshal suite report: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
