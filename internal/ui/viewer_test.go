package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mtc/internal/domain"
)

func TestListItemText(t *testing.T) {
	tc := &domain.TestCase{ID: "t1", Name: "Tap [OK]"}
	assert.Equal(t, "[yellow]1.[white] t1 Tap [OK[]", ListItemText(0, tc))
}

func TestStatsText(t *testing.T) {
	doc := sampleDoc()
	text := StatsText(doc)

	assert.Contains(t, text, "login.yaml")
	assert.Contains(t, text, "[cyan]steps:[white] 1")
	assert.Contains(t, text, "auth, smoke")

	doc.TestCase.Tags = nil
	assert.NotContains(t, StatsText(doc), "tags:")
}
