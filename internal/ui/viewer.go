package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mtc/internal/domain"
)

// Viewer displays test cases in an interactive TUI
type Viewer interface {
	View(docs []domain.Document) error
}

// TestCaseViewer browses documents: list on the left, details on the right
type TestCaseViewer struct{}

// NewTestCaseViewer creates a new TestCaseViewer
func NewTestCaseViewer() *TestCaseViewer {
	return &TestCaseViewer{}
}

// View runs the browser until the user exits with Ctrl+C or q
func (v *TestCaseViewer) View(docs []domain.Document) error {
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, doc := range docs {
		list.AddItem(ListItemText(i, doc.TestCase), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test Cases (%d) | ↑↓ navigate, → view YAML, ← back, q or Ctrl+C exit ", len(docs)))

	showDetails := func(index int) {
		if index < 0 || index >= len(docs) {
			return
		}
		statsView.SetText(StatsText(docs[index]))
		detailsView.SetText(tview.Escape(docs[index].Raw)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		showDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	showDetails(0)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// ListItemText formats one list row using tview color tags
func ListItemText(index int, tc *domain.TestCase) string {
	return fmt.Sprintf("[yellow]%d.[white] %s %s", index+1, tview.Escape(tc.ID), tview.Escape(tc.Name))
}

// StatsText formats the header shown above the selected document
func StatsText(doc domain.Document) string {
	tc := doc.TestCase
	var b strings.Builder
	fmt.Fprintf(&b, "[cyan]file:[white] [yellow]%s[white]\n", tview.Escape(doc.FileName))
	fmt.Fprintf(&b, "[cyan]platform:[white] %s  [cyan]priority:[white] %s  [cyan]steps:[white] %d",
		tview.Escape(tc.Platform), tview.Escape(tc.Priority), len(tc.Steps))
	if len(tc.Tags) > 0 {
		fmt.Fprintf(&b, "  [cyan]tags:[white] %s", tview.Escape(strings.Join(tc.Tags, ", ")))
	}
	return b.String()
}
