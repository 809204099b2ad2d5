package execution

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"mtc/internal/domain"
)

// DisplayExecutor prints what would be executed instead of driving a device
type DisplayExecutor struct {
	out io.Writer
}

// NewDisplayExecutor creates a DisplayExecutor writing to out
func NewDisplayExecutor(out io.Writer) *DisplayExecutor {
	return &DisplayExecutor{out: out}
}

// Execute prints a run header followed by the raw document
func (e *DisplayExecutor) Execute(doc *domain.Document) error {
	tc := doc.TestCase
	color.New(color.FgCyan, color.Bold).Fprintf(e.out, "Execute test case: %s - %s\n", tc.ID, tc.Name)
	fmt.Fprintf(e.out, "Platform: %s\n", tc.Platform)
	fmt.Fprintf(e.out, "Steps: %d\n\n", len(tc.Steps))
	_, err := io.WriteString(e.out, doc.Raw)
	return err
}
