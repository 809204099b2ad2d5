package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mtc/internal/domain"
)

// Formatter formats and displays command output. Data goes to out, counts and
// notices that are not part of the data go to errOut.
type Formatter struct {
	out    io.Writer
	errOut io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out, errOut io.Writer) *Formatter {
	return &Formatter{out: out, errOut: errOut}
}

// ErrOut returns the notice writer
func (f *Formatter) ErrOut() io.Writer {
	return f.errOut
}

// PrintSaved confirms a saved document
func (f *Formatter) PrintSaved(path string) {
	color.New(color.FgGreen).Fprintf(f.out, "Saved: %s\n", path)
}

// PrintDeleted confirms a deleted document
func (f *Formatter) PrintDeleted(path string) {
	color.New(color.FgGreen).Fprintf(f.out, "Deleted: %s\n", path)
}

// PrintTestCaseList prints one summary line per document and the total
func (f *Formatter) PrintTestCaseList(docs []domain.Document) {
	if len(docs) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No test cases found.")
		return
	}

	for _, doc := range docs {
		fmt.Fprintln(f.out, SummaryLine(doc.TestCase))
	}
	color.New(color.FgCyan).Fprintf(f.errOut, "Total: %d test case(s)\n", len(docs))
}

// SummaryLine renders the one-line listing form of a test case
func SummaryLine(tc *domain.TestCase) string {
	return fmt.Sprintf("  %s | %s | %s | %s | [%s]",
		tc.ID, tc.Name, tc.Platform, tc.Priority, strings.Join(tc.Tags, ", "))
}

// PrintTestCase prints metadata followed by the raw document
func (f *Formatter) PrintTestCase(doc *domain.Document) {
	heading := color.New(color.FgCyan, color.Bold)
	tc := doc.TestCase

	heading.Fprintln(f.out, "--- Metadata ---")
	fmt.Fprintf(f.out, "ID: %s\n", tc.ID)
	fmt.Fprintf(f.out, "Name: %s\n", tc.Name)
	fmt.Fprintf(f.out, "Platform: %s\n", tc.Platform)
	fmt.Fprintf(f.out, "Priority: %s\n", tc.Priority)
	fmt.Fprintf(f.out, "Steps: %d\n", len(tc.Steps))
	fmt.Fprintln(f.out)
	heading.Fprintln(f.out, "--- YAML ---")
	io.WriteString(f.out, doc.Raw)
}

// PrintSuite prints the suite header and the JSON report.
// reportPath is only announced, the report is not written there.
func (f *Formatter) PrintSuite(count int, reportPath, report string) {
	header := color.New(color.FgGreen)
	if reportPath != "" {
		header.Fprintf(f.out, "Suite loaded (%d test cases). Report will be saved to: %s\n", count, reportPath)
	} else {
		header.Fprintf(f.out, "Suite loaded (%d test cases):\n", count)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, report)
}

// PrintNoSuiteMatches reports that none of ids matched
func (f *Formatter) PrintNoSuiteMatches(ids []string) {
	color.New(color.FgYellow).Fprintf(f.out, "No test cases matched IDs: %s\n", strings.Join(ids, ", "))
}
