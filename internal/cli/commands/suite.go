package commands

import (
	"github.com/spf13/cobra"

	"mtc/internal/config"
	"mtc/internal/storage"
	"mtc/internal/ui"
)

// RunSuiteCommand handles the run-suite command
type RunSuiteCommand struct {
	config    *config.Config
	store     storage.Store
	formatter *ui.Formatter
}

// NewRunSuiteCommand creates a new RunSuiteCommand
func NewRunSuiteCommand(cfg *config.Config, store storage.Store, formatter *ui.Formatter) *RunSuiteCommand {
	return &RunSuiteCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunSuiteCommand) Execute(cmd *cobra.Command, args []string) error {
	progressBar := ui.NewProgressBar(len(args), rc.formatter.ErrOut())
	entries, err := rc.store.Suite(rc.config.GetDir(), args, progressBar.Resolve)
	if err != nil {
		return err
	}
	progressBar.Finish()

	if len(entries) == 0 {
		rc.formatter.PrintNoSuiteMatches(args)
		return nil
	}

	report, err := storage.EncodeReport(entries)
	if err != nil {
		return err
	}

	rc.formatter.PrintSuite(len(entries), rc.config.Flags.ReportPath, report)
	return nil
}
