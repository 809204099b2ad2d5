package commands

import (
	"github.com/spf13/cobra"

	"mtc/internal/config"
	"mtc/internal/storage"
	"mtc/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config    *config.Config
	store     storage.Store
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, store storage.Store, formatter *ui.Formatter, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	docs, err := bc.store.List(bc.config.GetDir(), storage.ListOptions{Platform: bc.config.Flags.Platform})
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		bc.formatter.PrintTestCaseList(nil)
		return nil
	}

	return bc.viewer.View(docs)
}
