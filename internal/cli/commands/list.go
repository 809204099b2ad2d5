package commands

import (
	"github.com/spf13/cobra"

	"mtc/internal/config"
	"mtc/internal/storage"
	"mtc/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	store     storage.Store
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, store storage.Store, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	docs, err := lc.store.List(lc.config.GetDir(), storage.ListOptions{
		Platform:    lc.config.Flags.Platform,
		NamePattern: lc.config.Flags.NameFilter,
	})
	if err != nil {
		return err
	}

	lc.formatter.PrintTestCaseList(docs)
	return nil
}
