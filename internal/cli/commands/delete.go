package commands

import (
	"github.com/spf13/cobra"

	"mtc/internal/storage"
	"mtc/internal/ui"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	store     storage.Store
	formatter *ui.Formatter
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(store storage.Store, formatter *ui.Formatter) *DeleteCommand {
	return &DeleteCommand{store: store, formatter: formatter}
}

// Execute runs the command
func (dc *DeleteCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := dc.store.Delete(args[0]); err != nil {
		return err
	}

	dc.formatter.PrintDeleted(args[0])
	return nil
}
