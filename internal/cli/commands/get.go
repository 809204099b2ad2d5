package commands

import (
	"github.com/spf13/cobra"

	"mtc/internal/storage"
	"mtc/internal/ui"
)

// GetCommand handles the get command
type GetCommand struct {
	store     storage.Store
	formatter *ui.Formatter
}

// NewGetCommand creates a new GetCommand
func NewGetCommand(store storage.Store, formatter *ui.Formatter) *GetCommand {
	return &GetCommand{store: store, formatter: formatter}
}

// Execute runs the command
func (gc *GetCommand) Execute(cmd *cobra.Command, args []string) error {
	doc, err := gc.store.Get(args[0])
	if err != nil {
		return err
	}

	gc.formatter.PrintTestCase(doc)
	return nil
}
