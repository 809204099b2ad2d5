package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mtc/internal/execution"
	"mtc/internal/storage"
)

// RunCommand handles the run command
type RunCommand struct {
	store    storage.Store
	executor execution.Executor
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(store storage.Store, executor execution.Executor) *RunCommand {
	return &RunCommand{store: store, executor: executor}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	doc, err := rc.store.Get(args[0])
	if err != nil {
		return err
	}

	if err := rc.executor.Execute(doc); err != nil {
		return fmt.Errorf("execute %s: %w", doc.TestCase.ID, err)
	}
	return nil
}
