package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mtc/internal/config"
	"mtc/internal/domain"
	"mtc/internal/storage"
	"mtc/internal/ui"
)

// SaveCommand handles the save command
type SaveCommand struct {
	config    *config.Config
	store     storage.Store
	formatter *ui.Formatter
	stdin     io.Reader
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(cfg *config.Config, store storage.Store, formatter *ui.Formatter, stdin io.Reader) *SaveCommand {
	return &SaveCommand{
		config:    cfg,
		store:     store,
		formatter: formatter,
		stdin:     stdin,
	}
}

// Execute runs the command
func (sc *SaveCommand) Execute(cmd *cobra.Command, args []string) error {
	content, err := sc.readContent(sc.config.Flags.From)
	if err != nil {
		return err
	}

	path, err := sc.store.Save(sc.config.GetDir(), args[0], content)
	if err != nil {
		return err
	}

	sc.formatter.PrintSaved(path)
	return nil
}

func (sc *SaveCommand) readContent(from string) (string, error) {
	if from == "" || from == "-" {
		return readAll(sc.stdin, "stdin")
	}

	data, err := os.ReadFile(from)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NotFoundError("file", from)
		}
		return "", fmt.Errorf("read %s: %w", from, err)
	}
	return string(data), nil
}
