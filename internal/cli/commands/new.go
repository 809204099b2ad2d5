package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mtc/internal/config"
	"mtc/internal/domain"
	"mtc/internal/parser"
)

// ScaffoldCommand handles the new command
type ScaffoldCommand struct {
	config *config.Config
	parser parser.Parser
	out    io.Writer
	now    func() time.Time
}

// NewScaffoldCommand creates a new ScaffoldCommand
func NewScaffoldCommand(cfg *config.Config, p parser.Parser, out io.Writer) *ScaffoldCommand {
	return &ScaffoldCommand{
		config: cfg,
		parser: p,
		out:    out,
		now:    time.Now,
	}
}

// Execute runs the command
func (nc *ScaffoldCommand) Execute(cmd *cobra.Command, args []string) error {
	id := "tc-" + uuid.NewString()[:8]
	if len(args) > 0 {
		id = args[0]
	}

	tc := nc.skeleton(id)
	data, err := yaml.Marshal(tc)
	if err != nil {
		return fmt.Errorf("marshal skeleton: %w", err)
	}

	// The skeleton must be accepted by save as-is
	if _, err := nc.parser.Parse(string(data)); err != nil {
		return err
	}

	_, err = nc.out.Write(data)
	return err
}

func (nc *ScaffoldCommand) skeleton(id string) *domain.TestCase {
	flags := nc.config.Flags
	return &domain.TestCase{
		ID:          id,
		Name:        orDefault(flags.NewName, "New test case"),
		Platform:    orDefault(flags.NewPlatform, "android"),
		Priority:    orDefault(flags.NewPriority, "medium"),
		Tags:        []string{},
		Author:      orDefault(flags.NewAuthor, os.Getenv("USER")),
		CreatedAt:   nc.now().Format(time.DateOnly),
		Description: "Describe what this test case verifies",
		Steps: []domain.Step{
			{Action: "Describe the first action", Expected: "Describe the expected result"},
		},
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
