package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mtc/internal/cli"
	"mtc/internal/cli/commands"
	"mtc/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "mtc",
		Short:   "Mobile test case manager",
		Long:    `Create, validate, list and assemble mobile app test cases stored as YAML files in a directory.`,
		Version: version,
	}
	rootCmd.SilenceErrors = true

	// Create initial config with defaults
	cfg := config.New()

	// Flags are populated by cobra and copied into cfg before each command runs
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, os.Stdin, os.Stdout, os.Stderr)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
