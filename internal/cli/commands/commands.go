package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mtc/internal/cli"
	"mtc/internal/config"
	"mtc/internal/discovery"
	"mtc/internal/execution"
	"mtc/internal/logging"
	"mtc/internal/parser"
	"mtc/internal/storage"
	"mtc/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Save     *SaveCommand
	List     *ListCommand
	Get      *GetCommand
	Delete   *DeleteCommand
	Run      *RunCommand
	RunSuite *RunSuiteCommand
	Scaffold *ScaffoldCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, in io.Reader, out, errOut io.Writer) *Commands {
	yamlParser := parser.NewYAMLParser()
	store := storage.NewFileStore(discovery.NewScanner(), discovery.NewFilter(), yamlParser)
	formatter := ui.NewFormatter(out, errOut)
	executor := execution.NewDisplayExecutor(out)

	return &Commands{
		Save:     NewSaveCommand(cfg, store, formatter, in),
		List:     NewListCommand(cfg, store, formatter),
		Get:      NewGetCommand(store, formatter),
		Delete:   NewDeleteCommand(store, formatter),
		Run:      NewRunCommand(store, executor),
		RunSuite: NewRunSuiteCommand(cfg, store, formatter),
		Scaffold: NewScaffoldCommand(cfg, yamlParser, out),
		Browse:   NewBrowseCommand(cfg, store, formatter, ui.NewTestCaseViewer()),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log skipped documents and other debug detail")
	rootCmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if err := cfg.Load(); err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.GetLogLevel())
		if err != nil {
			return err
		}
		logging.Init(level, cfg.GetLogFormat(), cmd.ErrOrStderr())
		return nil
	}
	rootCmd.SilenceUsage = true

	saveCmd := &cobra.Command{
		Use:   "save <filename>",
		Short: "Validate and save a test case",
		Long:  "Validate a YAML test case read from --from (or stdin) and write it verbatim into the test case directory",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Save.Execute,
	}
	saveCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Test case directory")
	saveCmd.Flags().StringVar(&flags.From, "from", "-", "File to read the test case from, - for stdin")
	rootCmd.AddCommand(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test cases",
		Long:  "List valid test cases in the test case directory, sorted by filename",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Test case directory")
	listCmd.Flags().StringVarP(&flags.Platform, "platform", "p", "", "Only show test cases for this platform (case-insensitive)")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g. 'login-*' or '*smoke*')")
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "get <path>",
		Short: "Show a test case",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Get.Execute,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a test case file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Delete.Execute,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run <path>",
		Short: "Run a single test case",
		Long:  "Validate a test case and hand it to the automation layer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Run.Execute,
	})

	suiteCmd := &cobra.Command{
		Use:   "run-suite <id>...",
		Short: "Assemble test cases by id into a suite report",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.RunSuite.Execute,
	}
	suiteCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Test case directory")
	suiteCmd.Flags().StringVarP(&flags.ReportPath, "report", "r", "", "Where the suite report should be saved")
	rootCmd.AddCommand(suiteCmd)

	newCmd := &cobra.Command{
		Use:   "new [id]",
		Short: "Print a test case skeleton",
		Long:  "Print a valid YAML test case skeleton to use as a starting point for save",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Scaffold.Execute,
	}
	newCmd.Flags().StringVar(&flags.NewName, "name", "", "Test case name")
	newCmd.Flags().StringVar(&flags.NewPlatform, "platform", "", "Target platform")
	newCmd.Flags().StringVar(&flags.NewPriority, "priority", "", "Priority: critical, high, medium or low")
	newCmd.Flags().StringVar(&flags.NewAuthor, "author", "", "Author")
	rootCmd.AddCommand(newCmd)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse test cases interactively",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Test case directory")
	browseCmd.Flags().StringVarP(&flags.Platform, "platform", "p", "", "Only show test cases for this platform (case-insensitive)")
	rootCmd.AddCommand(browseCmd)
}

// readAll reads the document source for save
func readAll(in io.Reader, name string) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
