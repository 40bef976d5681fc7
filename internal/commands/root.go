package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/budget-tools/bankstatement/internal/buildinfo"
	"github.com/budget-tools/bankstatement/internal/config"
	"github.com/budget-tools/bankstatement/internal/importer"
	"github.com/budget-tools/bankstatement/internal/normalize"
	"github.com/budget-tools/bankstatement/internal/summary"
)

// app is the state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *log.Logger
	registry *importer.Registry
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "bankstatement",
		Short:   "Convert bank statements to CSV, JSON or XLSX",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a bankstatement.yaml file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// setup loads configuration and builds the logger and parser registry.
// Logs go to the command's error stream; standard output may carry data.
func (a *app) setup(cmd *cobra.Command) error {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:  level,
		Prefix: "bankstatement",
	})

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger.Debug("loaded config", "path", a.configPath)
	}

	n, err := normalize.New(a.cfg.Rules())
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := summary.CheckCurrency(a.cfg.Output.Currency); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.registry = importer.NewRegistryWith(n, a.logger)
	return nil
}
