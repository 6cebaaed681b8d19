package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/licensescan/pkg/buildinfo"
	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for config paths and display.
const appName = "licensescan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config     *viper.Viper
	configFile string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: newConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Licensescan reports the licenses of a repository's Python dependencies",
		Long: `Licensescan reads the dependency manifest of a GitHub repository, looks up
every listed package on PyPI and groups the packages by whether their
license allows free commercial use.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(c.config, c.configFile); err != nil {
				return err
			}
			c.SetLogLevel(c.loadConfig().logLevel(c.verbose))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ./licensescan.yaml)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig snapshots the merged configuration.
func (c *CLI) loadConfig() Config {
	return loadConfig(c.config)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner from the current configuration.
func (c *CLI) newRunner(cfg Config) *pipeline.Runner {
	return pipeline.NewRunner(cfg.pipelineOptions(), c.Logger)
}

// =============================================================================
// Exit Codes
// =============================================================================

// ExitCode maps a command error to a process exit status: 2 for bad input,
// 3 for upstream failures, 1 otherwise.
func ExitCode(err error) int {
	switch lserrors.GetCode(err) {
	case lserrors.ErrCodeInvalidInput, lserrors.ErrCodeInvalidLocator, lserrors.ErrCodeInvalidPackage:
		return 2
	case lserrors.ErrCodeManifestFetch, lserrors.ErrCodeNetwork, lserrors.ErrCodeRateLimited:
		return 3
	default:
		return 1
	}
}
