package cmd

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mcp-matrix/internal/config"
	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// appConfig is loaded once per invocation by PersistentPreRunE.
	appConfig *config.Config
	logger    = logging.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mcpmatrix",
	Short: "Build the MCP compatibility matrix site",
	Long: `mcpmatrix loads the JSON descriptions of developer interfaces, AI
clients, MCP features and transports, and renders them as a static
reference site showing which client supports which part of the Model
Context Protocol inside which editor.

The same catalog can be previewed with live reload, exported to SQLite,
checked for data problems, or queried by an AI assistant over MCP.`,
	Example: `  # Scaffold a config file
  mcpmatrix init

  # Render the site into _site/
  mcpmatrix build

  # Preview with live reload
  mcpmatrix serve --watch --open`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json (default from config)")
}

// setup loads the config file and builds the logger. Flags win over the
// config's log section.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if !skipsConfig(cmd) {
			return apperrors.NewConfigError(err)
		}
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return apperrors.NewConfigError(err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	format := cfg.Log.Format
	if logFormat != "" {
		format = logFormat
	}
	switch strings.ToLower(format) {
	case "", string(logging.FormatText), string(logging.FormatJSON):
	default:
		return apperrors.NewUserError(
			errors.Newf("unknown log format %q", format),
			"Use --log-format text or --log-format json",
		)
	}

	logger = logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(strings.ToLower(format)),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	return nil
}

// skipsConfig reports whether cmd runs without a readable config file.
func skipsConfig(cmd *cobra.Command) bool {
	return cmd == initCmd || cmd == versionCmd
}
