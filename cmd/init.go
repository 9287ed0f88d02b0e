package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mcp-matrix/internal/config"
	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with an interactive wizard",
	Long: `Asks for the data source, output directory and title, optionally
discovers the resource lists from a local data directory, and writes the
config file (default .mcpmatrix.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return apperrors.NewUserError(
				errors.Newf("%s already exists", cfgFile),
				"Use --force to overwrite it",
			)
		}
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return apperrors.NewUserError(err, "")
		}
		logger.Debug("config written", "path", cfgFile, "source", cfg.DataSource)
		fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
