package cmd

import (
	"github.com/spf13/cobra"

	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/mcp"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Loads the catalog once and answers compatibility questions over the
Model Context Protocol on stdin/stdout. Logs go to stderr.

Tools: list_features, list_combinations, get_support, get_evidence,
get_changelog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		state, report := loadState(cmd.Context(), cfg, progress.Discard{})
		if err := requireData(cfg, report); err != nil {
			return err
		}

		logger.Info("mcp server starting", "features", len(state.Features), "transports", len(state.Transports))
		mcp.Version = Version
		if err := mcp.NewServer(state).Serve(); err != nil {
			return apperrors.NewSystemError(err, "")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
