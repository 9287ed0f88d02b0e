package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mcp-matrix/internal/db"
	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
)

var exportDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a SQLite database",
	Long: `Loads the catalog and writes it to a SQLite database, replacing any
previous export in the same file. The support table holds one row per
feature and combination, so coverage questions are a single query:

  SELECT combo_key, code FROM support WHERE feature_id = 'sampling';`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "mcpmatrix.db", "SQLite database file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state, report := loadState(cmd.Context(), cfg, progress.NewReporter("Loading data"))
	if err := requireData(cfg, report); err != nil {
		return err
	}

	database, err := db.Open(exportDB)
	if err != nil {
		return apperrors.NewSystemError(err, "Check that "+exportDB+" is writable")
	}
	defer database.Close()

	stats, err := database.ExportState(cmd.Context(), state)
	if err != nil {
		return apperrors.NewSystemError(err, "")
	}

	logger.Debug("export finished", "path", database.Path(), "support_rows", stats.Support)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s: %d interfaces, %d clients, %d features, %d combinations, %d support rows, %d changelog entries\n",
		database.Path(), stats.IDEs, stats.Clients, stats.Features, stats.Combinations, stats.Support, stats.Changelog)
	return nil
}
