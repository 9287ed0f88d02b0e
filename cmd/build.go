package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
	"github.com/ziadkadry99/mcp-matrix/internal/site"
)

var (
	buildData   string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the compatibility site",
	Long: `Loads every data document named in the config and writes the static
site (index.html, style.css, script.js, details.json, data.json) to the
output directory. Documents that cannot be fetched or decoded are skipped
with a warning; the matching columns and rows are simply absent.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildData, "data", "", "data directory or http(s) base URL (overrides data_source)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if buildData != "" {
		cfg.DataSource = buildData
	}
	if buildOutput != "" {
		cfg.OutputDir = buildOutput
	}

	state, report := loadState(cmd.Context(), cfg, progress.NewReporter("Loading data"))
	if report.Loaded == 0 {
		logger.Warn("no documents loaded; the site will only show placeholders", "source", cfg.DataSource)
	}

	gen := site.Generator{
		State:     state,
		OutputDir: cfg.OutputDir,
		Title:     cfg.Title,
		BaseURL:   cfg.BaseURL,
		Logger:    logger,
	}
	stats, err := gen.Generate()
	if err != nil {
		return apperrors.NewSystemError(err, "Check that "+cfg.OutputDir+" is writable")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Site written to %s\n", cfg.OutputDir)
	fmt.Fprintf(out, "  %d combinations, %d features, %d transports, %d changelog entries\n",
		stats.Combinations, stats.Features, stats.Transports, stats.ChangelogEntries)
	if n := len(report.Failures); n > 0 {
		fmt.Fprintf(out, "  %d of %d documents skipped (run with -v for details)\n", n, report.Total)
	}
	return nil
}
