package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/loader"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
)

var lintStrict bool

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the data files for problems",
	Long: `Loads the catalog and reports problems the site renders around
silently: documents that failed to load, references to unknown interfaces
or clients, feature keys that are not declared combinations, dangling
note references, support values outside the grammar, documents whose
"id" differs from the id the config lists them under, and JSON files in
a local data directory that the config does not list.

Findings never stop a build. With --strict, any warning makes lint exit
non-zero.`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "exit non-zero when there are warnings")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state, report := loadState(cmd.Context(), cfg, progress.Discard{})

	var findings []matrix.Finding
	for _, f := range report.Failures {
		findings = append(findings, matrix.Finding{
			Severity: matrix.SeverityWarning,
			Resource: f.Resource.Path,
			Message:  fmt.Sprintf("not loaded: %v", f.Err),
		})
	}
	for _, m := range report.Mismatches {
		findings = append(findings, matrix.Finding{
			Severity: matrix.SeverityWarning,
			Resource: m.Resource.Path,
			Message:  fmt.Sprintf("declares id %q but is listed as %q", m.DeclaredID, m.Resource.ID),
		})
	}
	findings = append(findings, matrix.Lint(state)...)

	if !cfg.IsRemote() {
		manifest := loader.ManifestFromConfig(cfg.Resources)
		orphans, err := loader.FindOrphans(os.DirFS(cfg.DataSource), manifest)
		if err != nil {
			logger.Warn("orphan scan skipped", "error", err)
		}
		for _, p := range orphans {
			findings = append(findings, matrix.Finding{
				Severity: matrix.SeverityWarning,
				Resource: p,
				Message:  "file is not listed in the config resources",
			})
		}
	}

	warnings := writeFindings(cmd.OutOrStdout(), findings)
	if lintStrict && warnings > 0 {
		return apperrors.NewUserError(
			errors.Wrapf(apperrors.ErrLintFailed, "%d warning(s)", warnings),
			"Fix the data files above or run without --strict",
		)
	}
	return nil
}

// writeFindings prints findings and a summary line, and returns the number
// of warnings among them.
func writeFindings(w io.Writer, findings []matrix.Finding) int {
	warnLabel := color.New(color.FgYellow, color.Bold).SprintFunc()
	infoLabel := color.New(color.FgCyan).SprintFunc()

	warnings := 0
	for _, f := range findings {
		label := infoLabel(string(f.Severity))
		if f.Severity == matrix.SeverityWarning {
			warnings++
			label = warnLabel(string(f.Severity))
		}
		fmt.Fprintf(w, "%s %s: %s\n", label, f.Resource, f.Message)
	}

	if len(findings) == 0 {
		fmt.Fprintln(w, color.GreenString("No problems found."))
		return 0
	}
	fmt.Fprintf(w, "\n%d warning(s), %d info\n", warnings, len(findings)-warnings)
	return warnings
}
