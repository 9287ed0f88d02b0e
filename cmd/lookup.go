package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
)

var (
	lookupJSON bool
	lookupKind string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [feature] [ide+client]",
	Short: "Show the support detail of one matrix cell",
	Long: `Prints what the evidence overlay would show for one feature and one
interface + client combination: the support value, any note, the
evidence text and the source link.

Without arguments the feature and the combination are picked
interactively.`,
	Example: `  mcpmatrix lookup tools vscode+copilot
  mcpmatrix lookup --json sampling cursor+native
  mcpmatrix lookup --kind transport stdio zed+native`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return apperrors.NewUserError(
				errors.Newf("expected 0 or 2 arguments, got %d", len(args)),
				"Usage: mcpmatrix lookup <feature> <ide+client>",
			)
		}
		return nil
	},
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the detail as JSON")
	lookupCmd.Flags().StringVar(&lookupKind, "kind", "", "feature or transport, for an id used by both")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	kind, ok := catalog.ParseKind(lookupKind)
	if !ok {
		return apperrors.NewUserError(
			errors.Newf("unknown kind %q", lookupKind),
			"Use --kind feature or --kind transport",
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reporter := progress.Reporter(progress.Discard{})
	if len(args) == 0 {
		reporter = progress.NewReporter("Loading data")
	}
	state, report := loadState(cmd.Context(), cfg, reporter)
	if err := requireData(cfg, report); err != nil {
		return err
	}

	var featureID string
	var key catalog.ComboKey
	if len(args) == 2 {
		featureID = args[0]
		key, err = catalog.ParseComboKey(args[1])
		if err != nil {
			return apperrors.NewUserError(err, "Combinations are written as <ide>+<client>, for example vscode+copilot")
		}
	} else {
		kind, featureID, key, err = pickCell(state)
		if err != nil {
			return err
		}
	}

	d, ok := matrix.LookupKindDetail(state, kind, featureID, key)
	if !ok {
		return apperrors.NewUserError(
			errors.Wrapf(apperrors.ErrUnknownFeature, "%q", featureID),
			"List the loaded features with: mcpmatrix lookup",
		)
	}

	if lookupJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	writeDetail(cmd.OutOrStdout(), d, isDeclared(state, key))
	return nil
}

// isDeclared reports whether key is one of the state's combinations.
func isDeclared(state *catalog.State, key catalog.ComboKey) bool {
	for _, c := range matrix.BuildCombinations(state) {
		if c.Key == key {
			return true
		}
	}
	return false
}

func writeDetail(w io.Writer, d matrix.Detail, declared bool) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	style := matrix.SupportStyle(d.Support.Code)

	fmt.Fprintf(w, "%s\n", bold(d.FeatureTitle))
	fmt.Fprintf(w, "%s %s\n", d.Label, faint("("+d.ComboKey.String()+")"))
	if !declared {
		fmt.Fprintln(w, color.YellowString("Not a declared combination."))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Support:  %s %s\n", style.Glyph, style.Label)
	if d.Note != "" {
		fmt.Fprintf(w, "  Note:     %s\n", d.Note)
	}
	fmt.Fprintf(w, "  Evidence: %s\n", d.EvidenceText())
	if d.HasSource() {
		fmt.Fprintf(w, "  Source:   %s\n", d.SourceURL)
	} else {
		fmt.Fprintf(w, "  Source:   %s\n", faint(matrix.NoSource))
	}
}

// pickCell asks for a feature and then a combination.
func pickCell(state *catalog.State) (catalog.Kind, string, catalog.ComboKey, error) {
	var features []*catalog.Feature
	features = append(features, state.Features...)
	features = append(features, state.Transports...)
	if len(features) == 0 {
		return "", "", catalog.ComboKey{}, apperrors.NewUserError(apperrors.ErrNoData, "No features or transports were loaded")
	}
	combos := matrix.BuildCombinations(state)
	if len(combos) == 0 {
		return "", "", catalog.ComboKey{}, apperrors.NewUserError(apperrors.ErrNoData, "No interface + client combinations were loaded")
	}

	featureItems := make([]string, len(features))
	for i, f := range features {
		featureItems[i] = fmt.Sprintf("%s (%s)", f.DisplayTitle(), f.ID)
	}
	featurePrompt := promptui.Select{
		Label:             "Feature",
		Items:             featureItems,
		Size:              12,
		StartInSearchMode: len(featureItems) > 12,
		Searcher:          containsSearcher(featureItems),
	}
	fi, _, err := featurePrompt.Run()
	if err != nil {
		return "", "", catalog.ComboKey{}, errors.Wrap(err, "feature")
	}

	comboItems := make([]string, len(combos))
	for i, c := range combos {
		comboItems[i] = fmt.Sprintf("%s + %s", c.IDE.DisplayName(), matrix.RowLabel(c))
	}
	comboPrompt := promptui.Select{
		Label:             "Combination",
		Items:             comboItems,
		Size:              12,
		StartInSearchMode: len(comboItems) > 12,
		Searcher:          containsSearcher(comboItems),
	}
	ci, _, err := comboPrompt.Run()
	if err != nil {
		return "", "", catalog.ComboKey{}, errors.Wrap(err, "combination")
	}

	kind := catalog.KindFeature
	if fi >= len(state.Features) {
		kind = catalog.KindTransport
	}
	return kind, features[fi].ID, combos[ci].Key, nil
}

func containsSearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		return strings.Contains(strings.ToLower(items[index]), strings.ToLower(strings.TrimSpace(input)))
	}
}
