package matrix

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// FeatureCell is one support value in the feature matrix. Every cell is
// clickable; Kind, FeatureID and Key identify its detail.
type FeatureCell struct {
	Kind      catalog.Kind
	FeatureID string
	Key       catalog.ComboKey
	Support   catalog.Support
	Note      string
}

// Style returns the cell's presentation.
func (c FeatureCell) Style() Style {
	return SupportStyle(c.Support.Code)
}

// FeatureRow is one combination across all feature columns.
type FeatureRow struct {
	Key   catalog.ComboKey
	Label string
	Cells []FeatureCell
}

// RowGroup holds the rows of one developer interface. A group with a single
// combination is rendered as a plain row labeled with the interface name; a
// larger group gets a collapsible header.
type RowGroup struct {
	IDE   *catalog.DeveloperInterface
	Label string
	Rows  []FeatureRow
}

// GroupID tags the rows that a header toggles.
func (g RowGroup) GroupID() string {
	return g.IDE.ID
}

// Count is the number of combinations in the group.
func (g RowGroup) Count() int {
	return len(g.Rows)
}

// Collapsible reports whether the group renders behind a header row.
func (g RowGroup) Collapsible() bool {
	return len(g.Rows) > 1
}

// FeatureMatrix is the transposed feature-support view: one column per
// feature, one row group per interface.
type FeatureMatrix struct {
	Columns []*catalog.Feature
	Groups  []RowGroup
}

// Empty reports whether there is nothing to draw.
func (m FeatureMatrix) Empty() bool {
	return len(m.Columns) == 0 || len(m.Groups) == 0
}

// BuildFeatureMatrix builds the feature-support view for the given columns
// (features or transports, in manifest order).
func BuildFeatureMatrix(state *catalog.State, features []*catalog.Feature) FeatureMatrix {
	m := FeatureMatrix{Columns: features}
	combos := BuildCombinations(state)
	if len(combos) == 0 {
		return m
	}

	kinds := make([]catalog.Kind, len(features))
	for i, f := range features {
		kinds[i] = state.KindOf(f)
	}

	byIDE := GroupByIDE(combos)
	for _, ide := range state.IDEs {
		list := byIDE[ide.ID]
		if len(list) == 0 {
			continue
		}
		g := RowGroup{IDE: ide, Label: ide.DisplayName()}
		for _, c := range list {
			row := FeatureRow{Key: c.Key, Label: RowLabel(c)}
			if len(list) == 1 {
				row.Label = ide.DisplayName()
			}
			row.Cells = make([]FeatureCell, len(features))
			for i, f := range features {
				row.Cells[i] = BuildCell(f, c.Key)
				row.Cells[i].Kind = kinds[i]
			}
			g.Rows = append(g.Rows, row)
		}
		m.Groups = append(m.Groups, g)
	}

	SortGroups(m.Groups)
	return m
}

// BuildCell resolves a feature's support for one combination, attaching the
// note text when the note reference resolves.
func BuildCell(f *catalog.Feature, key catalog.ComboKey) FeatureCell {
	s := f.SupportFor(key)
	cell := FeatureCell{Key: key, Support: s}
	if f != nil {
		cell.FeatureID = f.ID
	}
	if s.HasNote() {
		cell.Note = f.Note(s.NoteRef)
	}
	return cell
}

// SortGroups orders groups by descending combination count, breaking ties
// by interface name with a case-insensitive collator.
func SortGroups(groups []RowGroup) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Count() != b.Count() {
			return a.Count() > b.Count()
		}
		if c := col.CompareString(a.Label, b.Label); c != 0 {
			return c < 0
		}
		return a.IDE.ID < b.IDE.ID
	})
}
