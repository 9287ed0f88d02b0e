package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

func groupLabels(groups []RowGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Label
	}
	return out
}

func TestBuildFeatureMatrixGroupOrder(t *testing.T) {
	state := fixtureState(t)
	m := BuildFeatureMatrix(state, state.Features)

	// Count descending, then case-insensitive name.
	assert.Equal(t, []string{"JetBrains", "Cursor", "VS Code", "amp", "Zed"}, groupLabels(m.Groups))
	assert.Equal(t, 3, m.Groups[0].Count())
	assert.True(t, m.Groups[0].Collapsible())
	assert.False(t, m.Groups[4].Collapsible())
	assert.Equal(t, "jetbrains", m.Groups[0].GroupID())
}

func TestBuildFeatureMatrixRowLabels(t *testing.T) {
	state := fixtureState(t)
	m := BuildFeatureMatrix(state, state.Features)

	byLabel := make(map[string]RowGroup)
	for _, g := range m.Groups {
		byLabel[g.Label] = g
	}

	cursor := byLabel["Cursor"]
	require.Len(t, cursor.Rows, 2)
	assert.Equal(t, "Cursor (Native)", cursor.Rows[0].Label)
	assert.Equal(t, "Cline", cursor.Rows[1].Label)

	zed := byLabel["Zed"]
	require.Len(t, zed.Rows, 1)
	assert.Equal(t, "Zed", zed.Rows[0].Label, "a single combination is labeled with the interface")
}

func TestBuildFeatureMatrixCells(t *testing.T) {
	state := fixtureState(t)
	m := BuildFeatureMatrix(state, state.Features)
	require.Len(t, m.Columns, 2)

	cells := make(map[string][]FeatureCell)
	for _, g := range m.Groups {
		for _, r := range g.Rows {
			cells[r.Key.String()] = r.Cells
		}
	}

	vsCline := cells["vscode+cline"]
	require.Len(t, vsCline, 2)
	assert.Equal(t, "tools", vsCline[0].FeatureID)
	assert.Equal(t, catalog.KindFeature, vsCline[0].Kind)
	assert.Equal(t, catalog.SupportNo, vsCline[0].Support.Code)
	assert.Equal(t, "Behind a setting", vsCline[0].Note)
	assert.Equal(t, catalog.SupportUnknown, vsCline[1].Support.Code, "missing entries are unknown")

	cursorNative := cells["cursor+native"]
	assert.Equal(t, catalog.SupportPartial, cursorNative[0].Support.Code)
	assert.Equal(t, "Max 40 tools", cursorNative[0].Note)
	assert.Equal(t, "⚠️", cursorNative[0].Style().Glyph)

	jbCopilot := cells["jetbrains+copilot"]
	assert.Equal(t, catalog.SupportYes, jbCopilot[0].Support.Code)
	assert.Equal(t, "9", jbCopilot[0].Support.NoteRef)
	assert.Empty(t, jbCopilot[0].Note, "unresolved note refs render without a note")

	amp := cells["amp+cline"]
	assert.Equal(t, catalog.SupportUnknown, amp[0].Support.Code)
	assert.Equal(t, "unknown", amp[0].Style().Class)
}

func TestBuildFeatureMatrixEmpty(t *testing.T) {
	state := fixtureState(t)
	assert.True(t, BuildFeatureMatrix(state, nil).Empty())
	assert.True(t, BuildFeatureMatrix(catalog.NewState(nil, nil, nil, nil, nil), state.Features).Empty())
	assert.True(t, BuildFeatureMatrix(nil, nil).Empty())
}

func TestSortGroupsStable(t *testing.T) {
	mk := func(id, name string, n int) RowGroup {
		return RowGroup{IDE: &catalog.DeveloperInterface{ID: id, Name: name}, Label: name, Rows: make([]FeatureRow, n)}
	}
	groups := []RowGroup{
		mk("vscode", "VS Code", 2),
		mk("small", "Small", 3),
		mk("big", "Big", 5),
		mk("cursor", "Cursor", 2),
	}
	SortGroups(groups)
	assert.Equal(t, []string{"Big", "Small", "Cursor", "VS Code"}, groupLabels(groups))
}

func TestSupportStyle(t *testing.T) {
	tests := []struct {
		code  catalog.SupportCode
		glyph string
		class string
	}{
		{catalog.SupportYes, "✅", "supported"},
		{catalog.SupportPartial, "⚠️", "partial"},
		{catalog.SupportNo, "❌", "unsupported"},
		{catalog.SupportDisabled, "🔧", "disabled"},
		{catalog.SupportUnknown, "❓", "unknown"},
		{catalog.SupportCode("z"), "❓", "unknown"},
	}
	for _, tt := range tests {
		s := SupportStyle(tt.code)
		assert.Equal(t, tt.glyph, s.Glyph, string(tt.code))
		assert.Equal(t, tt.class, s.Class, string(tt.code))
	}
	assert.Len(t, Legend(), 5)
}

func TestBuildFeatureMatrixTransportKind(t *testing.T) {
	state := fixtureState(t)
	m := BuildFeatureMatrix(state, state.Transports)
	require.NotEmpty(t, m.Groups)
	for _, g := range m.Groups {
		for _, r := range g.Rows {
			require.Len(t, r.Cells, 1)
			assert.Equal(t, catalog.KindTransport, r.Cells[0].Kind)
			assert.Equal(t, "stdio", r.Cells[0].FeatureID)
		}
	}
}
