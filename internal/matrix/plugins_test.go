package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

func ideIDs(ides []*catalog.DeveloperInterface) []string {
	out := make([]string, len(ides))
	for i, d := range ides {
		out[i] = d.ID
	}
	return out
}

func TestIsPluginEcosystem(t *testing.T) {
	tests := []struct {
		clients []string
		want    bool
	}{
		{nil, false},
		{[]string{"native"}, false},
		{[]string{"cline"}, true},
		{[]string{"native", "cline"}, true},
		{[]string{"native", "native"}, true},
	}
	for _, tt := range tests {
		ide := &catalog.DeveloperInterface{ID: "x", CompatibleAIClients: tt.clients}
		assert.Equal(t, tt.want, IsPluginEcosystem(ide), "%v", tt.clients)
	}
}

func TestPartitionIsTotalAndDisjoint(t *testing.T) {
	state := fixtureState(t)
	plugin, nativeOnly := PartitionIDEs(state.IDEs)

	assert.Equal(t, []string{"vscode", "cursor", "jetbrains", "amp"}, ideIDs(plugin))
	assert.Equal(t, []string{"zed", "neovim"}, ideIDs(nativeOnly))

	seen := make(map[string]int)
	for _, d := range append(plugin, nativeOnly...) {
		seen[d.ID]++
	}
	assert.Len(t, seen, len(state.IDEs))
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestBuildPluginMatrixColumns(t *testing.T) {
	m := BuildPluginMatrix(fixtureState(t))

	var ids, labels []string
	for _, c := range m.Columns {
		ids = append(ids, c.ClientID)
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"native", "copilot", "cline", "ghost", "continue"}, ids)
	assert.Equal(t, []string{"Native", "GitHub Copilot", "Cline", "ghost", "Continue"}, labels)
}

func TestBuildPluginMatrixCells(t *testing.T) {
	m := BuildPluginMatrix(fixtureState(t))
	require.Len(t, m.Rows, 4)

	supported := func(row AvailabilityRow) []bool {
		out := make([]bool, len(row.Cells))
		for i, c := range row.Cells {
			out[i] = c.Supported
		}
		return out
	}

	assert.Equal(t, "vscode", m.Rows[0].IDE.ID)
	assert.Equal(t, []bool{false, true, true, true, false}, supported(m.Rows[0]))
	assert.Equal(t, "cursor", m.Rows[1].IDE.ID)
	assert.Equal(t, []bool{true, false, true, false, false}, supported(m.Rows[1]))
	assert.Equal(t, []bool{false, true, true, false, true}, supported(m.Rows[2]))
}

func TestBuildPluginMatrixNativeOnly(t *testing.T) {
	m := BuildPluginMatrix(fixtureState(t))

	require.Len(t, m.NativeOnly, 2)
	assert.Equal(t, "zed", m.NativeOnly[0].IDE.ID)
	assert.Equal(t, "Zed Agent", m.NativeOnly[0].Tooltip)
	assert.Equal(t, "neovim", m.NativeOnly[1].IDE.ID)
	assert.Empty(t, m.NativeOnly[1].Tooltip)
}

func TestBuildPluginMatrixNativeTooltip(t *testing.T) {
	state := catalog.NewState(
		[]*catalog.DeveloperInterface{{ID: "cursor", Name: "Cursor", CompatibleAIClients: []string{"native", "cline"}}},
		[]*catalog.AIClient{
			{ID: "native", NativeNames: map[string]string{"cursor": "Cursor Agent"}},
			{ID: "cline", Name: "Cline"},
		},
		nil, nil, nil,
	)
	m := BuildPluginMatrix(state)
	require.Len(t, m.Rows, 1)
	assert.Equal(t, "Cursor Agent", m.Rows[0].Cells[0].Tooltip)
	assert.Empty(t, m.Rows[0].Cells[1].Tooltip)
}

func TestBuildPluginMatrixEmpty(t *testing.T) {
	m := BuildPluginMatrix(catalog.NewState(nil, nil, nil, nil, nil))
	assert.True(t, m.Empty())
	assert.Len(t, m.Columns, 1, "the Native column is always present")
	assert.True(t, BuildPluginMatrix(nil).Empty())
}
