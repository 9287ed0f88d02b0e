package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

func TestLookupDetailBareSource(t *testing.T) {
	d, ok := LookupDetail(fixtureState(t), "tools", catalog.NewComboKey("vscode", "copilot"))
	require.True(t, ok)

	assert.Equal(t, "Tools", d.FeatureTitle)
	assert.Equal(t, "VS Code + GitHub Copilot", d.Label)
	assert.Equal(t, "Supported", d.SupportLabel)
	assert.Equal(t, "https://example.com/copilot-tools", d.SourceURL)
	assert.True(t, d.HasSource())
	assert.Empty(t, d.Evidence)
	assert.Equal(t, NoEvidence, d.EvidenceText())
}

func TestLookupDetailStructuredSource(t *testing.T) {
	d, ok := LookupDetail(fixtureState(t), "tools", catalog.NewComboKey("cursor", "native"))
	require.True(t, ok)

	assert.Equal(t, "Cursor + Native", d.Label)
	assert.Equal(t, "https://example.com/cursor", d.SourceURL)
	assert.Equal(t, "Release notes 0.45", d.EvidenceText())
	assert.Equal(t, "Max 40 tools", d.Note)
	assert.Equal(t, catalog.SupportPartial, d.Support.Code)
}

func TestLookupDetailNativeName(t *testing.T) {
	d, ok := LookupDetail(fixtureState(t), "tools", catalog.NewComboKey("zed", "native"))
	require.True(t, ok)
	assert.Equal(t, "Zed + Zed Agent", d.Label)
	assert.False(t, d.HasSource())
}

func TestLookupDetailDangling(t *testing.T) {
	state := fixtureState(t)

	_, ok := LookupDetail(state, "nope", catalog.NewComboKey("vscode", "copilot"))
	assert.False(t, ok)

	d, ok := LookupDetail(state, "tools", catalog.NewComboKey("ghost", "native"))
	require.True(t, ok)
	assert.Equal(t, "ghost", d.IDEName)
	assert.Equal(t, "ghost + Native", d.Label)
	assert.Equal(t, catalog.SupportYes, d.Support.Code)
}

func TestLookupDetailTransport(t *testing.T) {
	d, ok := LookupDetail(fixtureState(t), "stdio", catalog.NewComboKey("vscode", "copilot"))
	require.True(t, ok)
	assert.Equal(t, "stdio", d.FeatureTitle)
	assert.Equal(t, catalog.KindTransport, d.Kind)
}

func TestLookupDetailSharedID(t *testing.T) {
	state := fixtureState(t)
	feature := mustFeature(t, `{"id": "stdio", "title": "stdio as a feature", "stats": {"vscode+copilot": "n"}}`)
	state = catalog.NewState(state.IDEs, state.Clients, append(state.Features, feature), state.Transports, nil)
	key := catalog.NewComboKey("vscode", "copilot")

	d, ok := LookupDetail(state, "stdio", key)
	require.True(t, ok)
	assert.Equal(t, catalog.KindFeature, d.Kind)
	assert.Equal(t, "stdio as a feature", d.FeatureTitle)

	d, ok = LookupKindDetail(state, catalog.KindTransport, "stdio", key)
	require.True(t, ok)
	assert.Equal(t, "stdio", d.FeatureTitle)
	assert.Equal(t, catalog.SupportYes, d.Support.Code)

	_, ok = LookupKindDetail(state, catalog.KindTransport, "tools", key)
	assert.False(t, ok)

	details := BuildDetails(state)
	assert.Equal(t, catalog.SupportNo, details[DetailID(catalog.KindFeature, "stdio", key)].Support.Code)
	assert.Equal(t, catalog.SupportYes, details[DetailID(catalog.KindTransport, "stdio", key)].Support.Code)
}

func TestBuildDetails(t *testing.T) {
	state := fixtureState(t)
	details := BuildDetails(state)

	// (2 features + 1 transport) x 9 combinations
	assert.Len(t, details, 27)
	d, ok := details[DetailID(catalog.KindFeature, "tools", catalog.NewComboKey("vscode", "cline"))]
	require.True(t, ok)
	assert.Equal(t, "Behind a setting", d.Note)
	assert.Equal(t, catalog.KindFeature, d.Kind)
	assert.Equal(t, "feature:tools|vscode+cline", DetailID(catalog.KindFeature, "tools", catalog.NewComboKey("vscode", "cline")))

	d, ok = details[DetailID(catalog.KindTransport, "stdio", catalog.NewComboKey("vscode", "copilot"))]
	require.True(t, ok)
	assert.Equal(t, catalog.KindTransport, d.Kind)

	assert.Empty(t, BuildDetails(nil))
}
