package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolsJSON = `{
  "id": "tools",
  "title": "Tools",
  "description": "Server-exposed functions",
  "spec_url": "https://modelcontextprotocol.io/specification/server/tools",
  "stats": {
    "vscode+copilot": "y",
    "vscode+cline": "n #1",
    "cursor+native": "a #2",
    "zed+native": "maybe",
    "broken": "y"
  },
  "sources": {
    "vscode+copilot": "https://example.com/copilot",
    "cursor+native": {"url": "https://example.com/cursor", "evidence": "Changelog 0.45"},
    "zed+native": 42,
    "nope": "https://example.com"
  },
  "notes": {"1": "Only in preview builds", "2": "Tool list capped at 40"}
}`

func decodeTools(t *testing.T) *Feature {
	t.Helper()
	var f Feature
	require.NoError(t, json.Unmarshal([]byte(toolsJSON), &f))
	return &f
}

func TestFeatureUnmarshal(t *testing.T) {
	f := decodeTools(t)

	assert.Equal(t, "tools", f.ID)
	assert.Equal(t, "Tools", f.DisplayTitle())
	assert.Len(t, f.Support, 4)

	assert.Equal(t, Support{Code: SupportYes}, f.SupportFor(NewComboKey("vscode", "copilot")))
	assert.Equal(t, Support{Code: SupportNo, NoteRef: "1"}, f.SupportFor(NewComboKey("vscode", "cline")))
	assert.Equal(t, Unknown, f.SupportFor(NewComboKey("zed", "native")))
	assert.Equal(t, Unknown, f.SupportFor(NewComboKey("jetbrains", "copilot")))

	assert.Equal(t, map[ComboKey]string{NewComboKey("zed", "native"): "maybe"}, f.InvalidStats)
	assert.Equal(t, []string{"broken", "nope"}, f.MalformedKeys)
	assert.Equal(t, []string{"zed+native"}, f.InvalidSources)
}

func TestFeatureSources(t *testing.T) {
	f := decodeTools(t)

	src, ok := f.SourceFor(NewComboKey("vscode", "copilot"))
	require.True(t, ok)
	assert.Equal(t, Source{URL: "https://example.com/copilot"}, src)

	src, ok = f.SourceFor(NewComboKey("cursor", "native"))
	require.True(t, ok)
	assert.Equal(t, "https://example.com/cursor", src.URL)
	assert.Equal(t, "Changelog 0.45", src.Evidence)

	_, ok = f.SourceFor(NewComboKey("vscode", "cline"))
	assert.False(t, ok)
}

func TestFeatureNote(t *testing.T) {
	f := decodeTools(t)
	assert.Equal(t, "Only in preview builds", f.Note("1"))
	assert.Empty(t, f.Note("9"))
	assert.Empty(t, f.Note(""))

	var nilFeature *Feature
	assert.Empty(t, nilFeature.Note("1"))
	assert.Equal(t, Unknown, nilFeature.SupportFor(NewComboKey("a", "b")))
}

func TestFeatureMarshalKeepsDataShape(t *testing.T) {
	f := decodeTools(t)
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var back Feature
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, f.Support, back.Support)
	assert.Equal(t, f.Sources, back.Sources)
	assert.Contains(t, string(data), `"vscode+copilot":"https://example.com/copilot"`)
}

func TestSourceUnmarshalRejectsOtherShapes(t *testing.T) {
	var s Source
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, Source{}, s)
}

func TestFeatureUnmarshalNonStringStats(t *testing.T) {
	var f Feature
	require.NoError(t, json.Unmarshal([]byte(`{
  "id": "tools",
  "stats": {
    "vscode+copilot": "y",
    "vscode+cline": 1,
    "cursor+native": true,
    "zed+native": {"code": "y"}
  }
}`), &f))

	assert.Len(t, f.Support, 4)
	assert.Equal(t, Support{Code: SupportYes}, f.SupportFor(NewComboKey("vscode", "copilot")))
	assert.Equal(t, Unknown, f.SupportFor(NewComboKey("vscode", "cline")))
	assert.Equal(t, Unknown, f.SupportFor(NewComboKey("cursor", "native")))
	assert.Equal(t, Unknown, f.SupportFor(NewComboKey("zed", "native")))
	assert.Equal(t, map[ComboKey]string{
		NewComboKey("vscode", "cline"):  "1",
		NewComboKey("cursor", "native"): "true",
		NewComboKey("zed", "native"):    `{"code": "y"}`,
	}, f.InvalidStats)
}
