package matrix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

func mustFeature(t *testing.T, doc string) *catalog.Feature {
	t.Helper()
	var f catalog.Feature
	require.NoError(t, json.Unmarshal([]byte(doc), &f))
	return &f
}

// fixtureState is a small catalog exercising plugin and native-only
// interfaces, a dangling client, notes, and both source shapes.
func fixtureState(t *testing.T) *catalog.State {
	t.Helper()

	ides := []*catalog.DeveloperInterface{
		{ID: "vscode", Name: "VS Code", Category: catalog.CategoryIDE, CompatibleAIClients: []string{"copilot", "cline", "ghost"}},
		{ID: "cursor", Name: "Cursor", Category: catalog.CategoryIDE, CompatibleAIClients: []string{"native", "cline"}},
		{ID: "jetbrains", Name: "JetBrains", Category: catalog.CategoryIDE, CompatibleAIClients: []string{"copilot", "continue", "cline"}},
		{ID: "amp", Name: "amp", Category: catalog.CategoryCLI, CompatibleAIClients: []string{"cline"}},
		{ID: "zed", Name: "Zed", Category: catalog.CategoryIDE, CompatibleAIClients: []string{"native"}},
		{ID: "neovim", Name: "Neovim", Category: "editor"},
	}
	clients := []*catalog.AIClient{
		{ID: "native", Name: "Native", NativeNames: map[string]string{"zed": "Zed Agent"}},
		{ID: "copilot", Name: "GitHub Copilot"},
		{ID: "cline", Name: "Cline"},
		{ID: "continue", Name: "Continue"},
	}
	tools := mustFeature(t, `{
		"id": "tools",
		"title": "Tools",
		"stats": {
			"vscode+copilot": "y",
			"vscode+cline": "n #1",
			"cursor+native": "a #2",
			"cursor+cline": "d",
			"jetbrains+copilot": "y #9",
			"zed+native": "y",
			"ghost+native": "y",
			"amp+cline": "weird"
		},
		"sources": {
			"vscode+copilot": "https://example.com/copilot-tools",
			"cursor+native": {"url": "https://example.com/cursor", "evidence": "Release notes 0.45"}
		},
		"notes": {"1": "Behind a setting", "2": "Max 40 tools"}
	}`)
	prompts := mustFeature(t, `{"id": "prompts", "title": "Prompts", "stats": {"vscode+copilot": "y"}}`)
	stdio := mustFeature(t, `{"id": "stdio", "title": "stdio", "stats": {"vscode+copilot": "y"}}`)

	changelog := []catalog.ChangelogEntry{
		{Date: "2024-11-01", Type: catalog.ChangelogClient, Title: "Cline adds roots"},
		{Date: "2025-01-15", Type: catalog.ChangelogSpec, Title: "Spec 2025-01"},
		{Date: "2024-11-01", Type: catalog.ChangelogClient, Client: "vscode+copilot", Title: "Copilot prompts"},
	}

	return catalog.NewState(ides, clients, []*catalog.Feature{tools, prompts}, []*catalog.Feature{stdio}, changelog)
}
