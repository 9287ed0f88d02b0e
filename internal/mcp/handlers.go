package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
)

const defaultChangelogLimit = 10

func (s *Server) handleListFeatures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if len(s.state.Features) == 0 && len(s.state.Transports) == 0 {
		return mcp.NewToolResultText("No features loaded."), nil
	}

	var sb strings.Builder
	writeFeatures(&sb, "Features", s.state.Features)
	writeFeatures(&sb, "Transports", s.state.Transports)
	return mcp.NewToolResultText(sb.String()), nil
}

func writeFeatures(sb *strings.Builder, heading string, list []*catalog.Feature) {
	if len(list) == 0 {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "%s (%d):\n", heading, len(list))
	for _, f := range list {
		fmt.Fprintf(sb, "- %s: %s", f.ID, f.DisplayTitle())
		if f.Description != "" {
			fmt.Fprintf(sb, ". %s", f.Description)
		}
		sb.WriteString("\n")
	}
}

func (s *Server) handleListCombinations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ide := request.GetString("ide", "")
	if ide != "" && s.state.IDE(ide) == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown interface %q", ide)), nil
	}

	var combos []catalog.Combination
	for _, c := range matrix.BuildCombinations(s.state) {
		if ide == "" || c.Key.IDE == ide {
			combos = append(combos, c)
		}
	}
	if len(combos) == 0 {
		return mcp.NewToolResultText("No combinations found."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d combination(s):\n", len(combos))
	for _, c := range combos {
		fmt.Fprintf(&sb, "- %s: %s + %s\n", c.Key, c.IDE.DisplayName(), matrix.RowLabel(c))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetSupport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feature, err := request.RequireString("feature")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: feature"), nil
	}
	ide, err := request.RequireString("ide")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: ide"), nil
	}
	client, err := request.RequireString("client")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: client"), nil
	}
	return s.detailResult(request.GetString("kind", ""), feature, catalog.NewComboKey(ide, client))
}

func (s *Server) handleGetEvidence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feature, err := request.RequireString("feature")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: feature"), nil
	}
	raw, err := request.RequireString("combo")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: combo"), nil
	}
	key, err := catalog.ParseComboKey(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.detailResult(request.GetString("kind", ""), feature, key)
}

func (s *Server) detailResult(rawKind, feature string, key catalog.ComboKey) (*mcp.CallToolResult, error) {
	kind, ok := catalog.ParseKind(rawKind)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q. Use feature or transport.", rawKind)), nil
	}
	d, ok := matrix.LookupKindDetail(s.state, kind, feature, key)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown feature %q. Use list_features to see the tracked features.", feature)), nil
	}

	declared := false
	for _, c := range matrix.BuildCombinations(s.state) {
		if c.Key == key {
			declared = true
			break
		}
	}
	return mcp.NewToolResultText(formatDetail(d, declared)), nil
}

// formatDetail renders a detail as plain text for an assistant to read.
func formatDetail(d matrix.Detail, declared bool) string {
	var sb strings.Builder
	style := matrix.SupportStyle(d.Support.Code)
	fmt.Fprintf(&sb, "%s: %s\n", d.FeatureTitle, d.Label)
	fmt.Fprintf(&sb, "Support: %s %s\n", style.Glyph, d.SupportLabel)
	if d.Note != "" {
		fmt.Fprintf(&sb, "Note: %s\n", d.Note)
	}
	fmt.Fprintf(&sb, "Evidence: %s\n", d.EvidenceText())
	if d.HasSource() {
		fmt.Fprintf(&sb, "Source: %s\n", d.SourceURL)
	} else {
		fmt.Fprintf(&sb, "Source: %s\n", matrix.NoSource)
	}
	if !declared {
		fmt.Fprintf(&sb, "\n%s is not a declared combination.\n", d.ComboKey)
	}
	return sb.String()
}

func (s *Server) handleGetChangelog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultChangelogLimit)
	if limit <= 0 {
		limit = defaultChangelogLimit
	}

	entries := matrix.SortChangelog(s.state.Changelog)
	if len(entries) == 0 {
		return mcp.NewToolResultText("The changelog is empty."), nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d most recent change(s):\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&sb, "\n%s [%s] %s\n", e.Date, e.Type, e.Title)
		if e.Client != "" {
			fmt.Fprintf(&sb, "Combination: %s\n", e.Client)
		}
		if e.Description != "" {
			sb.WriteString(strings.TrimSpace(e.Description))
			sb.WriteString("\n")
		}
		for _, l := range e.Links {
			fmt.Fprintf(&sb, "- %s: %s\n", l.Title, l.URL)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}
