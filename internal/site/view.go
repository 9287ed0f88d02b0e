package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/matrix"
)

// pageData is what the page template renders.
type pageData struct {
	Title      string
	BaseURL    string
	BuildID    string
	LiveReload bool

	Plugins      matrix.PluginMatrix
	Features     featureTable
	Transports   featureTable
	Legend       []matrix.Style
	Changelog    []changelogView
	Details      map[string]matrix.Detail
	Combinations int
}

// featureTable is one feature-support matrix plus the prefix that keeps its
// group IDs apart from the other table's.
type featureTable struct {
	ID      string
	Caption string
	Matrix  matrix.FeatureMatrix
}

// GroupKey is the data-group value of a row group in this table.
func (t featureTable) GroupKey(g matrix.RowGroup) string {
	return t.ID + ":" + g.GroupID()
}

type changelogView struct {
	Date        string
	Type        catalog.ChangelogType
	Client      string
	Title       string
	Description template.HTML
	Links       []catalog.Link
}

func (g *Generator) page(state *catalog.State, buildID string) (pageData, error) {
	title := g.Title
	if title == "" {
		title = "MCP Client Compatibility"
	}

	data := pageData{
		Title:      title,
		BaseURL:    assetBase(g.BaseURL),
		BuildID:    buildID,
		LiveReload: g.LiveReload,
		Plugins:    matrix.BuildPluginMatrix(state),
		Features: featureTable{
			ID:      "features",
			Caption: "Feature support",
			Matrix:  matrix.BuildFeatureMatrix(state, state.Features),
		},
		Transports: featureTable{
			ID:      "transports",
			Caption: "Transport support",
			Matrix:  matrix.BuildFeatureMatrix(state, state.Transports),
		},
		Legend:       matrix.Legend(),
		Details:      matrix.BuildDetails(state),
		Combinations: len(matrix.BuildCombinations(state)),
	}

	changelog, err := renderChangelog(newMarkdown(), state)
	if err != nil {
		return pageData{}, err
	}
	data.Changelog = changelog
	return data, nil
}

// renderChangelog sorts the entries newest first and renders their
// markdown descriptions.
func renderChangelog(md goldmark.Markdown, state *catalog.State) ([]changelogView, error) {
	entries := matrix.SortChangelog(state.Changelog)
	out := make([]changelogView, 0, len(entries))
	for _, e := range entries {
		var buf bytes.Buffer
		if err := md.Convert([]byte(e.Description), &buf); err != nil {
			return nil, errors.Wrapf(err, "rendering changelog entry %q", e.Title)
		}
		out = append(out, changelogView{
			Date:        e.Date,
			Type:        e.Type,
			Client:      changelogClient(state, e.Client),
			Title:       e.Title,
			Description: template.HTML(buf.String()),
			Links:       e.Links,
		})
	}
	return out, nil
}

// changelogClient turns a combination key into "<ide> + <client>" when both
// halves resolve, and returns the raw value otherwise.
func changelogClient(state *catalog.State, raw string) string {
	if raw == "" {
		return ""
	}
	key, err := catalog.ParseComboKey(raw)
	if err != nil {
		return raw
	}
	ide, client := state.IDE(key.IDE), state.Client(key.Client)
	if ide == nil || client == nil {
		return raw
	}
	return ide.DisplayName() + " + " + client.DisplayName()
}

// assetBase is the prefix for asset links: empty for a relative site,
// otherwise the base URL with exactly one trailing slash.
func assetBase(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return ""
	}
	return base + "/"
}
