// Package site renders the compatibility matrices and changelog into a
// static site and serves a live-reloading preview of it.
package site

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/logging"
)

// Output file names.
const (
	IndexFile   = "index.html"
	StyleFile   = "style.css"
	ScriptFile  = "script.js"
	DetailsFile = "details.json"
	DataFile    = "data.json"
)

// Generator writes the static site for one catalog state.
type Generator struct {
	State     *catalog.State
	OutputDir string
	Title     string
	BaseURL   string
	Logger    *slog.Logger

	// LiveReload injects the reload socket client into the page.
	LiveReload bool
	// BuildID tags the output; a random one is generated when empty.
	BuildID string
}

// Stats summarizes one generation.
type Stats struct {
	BuildID          string
	Combinations     int
	Features         int
	Transports       int
	ChangelogEntries int
	Details          int
	Files            int
}

// Generate renders every view and writes the output files. An empty or
// partial state still renders; empty views show a placeholder.
func (g *Generator) Generate() (Stats, error) {
	logger := logging.OrDiscard(g.Logger)

	buildID := g.BuildID
	if buildID == "" {
		buildID = uuid.NewString()
	}
	state := g.State
	if state == nil {
		state = catalog.NewState(nil, nil, nil, nil, nil)
	}

	data, err := g.page(state, buildID)
	if err != nil {
		return Stats{}, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return Stats{}, errors.Wrap(err, "parsing page template")
	}
	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return Stats{}, errors.Wrap(err, "rendering page")
	}

	details, err := json.MarshalIndent(data.Details, "", "  ")
	if err != nil {
		return Stats{}, errors.Wrap(err, "encoding details")
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return Stats{}, errors.Wrap(err, "encoding data")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Stats{}, errors.Wrapf(err, "creating %s", g.OutputDir)
	}
	files := []struct {
		name string
		body []byte
	}{
		{IndexFile, page.Bytes()},
		{StyleFile, []byte(cssContent)},
		{ScriptFile, []byte(jsContent)},
		{DetailsFile, details},
		{DataFile, raw},
	}
	for _, f := range files {
		path := filepath.Join(g.OutputDir, f.name)
		if err := os.WriteFile(path, f.body, 0o644); err != nil {
			return Stats{}, errors.Wrapf(err, "writing %s", path)
		}
	}

	stats := Stats{
		BuildID:          buildID,
		Combinations:     data.Combinations,
		Features:         len(state.Features),
		Transports:       len(state.Transports),
		ChangelogEntries: len(state.Changelog),
		Details:          len(data.Details),
		Files:            len(files),
	}
	logger.Debug("site generated",
		"dir", g.OutputDir,
		"build_id", buildID,
		"combinations", stats.Combinations,
		"details", stats.Details,
	)
	return stats, nil
}

// newMarkdown returns the renderer for changelog descriptions. Raw HTML in
// the data files is not passed through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}
