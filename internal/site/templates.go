package site

import "github.com/ziadkadry99/mcp-matrix/internal/matrix"

// emptyMessage replaces a view that has nothing to draw.
const emptyMessage = "No data available"

// pageTemplate is the html/template for index.html.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="build-id" content="{{.BuildID}}">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BaseURL}}style.css">
</head>
<body{{if .LiveReload}} data-live-reload="true"{{end}}>
  <header class="top-bar">
    <h1 class="project-title">{{.Title}}</h1>
    <nav class="view-nav">
      <a href="#plugins">Plugins</a>
      <a href="#features">Features</a>
      <a href="#transports">Transports</a>
      <a href="#changelog">Changelog</a>
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
      </svg>
      <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </header>
  <main class="content">
    <section id="plugins" class="view">
      <h2>Plugin availability</h2>
      {{- if .Plugins.Empty}}
      <p class="no-data">` + emptyMessage + `</p>
      {{- else}}
      {{- if .Plugins.Rows}}
      <table class="matrix availability">
        <thead>
          <tr><th>Interface</th>{{range .Plugins.Columns}}<th>{{.Label}}</th>{{end}}</tr>
        </thead>
        <tbody>
          {{- range .Plugins.Rows}}
          <tr>
            <th scope="row">{{.IDE.DisplayName}}</th>
            {{- range .Cells}}
            <td class="avail {{if .Supported}}yes{{else}}no{{end}}{{if .Tooltip}} has-note{{end}}"{{if .Tooltip}} data-note="{{.Tooltip}}"{{end}}>{{if .Supported}}✅{{else}}❌{{end}}</td>
            {{- end}}
          </tr>
          {{- end}}
        </tbody>
      </table>
      {{- end}}
      {{- if .Plugins.NativeOnly}}
      <h3>Native assistants only</h3>
      <table class="matrix availability native-only">
        <thead>
          <tr><th>Interface</th><th>Native</th></tr>
        </thead>
        <tbody>
          {{- range .Plugins.NativeOnly}}
          <tr>
            <th scope="row">{{.IDE.DisplayName}}</th>
            <td class="avail yes{{if .Tooltip}} has-note{{end}}"{{if .Tooltip}} data-note="{{.Tooltip}}"{{end}}>✅</td>
          </tr>
          {{- end}}
        </tbody>
      </table>
      {{- end}}
      {{- end}}
    </section>

    <section id="features" class="view">
      {{template "featureTable" .Features}}
    </section>

    <section id="transports" class="view">
      {{template "featureTable" .Transports}}
    </section>

    <section class="legend" aria-label="Legend">
      {{- range .Legend}}
      <span class="legend-item {{.Class}}">{{.Glyph}} {{.Label}}</span>
      {{- end}}
    </section>

    <section id="changelog" class="view">
      <h2>Changelog</h2>
      {{- if not .Changelog}}
      <p class="no-data">` + emptyMessage + `</p>
      {{- end}}
      {{- range .Changelog}}
      <article class="changelog-entry">
        <header>
          <h3>{{.Title}}</h3>
          <time datetime="{{.Date}}">{{.Date}}</time>
          <span class="tag tag-{{.Type}}">{{.Type}}</span>
          {{- if .Client}}
          <span class="tag tag-client">{{.Client}}</span>
          {{- end}}
        </header>
        <div class="changelog-body">{{.Description}}</div>
        {{- if .Links}}
        <ul class="changelog-links">
          {{- range .Links}}
          <li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a></li>
          {{- end}}
        </ul>
        {{- end}}
      </article>
      {{- end}}
    </section>
  </main>
  <script id="matrix-details" type="application/json">{{.Details}}</script>
  <script src="{{.BaseURL}}script.js"></script>
</body>
</html>
{{define "featureTable"}}{{$t := .}}
      <h2>{{.Caption}}</h2>
      {{- if .Matrix.Empty}}
      <p class="no-data">` + emptyMessage + `</p>
      {{- else}}
      <table class="matrix features" id="{{.ID}}-table">
        <thead>
          <tr>
            <th>Interface</th>
            {{- range .Matrix.Columns}}
            <th{{if .Description}} title="{{.Description}}"{{end}}>{{if .SpecURL}}<a href="{{.SpecURL}}" target="_blank" rel="noopener">{{.DisplayTitle}}</a>{{else}}{{.DisplayTitle}}{{end}}</th>
            {{- end}}
          </tr>
        </thead>
        <tbody>
          {{- range .Matrix.Groups}}
          {{- if .Collapsible}}{{$key := $t.GroupKey .}}
          <tr class="group-header" data-group-toggle="{{$key}}" aria-expanded="false">
            <th scope="rowgroup"><span class="caret"></span>{{.Label}} <span class="count">({{.Count}})</span></th>
            {{- range $t.Matrix.Columns}}<td></td>{{end}}
          </tr>
          {{- range .Rows}}
          <tr class="group-row" data-group="{{$key}}" hidden>
            <th scope="row">{{.Label}}</th>
            {{- range .Cells}}{{template "cell" .}}{{end}}
          </tr>
          {{- end}}
          {{- else}}
          {{- range .Rows}}
          <tr>
            <th scope="row">{{.Label}}</th>
            {{- range .Cells}}{{template "cell" .}}{{end}}
          </tr>
          {{- end}}
          {{- end}}
          {{- end}}
        </tbody>
      </table>
      {{- end}}
{{end}}
{{define "cell"}}{{$s := .Style}}
            <td class="cell {{$s.Class}}" data-kind="{{.Kind}}" data-feature="{{.FeatureID}}" data-combo="{{.Key}}" title="{{$s.Label}}{{if .Note}}: {{.Note}}{{end}}" tabindex="0">{{$s.Glyph}}{{if .Support.NoteRef}}<sup class="note-ref">{{.Support.NoteRef}}</sup>{{end}}</td>
{{- end}}`

// cssContent is the stylesheet for the matrix site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --link: #228be6;
  --table-stripe: #f8f9fa;
  --yes: #2b8a3e;
  --partial: #e67700;
  --no: #c92a2a;
  --disabled: #5f3dc4;
  --unknown: #868e96;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
  --content-max-width: 1200px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --link: #7aa2f7;
  --table-stripe: #1f2030;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

a { color: var(--link); }

/* ============ Top bar ============ */
.top-bar {
  display: flex;
  align-items: center;
  gap: 24px;
  padding: 12px 24px;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 10;
}

.project-title {
  font-size: 1.1rem;
  font-weight: 700;
  color: var(--accent);
}

.view-nav { display: flex; gap: 16px; flex: 1; }
.view-nav a { text-decoration: none; font-size: 0.9rem; }

.theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
}
.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: inline; }

/* ============ Content ============ */
.content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 24px;
}

.view { margin-bottom: 48px; }
.view h2 { margin-bottom: 16px; }
.view h3 { margin: 24px 0 12px; }

.no-data {
  padding: 24px;
  text-align: center;
  color: var(--text-muted);
  border: 1px dashed var(--border);
  border-radius: 6px;
}

/* ============ Matrices ============ */
.matrix {
  border-collapse: collapse;
  width: 100%;
  font-size: 0.9rem;
}

.matrix th, .matrix td {
  border: 1px solid var(--border);
  padding: 6px 10px;
}

.matrix thead th {
  background: var(--bg-secondary);
  position: sticky;
  top: 52px;
}

.matrix tbody th { text-align: left; font-weight: 500; }
.matrix tbody tr:nth-child(even) { background: var(--table-stripe); }
.matrix td { text-align: center; }

.avail.has-note {
  position: relative;
  cursor: pointer;
  text-decoration: underline dotted;
}

.avail.has-note.shown::after {
  content: attr(data-note);
  position: absolute;
  left: 50%;
  bottom: 100%;
  transform: translateX(-50%);
  padding: 4px 8px;
  white-space: nowrap;
  background: var(--text);
  color: var(--bg);
  border-radius: 4px;
  font-size: 0.8rem;
  z-index: 5;
}

.cell { cursor: pointer; }
.cell:hover, .cell:focus { outline: 2px solid var(--accent); outline-offset: -2px; }
.cell.supported { color: var(--yes); }
.cell.partial { color: var(--partial); }
.cell.unsupported { color: var(--no); }
.cell.disabled { color: var(--disabled); }
.cell.unknown { color: var(--unknown); }
.note-ref { font-size: 0.7rem; color: var(--text-muted); margin-left: 2px; }

.group-header { cursor: pointer; background: var(--accent-light); }
.group-header .count { color: var(--text-muted); font-weight: 400; }
.group-header .caret::before { content: "\25B8"; display: inline-block; width: 1em; }
.group-header.expanded .caret::before { content: "\25BE"; }
.group-row th { padding-left: 28px; }

.legend {
  display: flex;
  flex-wrap: wrap;
  gap: 16px;
  margin-bottom: 48px;
  font-size: 0.85rem;
  color: var(--text-secondary);
}

/* ============ Changelog ============ */
.changelog-entry {
  border-left: 3px solid var(--accent);
  padding: 8px 16px;
  margin-bottom: 20px;
}
.changelog-entry header { display: flex; flex-wrap: wrap; align-items: baseline; gap: 10px; }
.changelog-entry time { color: var(--text-muted); font-size: 0.85rem; }
.changelog-body { margin: 8px 0; }
.changelog-body pre { background: var(--bg-secondary); padding: 8px; overflow-x: auto; }
.changelog-links { padding-left: 20px; font-size: 0.9rem; }

.tag {
  font-size: 0.75rem;
  padding: 1px 8px;
  border-radius: 10px;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
}
.tag-spec { border-color: var(--accent); color: var(--accent); }
.tag-client { color: var(--text-secondary); }

/* ============ Detail overlay ============ */
.detail-backdrop {
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.45);
  display: flex;
  align-items: center;
  justify-content: center;
  z-index: 100;
}
.detail-backdrop[hidden] { display: none; }

.detail-dialog {
  position: relative;
  background: var(--bg);
  color: var(--text);
  max-width: 560px;
  width: calc(100% - 32px);
  padding: 24px;
  border-radius: 8px;
  box-shadow: var(--shadow-lg);
}
.detail-dialog h4 { margin-top: 16px; font-size: 0.85rem; text-transform: uppercase; color: var(--text-muted); }
.detail-label { color: var(--text-secondary); }
.detail-note { margin-top: 8px; font-style: italic; }
.detail-source code { display: block; margin-top: 4px; word-break: break-all; font-size: 0.8rem; }
.detail-close {
  position: absolute;
  top: 8px;
  right: 12px;
  background: none;
  border: none;
  font-size: 1.5rem;
  color: var(--text-muted);
  cursor: pointer;
}

@media (max-width: 768px) {
  .view-nav { display: none; }
  .matrix { display: block; overflow-x: auto; }
}
`

// jsContent drives the tooltips, the detail overlay, group collapse, the
// theme toggle and, in preview, live reload.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var NO_EVIDENCE = "` + matrix.NoEvidence + `";
  var NO_SOURCE = "` + matrix.NoSource + `";

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("mcpmatrix-theme", theme); } catch(e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("mcpmatrix-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Availability tooltips =====
  var noteCells = document.querySelectorAll(".avail.has-note");

  function clearTooltips(except) {
    noteCells.forEach(function(cell) {
      if (cell !== except) cell.classList.remove("shown");
    });
  }

  noteCells.forEach(function(cell) {
    cell.addEventListener("click", function(e) {
      e.stopPropagation();
      clearTooltips(cell);
      cell.classList.toggle("shown");
    });
  });

  document.addEventListener("click", function() { clearTooltips(null); });

  // ===== Group collapse =====
  document.querySelectorAll("[data-group-toggle]").forEach(function(header) {
    header.addEventListener("click", function() {
      var expanded = header.classList.toggle("expanded");
      header.setAttribute("aria-expanded", expanded ? "true" : "false");
      var id = header.getAttribute("data-group-toggle");
      document.querySelectorAll("tr[data-group]").forEach(function(row) {
        if (row.getAttribute("data-group") === id) row.hidden = !expanded;
      });
    });
  });

  // ===== Detail overlay =====
  var details = {};
  var detailsEl = document.getElementById("matrix-details");
  if (detailsEl) {
    try { details = JSON.parse(detailsEl.textContent) || {}; } catch(e) { details = {}; }
  }

  var overlay = null;

  function ensureOverlay() {
    if (overlay) return overlay;
    var backdrop = document.createElement("div");
    backdrop.className = "detail-backdrop";
    backdrop.hidden = true;
    backdrop.innerHTML =
      '<div class="detail-dialog" role="dialog" aria-modal="true">' +
      '<button type="button" class="detail-close" aria-label="Close">&times;</button>' +
      '<h3 class="detail-title"></h3>' +
      '<p class="detail-label"></p>' +
      '<p class="detail-support"></p>' +
      '<p class="detail-note"></p>' +
      '<h4>Evidence</h4><p class="detail-evidence"></p>' +
      '<h4>Source</h4><p class="detail-source"></p>' +
      '</div>';
    backdrop.addEventListener("click", function(e) {
      if (e.target === backdrop) hideDetail();
    });
    backdrop.querySelector(".detail-close").addEventListener("click", hideDetail);
    document.body.appendChild(backdrop);
    overlay = backdrop;
    return overlay;
  }

  function showDetail(d) {
    var o = ensureOverlay();
    o.querySelector(".detail-title").textContent = d.feature_title;
    o.querySelector(".detail-label").textContent = d.label;
    o.querySelector(".detail-support").textContent = d.support_label;

    var note = o.querySelector(".detail-note");
    note.textContent = d.note || "";
    note.hidden = !d.note;

    o.querySelector(".detail-evidence").textContent = d.evidence || NO_EVIDENCE;

    var src = o.querySelector(".detail-source");
    src.textContent = "";
    if (d.source_url) {
      var link = document.createElement("a");
      link.href = d.source_url;
      link.target = "_blank";
      link.rel = "noopener";
      link.textContent = "View source";
      var literal = document.createElement("code");
      literal.textContent = d.source_url;
      src.appendChild(link);
      src.appendChild(literal);
    } else {
      src.textContent = NO_SOURCE;
    }

    o.hidden = false;
    o.querySelector(".detail-close").focus();
  }

  function hideDetail() {
    if (overlay) overlay.hidden = true;
  }

  function openCell(cell) {
    var d = details[cell.getAttribute("data-kind") + ":" + cell.getAttribute("data-feature") + "|" + cell.getAttribute("data-combo")];
    if (d) showDetail(d);
  }

  document.querySelectorAll(".cell[data-feature]").forEach(function(cell) {
    cell.addEventListener("click", function() { openCell(cell); });
    cell.addEventListener("keydown", function(e) {
      if (e.key === "Enter" || e.key === " ") {
        e.preventDefault();
        openCell(cell);
      }
    });
  });

  document.addEventListener("keydown", function(e) {
    if (e.key === "Escape") {
      hideDetail();
      clearTooltips(null);
    }
  });

  // ===== Live reload (preview only) =====
  if (document.body.getAttribute("data-live-reload") === "true" && window.WebSocket) {
    var meta = document.querySelector('meta[name="build-id"]');
    var current = meta ? meta.getAttribute("content") : "";

    var connect = function() {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      var ws = new WebSocket(proto + location.host + "/ws/reload");
      ws.onmessage = function(ev) {
        try {
          var msg = JSON.parse(ev.data);
          if (msg.build_id && msg.build_id !== current) location.reload();
        } catch(e) {}
      };
      ws.onclose = function() { setTimeout(connect, 1000); };
    };
    connect();
  }
})();
`
