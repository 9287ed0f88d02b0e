package matrix

import (
	"fmt"
	"sort"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// Severity ranks a lint finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is one data problem reported by Lint.
type Finding struct {
	Severity Severity `json:"severity"`
	Resource string   `json:"resource"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Resource, f.Message)
}

// Lint reports dangling references and values the renderers silently
// ignore. Nothing it reports stops the site from rendering.
func Lint(state *catalog.State) []Finding {
	if state == nil {
		return nil
	}
	var out []Finding
	warn := func(resource, format string, args ...any) {
		out = append(out, Finding{Severity: SeverityWarning, Resource: resource, Message: fmt.Sprintf(format, args...)})
	}

	for _, ide := range state.IDEs {
		res := "ides/" + ide.ID
		for _, id := range ide.CompatibleAIClients {
			if state.Client(id) == nil {
				warn(res, "compatible client %q is not a known AI client", id)
			}
		}
		if ide.Category != "" && !ide.Category.Known() {
			out = append(out, Finding{Severity: SeverityInfo, Resource: res, Message: fmt.Sprintf("unrecognized category %q", ide.Category)})
		}
	}

	combos := make(map[catalog.ComboKey]bool)
	for _, c := range BuildCombinations(state) {
		combos[c.Key] = true
	}

	lintFeatures := func(dir string, features []*catalog.Feature) {
		for _, f := range features {
			res := dir + "/" + f.ID
			for _, raw := range f.MalformedKeys {
				warn(res, "malformed combination key %q", raw)
			}
			for _, raw := range f.InvalidSources {
				warn(res, "source for %q is neither a url nor {url, evidence}", raw)
			}
			for _, key := range sortedKeys(f.InvalidStats) {
				warn(res, "support value %q for %s does not match the support grammar", f.InvalidStats[key], key)
			}
			for _, key := range sortedKeys(f.Support) {
				lintKey(state, combos, res, "stats", key, warn)
				if s := f.Support[key]; s.HasNote() && f.Note(s.NoteRef) == "" {
					warn(res, "%s references note #%s which does not exist", key, s.NoteRef)
				}
			}
			for _, key := range sortedKeys(f.Sources) {
				lintKey(state, combos, res, "sources", key, warn)
			}
		}
	}
	lintFeatures("features", state.Features)
	lintFeatures("transports", state.Transports)

	for _, id := range state.SharedIDs() {
		warn("transports/"+id, "id %q is also used by a feature; lookups without a kind resolve to the feature", id)
	}

	for i, e := range state.Changelog {
		if e.Client == "" {
			continue
		}
		res := fmt.Sprintf("changelog[%d]", i)
		key, err := catalog.ParseComboKey(e.Client)
		if err != nil {
			warn(res, "client %q is not a combination key", e.Client)
			continue
		}
		if !combos[key] {
			warn(res, "client %s is not a known combination", key)
		}
	}
	return out
}

func lintKey(state *catalog.State, combos map[catalog.ComboKey]bool, res, field string, key catalog.ComboKey, warn func(string, string, ...any)) {
	switch {
	case state.IDE(key.IDE) == nil:
		warn(res, "%s key %s names unknown interface %q", field, key, key.IDE)
	case state.Client(key.Client) == nil:
		warn(res, "%s key %s names unknown client %q", field, key, key.Client)
	case !combos[key]:
		warn(res, "%s key %s is not a declared combination", field, key)
	}
}

func sortedKeys[V any](m map[catalog.ComboKey]V) []catalog.ComboKey {
	keys := make([]catalog.ComboKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
