package matrix

import (
	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// Placeholders shown when a detail has no evidence or no source.
const (
	NoEvidence = "No evidence recorded."
	NoSource   = "No source available."
)

// Detail is everything the evidence overlay shows for one cell.
type Detail struct {
	Kind         catalog.Kind     `json:"kind"`
	FeatureID    string           `json:"feature_id"`
	FeatureTitle string           `json:"feature_title"`
	ComboKey     catalog.ComboKey `json:"combo"`
	IDEName      string           `json:"ide_name"`
	ClientName   string           `json:"client_name"`
	Label        string           `json:"label"`
	Support      catalog.Support  `json:"support"`
	SupportLabel string           `json:"support_label"`
	Note         string           `json:"note,omitempty"`
	Evidence     string           `json:"evidence,omitempty"`
	SourceURL    string           `json:"source_url,omitempty"`
}

// EvidenceText returns the evidence or the "no evidence" placeholder.
func (d Detail) EvidenceText() string {
	if d.Evidence == "" {
		return NoEvidence
	}
	return d.Evidence
}

// HasSource reports whether a source URL was recorded.
func (d Detail) HasSource() bool {
	return d.SourceURL != ""
}

// DetailID is the lookup key of a detail in the details payload. The kind
// keeps a feature and a transport with the same ID apart.
func DetailID(kind catalog.Kind, featureID string, key catalog.ComboKey) string {
	return string(kind) + ":" + featureID + "|" + key.String()
}

// LookupDetail resolves the detail for one feature and combination. The
// features are searched before the transports. It returns false only when
// the ID is unknown; dangling interface or client IDs fall back to the raw
// identifiers.
func LookupDetail(state *catalog.State, featureID string, key catalog.ComboKey) (Detail, bool) {
	if f := state.Lookup(catalog.KindFeature, featureID); f != nil {
		return buildDetail(state, catalog.KindFeature, f, key), true
	}
	return LookupKindDetail(state, catalog.KindTransport, featureID, key)
}

// LookupKindDetail is LookupDetail restricted to one kind. An empty kind
// behaves like LookupDetail.
func LookupKindDetail(state *catalog.State, kind catalog.Kind, featureID string, key catalog.ComboKey) (Detail, bool) {
	if kind == "" {
		return LookupDetail(state, featureID, key)
	}
	f := state.Lookup(kind, featureID)
	if f == nil {
		return Detail{}, false
	}
	return buildDetail(state, kind, f, key), true
}

func buildDetail(state *catalog.State, kind catalog.Kind, f *catalog.Feature, key catalog.ComboKey) Detail {
	cell := BuildCell(f, key)
	d := Detail{
		Kind:         kind,
		FeatureID:    f.ID,
		FeatureTitle: f.DisplayTitle(),
		ComboKey:     key,
		IDEName:      key.IDE,
		ClientName:   key.Client,
		Support:      cell.Support,
		SupportLabel: cell.Style().Label,
		Note:         cell.Note,
	}

	ide := state.IDE(key.IDE)
	if ide != nil {
		d.IDEName = ide.DisplayName()
	}
	if client := state.Client(key.Client); client != nil {
		d.ClientName = client.DisplayName()
		if key.IsNative() {
			if name := client.NativeName(key.IDE); name != "" {
				d.ClientName = name
			}
		}
	}
	d.Label = d.IDEName + " + " + d.ClientName

	if src, ok := f.SourceFor(key); ok {
		d.SourceURL = src.URL
		d.Evidence = src.Evidence
	}
	return d
}

// BuildDetails resolves the detail of every feature and transport cell for
// every combination, keyed by DetailID.
func BuildDetails(state *catalog.State) map[string]Detail {
	out := make(map[string]Detail)
	if state == nil {
		return out
	}
	combos := BuildCombinations(state)
	for _, kind := range []catalog.Kind{catalog.KindFeature, catalog.KindTransport} {
		for _, f := range state.Collection(kind) {
			for _, c := range combos {
				out[DetailID(kind, f.ID, c.Key)] = buildDetail(state, kind, f, c.Key)
			}
		}
	}
	return out
}
