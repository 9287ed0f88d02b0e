package catalog

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
)

// Source points at the evidence behind a support value. In the data files a
// source is either a bare URL string or an object with url and evidence.
type Source struct {
	URL      string `json:"url"`
	Evidence string `json:"evidence,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the structured form.
func (s *Source) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Source{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return errors.Wrap(err, "decoding source url")
		}
		*s = Source{URL: url}
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		type plain Source
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return errors.Wrap(err, "decoding source record")
		}
		*s = Source(p)
		return nil
	}
	return errors.Newf("source must be a url string or {url, evidence}, got %s", data)
}

// MarshalJSON writes the bare-string form when there is no evidence.
func (s Source) MarshalJSON() ([]byte, error) {
	if s.Evidence == "" {
		return json.Marshal(s.URL)
	}
	type plain Source
	return json.Marshal(plain(s))
}

// Feature is an MCP capability or transport whose support is tracked per
// combination.
type Feature struct {
	ID          string
	Title       string
	Description string
	SpecURL     string
	Support     map[ComboKey]Support
	Sources     map[ComboKey]Source
	Notes       map[string]string

	// Raw values that did not survive decoding, kept for lint.
	InvalidStats   map[ComboKey]string
	InvalidSources []string
	MalformedKeys  []string
}

// featureDoc is the on-disk JSON shape of a feature or transport.
type featureDoc struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	SpecURL     string                     `json:"spec_url,omitempty"`
	Stats       map[string]json.RawMessage `json:"stats,omitempty"`
	Sources     map[string]json.RawMessage `json:"sources,omitempty"`
	Notes       map[string]string          `json:"notes,omitempty"`
}

// UnmarshalJSON decodes the data-file shape, parsing every support string
// and combination key once.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var doc featureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	out := Feature{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		SpecURL:     doc.SpecURL,
		Support:     make(map[ComboKey]Support, len(doc.Stats)),
		Sources:     make(map[ComboKey]Source, len(doc.Sources)),
		Notes:       doc.Notes,
	}

	for raw, msg := range doc.Stats {
		key, err := ParseComboKey(raw)
		if err != nil {
			out.MalformedKeys = append(out.MalformedKeys, raw)
			continue
		}
		value, ok := statString(msg)
		if !ok || !ValidSupportString(value) {
			if out.InvalidStats == nil {
				out.InvalidStats = make(map[ComboKey]string)
			}
			out.InvalidStats[key] = value
		}
		if !ok {
			out.Support[key] = Unknown
			continue
		}
		out.Support[key] = ParseSupport(value)
	}

	for raw, msg := range doc.Sources {
		key, err := ParseComboKey(raw)
		if err != nil {
			out.MalformedKeys = append(out.MalformedKeys, raw)
			continue
		}
		var src Source
		if err := json.Unmarshal(msg, &src); err != nil || (src.URL == "" && src.Evidence == "") {
			out.InvalidSources = append(out.InvalidSources, raw)
			continue
		}
		out.Sources[key] = src
	}

	sort.Strings(out.MalformedKeys)
	sort.Strings(out.InvalidSources)
	*f = out
	return nil
}

// statString returns a stats value as a string. Values that are not JSON
// strings come back as their raw text with ok false.
func statString(msg json.RawMessage) (string, bool) {
	var v string
	if err := json.Unmarshal(msg, &v); err != nil {
		return string(bytes.TrimSpace(msg)), false
	}
	return v, true
}

// MarshalJSON writes the feature back in the data-file shape.
func (f *Feature) MarshalJSON() ([]byte, error) {
	doc := struct {
		ID          string            `json:"id"`
		Title       string            `json:"title"`
		Description string            `json:"description,omitempty"`
		SpecURL     string            `json:"spec_url,omitempty"`
		Stats       map[string]string `json:"stats,omitempty"`
		Sources     map[string]Source `json:"sources,omitempty"`
		Notes       map[string]string `json:"notes,omitempty"`
	}{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		SpecURL:     f.SpecURL,
		Notes:       f.Notes,
	}
	if len(f.Support) > 0 {
		doc.Stats = make(map[string]string, len(f.Support))
		for k, v := range f.Support {
			doc.Stats[k.String()] = v.String()
		}
	}
	if len(f.Sources) > 0 {
		doc.Sources = make(map[string]Source, len(f.Sources))
		for k, v := range f.Sources {
			doc.Sources[k.String()] = v
		}
	}
	return json.Marshal(doc)
}

// DisplayTitle returns the title, or the ID when the title is blank.
func (f *Feature) DisplayTitle() string {
	if f.Title != "" {
		return f.Title
	}
	return f.ID
}

// SupportFor returns the support value for key, or Unknown when the
// feature has no entry for it.
func (f *Feature) SupportFor(key ComboKey) Support {
	if f == nil {
		return Unknown
	}
	if s, ok := f.Support[key]; ok {
		return s
	}
	return Unknown
}

// Note resolves a note reference. It returns "" when ref is empty or does
// not name a note.
func (f *Feature) Note(ref string) string {
	if f == nil || ref == "" {
		return ""
	}
	return f.Notes[ref]
}

// SourceFor returns the source recorded for key, if any.
func (f *Feature) SourceFor(key ComboKey) (Source, bool) {
	if f == nil {
		return Source{}, false
	}
	s, ok := f.Sources[key]
	return s, ok
}
