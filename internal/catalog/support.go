package catalog

import (
	"regexp"
)

// SupportCode classifies how well a combination supports a feature.
type SupportCode string

const (
	SupportYes      SupportCode = "y"
	SupportPartial  SupportCode = "a"
	SupportNo       SupportCode = "n"
	SupportUnknown  SupportCode = "u"
	SupportDisabled SupportCode = "d"
)

// Valid reports whether c is one of the five support codes.
func (c SupportCode) Valid() bool {
	switch c {
	case SupportYes, SupportPartial, SupportNo, SupportUnknown, SupportDisabled:
		return true
	}
	return false
}

// supportPattern is the grammar of a packed support string: a code,
// optionally followed by spaces and a "#<digits>" note reference.
var supportPattern = regexp.MustCompile(`^(y|a|n|d|u)(?: *#(\d+))?$`)

// Support is a parsed support value.
type Support struct {
	Code    SupportCode `json:"code"`
	NoteRef string      `json:"note_ref,omitempty"`
}

// Unknown is the value used for absent or unparseable support strings.
var Unknown = Support{Code: SupportUnknown}

// ParseSupport parses a packed support string such as "y" or "n #1".
// Anything that does not match the grammar is treated as unknown with no
// note reference.
func ParseSupport(s string) Support {
	m := supportPattern.FindStringSubmatch(s)
	if m == nil {
		return Unknown
	}
	return Support{Code: SupportCode(m[1]), NoteRef: m[2]}
}

// ValidSupportString reports whether s matches the support grammar.
func ValidSupportString(s string) bool {
	return supportPattern.MatchString(s)
}

// HasNote reports whether the value carries a note reference.
func (s Support) HasNote() bool {
	return s.NoteRef != ""
}

// String returns the packed form.
func (s Support) String() string {
	if s.NoteRef == "" {
		return string(s.Code)
	}
	return string(s.Code) + " #" + s.NoteRef
}
