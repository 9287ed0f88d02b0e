package matrix

import "github.com/ziadkadry99/mcp-matrix/internal/catalog"

// Style is how a support code is drawn.
type Style struct {
	Glyph string
	Class string
	Label string
}

var styles = map[catalog.SupportCode]Style{
	catalog.SupportYes:      {Glyph: "✅", Class: "supported", Label: "Supported"},
	catalog.SupportPartial:  {Glyph: "⚠️", Class: "partial", Label: "Partial support"},
	catalog.SupportNo:       {Glyph: "❌", Class: "unsupported", Label: "Not supported"},
	catalog.SupportDisabled: {Glyph: "🔧", Class: "disabled", Label: "Disabled by default"},
	catalog.SupportUnknown:  {Glyph: "❓", Class: "unknown", Label: "Unknown"},
}

// SupportStyle maps a code to its glyph and CSS class. Unrecognized codes
// are drawn as unknown.
func SupportStyle(code catalog.SupportCode) Style {
	if s, ok := styles[code]; ok {
		return s
	}
	return styles[catalog.SupportUnknown]
}

// Legend returns the styles in display order.
func Legend() []Style {
	order := []catalog.SupportCode{
		catalog.SupportYes,
		catalog.SupportPartial,
		catalog.SupportDisabled,
		catalog.SupportNo,
		catalog.SupportUnknown,
	}
	out := make([]Style, len(order))
	for i, c := range order {
		out[i] = styles[c]
	}
	return out
}
