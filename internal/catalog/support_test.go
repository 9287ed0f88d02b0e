package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSupport(t *testing.T) {
	tests := []struct {
		in   string
		want Support
	}{
		{"y", Support{Code: SupportYes}},
		{"a", Support{Code: SupportPartial}},
		{"n", Support{Code: SupportNo}},
		{"u", Support{Code: SupportUnknown}},
		{"d", Support{Code: SupportDisabled}},
		{"n #1", Support{Code: SupportNo, NoteRef: "1"}},
		{"a #12", Support{Code: SupportPartial, NoteRef: "12"}},
		{"y#3", Support{Code: SupportYes, NoteRef: "3"}},
		{"d   #4", Support{Code: SupportDisabled, NoteRef: "4"}},
		{"weird", Unknown},
		{"", Unknown},
		{"Y", Unknown},
		{"y #", Unknown},
		{"y #x", Unknown},
		{" y", Unknown},
		{"y #1 extra", Unknown},
		{"yn", Unknown},
		{"y\t#1", Unknown},
		{"y\n#2", Unknown},
		{"y \t #3", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSupport(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Code.Valid())
		})
	}
}

func TestValidSupportStringSpacesOnly(t *testing.T) {
	assert.True(t, ValidSupportString("y  #1"))
	assert.True(t, ValidSupportString("n#1"))
	assert.False(t, ValidSupportString("y\t#1"))
	assert.False(t, ValidSupportString("y\n#2"))
	assert.False(t, ValidSupportString("y\r\n#2"))
}

func TestSupportString(t *testing.T) {
	assert.Equal(t, "y", Support{Code: SupportYes}.String())
	assert.Equal(t, "n #1", Support{Code: SupportNo, NoteRef: "1"}.String())
	assert.Equal(t, ParseSupport("a #7"), ParseSupport(ParseSupport("a #7").String()))
}

func TestSupportHasNote(t *testing.T) {
	assert.False(t, ParseSupport("y").HasNote())
	assert.True(t, ParseSupport("y #2").HasNote())
}

func TestSupportCodeValid(t *testing.T) {
	assert.False(t, SupportCode("x").Valid())
	assert.False(t, SupportCode("").Valid())
}
