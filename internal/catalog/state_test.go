package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateIndexes(t *testing.T) {
	vscode := &DeveloperInterface{ID: "vscode", Name: "VS Code"}
	dup := &DeveloperInterface{ID: "vscode", Name: "Duplicate"}
	copilot := &AIClient{ID: "copilot", Name: "GitHub Copilot"}
	tools := &Feature{ID: "tools"}
	stdio := &Feature{ID: "stdio"}

	s := NewState(
		[]*DeveloperInterface{vscode, nil, dup},
		[]*AIClient{copilot},
		[]*Feature{tools},
		[]*Feature{stdio},
		nil,
	)

	assert.Len(t, s.IDEs, 1)
	assert.Same(t, vscode, s.IDE("vscode"))
	assert.Same(t, copilot, s.Client("copilot"))
	assert.Same(t, tools, s.Feature("tools"))
	assert.Same(t, stdio, s.Feature("stdio"))
	assert.Nil(t, s.IDE("cursor"))
	assert.False(t, s.Empty())
}

func TestStateEmpty(t *testing.T) {
	var nilState *State
	assert.True(t, nilState.Empty())
	assert.Nil(t, nilState.IDE("x"))
	assert.True(t, NewState(nil, nil, nil, nil, nil).Empty())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "zed", (&DeveloperInterface{ID: "zed"}).DisplayName())
	assert.Equal(t, "cline", (&AIClient{ID: "cline"}).DisplayName())

	native := &AIClient{ID: NativeClientID, NativeNames: map[string]string{"cursor": "Cursor Agent"}}
	assert.Equal(t, "Cursor Agent", native.NativeName("cursor"))
	assert.Empty(t, native.NativeName("zed"))

	var nilClient *AIClient
	assert.Empty(t, nilClient.NativeName("cursor"))
}

func TestNewStateFeatureAndTransportShareID(t *testing.T) {
	stdioFeature := &Feature{ID: "stdio", Title: "feature"}
	stdioTransport := &Feature{ID: "stdio", Title: "transport"}
	sse := &Feature{ID: "sse"}

	s := NewState(nil, nil, []*Feature{stdioFeature}, []*Feature{stdioTransport, sse}, nil)

	require.Len(t, s.Features, 1)
	require.Len(t, s.Transports, 2)
	assert.Same(t, stdioFeature, s.Feature("stdio"))
	assert.Same(t, sse, s.Feature("sse"))
	assert.Same(t, stdioFeature, s.Lookup(KindFeature, "stdio"))
	assert.Same(t, stdioTransport, s.Lookup(KindTransport, "stdio"))
	assert.Nil(t, s.Lookup(KindFeature, "sse"))
	assert.Nil(t, s.Lookup(Kind("other"), "stdio"))

	assert.Equal(t, KindFeature, s.KindOf(stdioFeature))
	assert.Equal(t, KindTransport, s.KindOf(stdioTransport))
	assert.Equal(t, KindTransport, s.KindOf(sse))
	assert.Equal(t, KindFeature, s.KindOf(&Feature{ID: "elsewhere"}))

	assert.Equal(t, s.Transports, s.Collection(KindTransport))
	assert.Equal(t, s.Features, s.Collection(KindFeature))
	assert.Equal(t, []string{"stdio"}, s.SharedIDs())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"", "", true},
		{"feature", KindFeature, true},
		{"features", KindFeature, true},
		{"transport", KindTransport, true},
		{"transports", KindTransport, true},
		{"Transport", "", false},
		{"roots", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
