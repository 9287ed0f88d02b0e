package catalog

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComboKey(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ComboKey
		wantErr bool
	}{
		{name: "plugin", in: "vscode+copilot", want: ComboKey{IDE: "vscode", Client: "copilot"}},
		{name: "native", in: "cursor+native", want: ComboKey{IDE: "cursor", Client: "native"}},
		{name: "missing separator", in: "vscode", wantErr: true},
		{name: "empty ide", in: "+copilot", wantErr: true},
		{name: "empty client", in: "vscode+", wantErr: true},
		{name: "extra separator", in: "a+b+c", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseComboKey(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidComboKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestComboKeyIsNative(t *testing.T) {
	assert.True(t, NewComboKey("zed", NativeClientID).IsNative())
	assert.False(t, NewComboKey("zed", "cline").IsNative())
}

func TestComboKeyAsJSONMapKey(t *testing.T) {
	in := map[ComboKey]string{NewComboKey("vscode", "copilot"): "y"}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vscode+copilot":"y"}`, string(data))

	var out map[ComboKey]string
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
