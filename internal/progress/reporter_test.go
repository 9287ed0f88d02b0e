package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Description: "Loading data", Out: &buf}

	r.Start(2)
	r.Update(1, "ides/vscode.json")
	r.Update(2, "features/tools.json")
	r.Finish()

	assert.Equal(t, "Loading data: 2 documents\n"+
		"[1/2] ides/vscode.json\n"+
		"[2/2] features/tools.json\n"+
		"Loading data: done\n", buf.String())
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.IsType(t, &CIReporter{}, NewReporter("Loading data"))
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	assert.IsType(t, &TerminalReporter{}, NewReporter("Loading data"))
}
