package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	InitWriter(buf, false, true)
	defer Init(false, false)

	Debug("hidden", "entry", "app.js")
	Info("Resolved", "entry", "app.js")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	rec := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "Resolved", rec["msg"])
	assert.Equal(t, "app.js", rec["entry"])
}

func TestVerboseEnablesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	InitWriter(buf, true, true)
	defer Init(false, false)

	Debug("walking", "entry", "app.js")
	assert.Contains(t, buf.String(), "walking")
}

func TestSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	InitWriter(buf, false, false)
	defer Init(false, false)

	Close()
	assert.Empty(t, buf.String())

	AddSummaryError("DanglingImport", "from", "app.js", "to", "gone.js")
	AddSummaryError("DanglingImport", "from", "old.js", "to", "stale.js")
	assert.Equal(t, 2, SummaryCount())

	Close()
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "------------"))
	assert.Contains(t, out, "gone.js")
	assert.Contains(t, out, "stale.js")
	assert.Equal(t, 0, SummaryCount())
}
