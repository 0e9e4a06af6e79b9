package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/renamer/internal/model"
)

// TestConsole_Report verifies plain output when the writer is not a
// terminal: no escape codes, one line per message line.
func TestConsole_Report(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Report(model.Info("Skipping: "))
	c.Report(model.NewMessage(model.MessageSkippingItem, "\tExtensions: tmp", "\tFiles: "))
	c.Report(model.Failure("Could not move the file cat.txt, reason: %s", "busy"))
	c.Report(model.BlankLine)

	assert.Equal(t,
		"Skipping: \n\tExtensions: tmp\n\tFiles: \nCould not move the file cat.txt, reason: busy\n\n",
		buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

// TestConsole_ClearOnPipe verifies that Clear leaves redirected output
// untouched.
func TestConsole_ClearOnPipe(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Report(model.Info("kept"))
	c.Clear()
	assert.Equal(t, "kept\n", buf.String())
}

// TestJSON_Report verifies one object per line with joined content.
func TestJSON_Report(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)

	j.Report(model.Change("Changed %d occurrences", 2))
	j.Report(model.NewMessage(model.MessageInformation, "a", "b"))
	j.Clear()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "change", first["type"])
	assert.Equal(t, "Changed 2 occurrences", first["content"])

	assert.JSONEq(t, `{"type":"information","content":"a\nb"}`, lines[1])
}

// TestRecorder verifies Clear semantics and filtering.
func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Report(model.Info("before"))
	r.Clear()
	r.Report(model.Skipping("skip me"))
	r.Report(model.Failure("boom"))
	r.Report(model.Skipping("skip me too"))

	assert.Equal(t, 1, r.Clears)
	assert.Len(t, r.Messages, 3)
	assert.Len(t, r.History, 4)
	assert.Equal(t, []string{"skip me", "skip me too"}, r.OfType(model.MessageSkippingItem))
	assert.Equal(t, []string{"boom"}, r.OfType(model.MessageError))
	assert.Empty(t, r.OfType(model.MessageChangeReport))
}

// TestIsTerminal covers non-file writers.
func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}
