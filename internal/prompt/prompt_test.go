package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLine_Input verifies line reading, CRLF trimming and EOF handling.
func TestLine_Input(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("cat\r\ndog\nlast"), &out)

	first, err := p.Input("String to replace")
	require.NoError(t, err)
	assert.Equal(t, "cat", first)

	second, err := p.Input("String to replace it with")
	require.NoError(t, err)
	assert.Equal(t, "dog", second)

	third, err := p.Input("Directory")
	require.NoError(t, err)
	assert.Equal(t, "last", third, "a final line without newline still counts")

	_, err = p.Input("More")
	assert.True(t, errors.Is(err, ErrAborted))

	assert.Contains(t, out.String(), "String to replace: ")
	assert.Contains(t, out.String(), "String to replace it with: ")
}

// TestLine_InputEmptyLine verifies that an empty answer is returned as "".
func TestLine_InputEmptyLine(t *testing.T) {
	p := NewLine(strings.NewReader("\n"), &bytes.Buffer{})
	v, err := p.Input("to")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

// TestLine_Confirm covers the accepted answers.
func TestLine_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewLine(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Proceed?", "Changing everything")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Changing everything\n(press y to confirm): ", out.String())
		})
	}
}

// TestLine_ConfirmEOF verifies that closed input aborts, and that the
// title stands in for a missing description.
func TestLine_ConfirmEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader(""), &out)
	_, err := p.Confirm("Proceed?", "")
	assert.True(t, errors.Is(err, ErrAborted))
	assert.Equal(t, "Proceed?\n(press y to confirm): ", out.String())
}

// TestNew_NonTerminal verifies the fallback for redirected streams.
func TestNew_NonTerminal(t *testing.T) {
	p := New(nil, nil)
	_, ok := p.(*Line)
	assert.True(t, ok)
}
