package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMessageType_String verifies that MessageType values produce the
// expected string representations for CLI output and JSON serialization.
func TestMessageType_String(t *testing.T) {
	tests := []struct {
		mt       MessageType
		expected string
	}{
		{MessageInformation, "information"},
		{MessageChangeReport, "change"},
		{MessageSkippingItem, "skip"},
		{MessageError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mt.String())
		})
	}
}

// TestMessage_Content checks line joining and the blank separator.
func TestMessage_Content(t *testing.T) {
	m := NewMessage(MessageInformation, "first", "second")
	assert.Equal(t, "first\nsecond", m.Content())
	assert.Equal(t, m.Content(), m.String())

	assert.Equal(t, "", BlankLine.Content())
	assert.Equal(t, MessageInformation, BlankLine.Type)
}

// TestMessage_Constructors confirms each helper picks the right type.
func TestMessage_Constructors(t *testing.T) {
	assert.Equal(t, MessageInformation, Info("x").Type)
	assert.Equal(t, MessageChangeReport, Change("x").Type)
	assert.Equal(t, MessageSkippingItem, Skipping("x").Type)
	assert.Equal(t, MessageError, Failure("x").Type)

	assert.Equal(t, "3 occurrences changed!", Change("%d occurrences changed!", 3).Content())
}

// TestMessage_WithBlock verifies that appending a block produces a new
// message and leaves the original untouched.
func TestMessage_WithBlock(t *testing.T) {
	base := Info("Changing everything")
	extended := base.WithBlock("Configuration\n=============\nMatchCase: true\n")

	assert.Equal(t, []string{"Changing everything"}, base.Lines)
	assert.Equal(t, "Changing everything\nConfiguration\n=============\nMatchCase: true", extended.Content())

	twice := extended.WithBlock("Proceed?")
	assert.Equal(t, "Proceed?", twice.Lines[len(twice.Lines)-1])
	assert.Len(t, extended.Lines, 4)
}

// TestMessage_MarshalJSON checks the wire shape used by the JSON reporter.
func TestMessage_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewMessage(MessageError, "a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","content":"a\nb"}`, string(data))
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInvalidArgument, "from and to must differ")
		assert.Equal(t, ExitInvalidArgument, err.Code)
		assert.Equal(t, "from and to must differ", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("no such file or directory")
		err := WrapCLIError(ExitDirectoryNotFound, "directory not found", inner)
		assert.Equal(t, ExitDirectoryNotFound, err.Code)
		assert.Contains(t, err.Error(), "no such file or directory")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is works with unwrapped errors (Go 1.13+ error chain).
	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitConfigError, "failed to read config", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
