package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MessageType classifies a report message. Hosts typically route each type
// to its own visual channel (a colour, a panel), but the engine never
// depends on how a type is rendered.
type MessageType string

const (
	// MessageInformation is general progress or configuration output.
	MessageInformation MessageType = "information"

	// MessageChangeReport describes a change that was made (or is about to be).
	MessageChangeReport MessageType = "change"

	// MessageSkippingItem names a file or directory excluded from processing.
	MessageSkippingItem MessageType = "skip"

	// MessageError reports a per-item failure. The run continues after it.
	MessageError MessageType = "error"
)

// String returns the string representation of MessageType.
// This method satisfies the fmt.Stringer interface.
func (t MessageType) String() string {
	return string(t)
}

// Message is a single entry in the report stream of a rename run.
//
// The body is kept as a list of lines that is joined only when the message
// is rendered, so a multi-line message is assembled once at construction
// time and never mutated afterwards.
type Message struct {
	// Type selects the report channel for this message.
	Type MessageType

	// Lines holds the message body, one entry per line.
	Lines []string
}

// BlankLine is a separator message carrying a single empty line.
var BlankLine = Message{Type: MessageInformation, Lines: []string{""}}

// NewMessage creates a message of the given type from one or more lines.
func NewMessage(t MessageType, lines ...string) Message {
	return Message{Type: t, Lines: lines}
}

// Info creates an Information message whose first line is formatted
// with fmt.Sprintf.
func Info(format string, args ...interface{}) Message {
	return NewMessage(MessageInformation, fmt.Sprintf(format, args...))
}

// Change creates a ChangeReport message.
func Change(format string, args ...interface{}) Message {
	return NewMessage(MessageChangeReport, fmt.Sprintf(format, args...))
}

// Skipping creates a SkippingItem message.
func Skipping(format string, args ...interface{}) Message {
	return NewMessage(MessageSkippingItem, fmt.Sprintf(format, args...))
}

// Failure creates an Error message.
func Failure(format string, args ...interface{}) Message {
	return NewMessage(MessageError, fmt.Sprintf(format, args...))
}

// WithBlock returns a copy of the message with an extra block of text
// appended. The block is separated from the existing body by one line
// break and its own line breaks become separate lines.
func (m Message) WithBlock(block string) Message {
	lines := make([]string, 0, len(m.Lines)+4)
	lines = append(lines, m.Lines...)
	lines = append(lines, strings.Split(strings.TrimRight(block, "\n"), "\n")...)
	return Message{Type: m.Type, Lines: lines}
}

// Content returns the rendered message body with lines joined by "\n".
func (m Message) Content() string {
	return strings.Join(m.Lines, "\n")
}

// String satisfies fmt.Stringer and returns Content().
func (m Message) String() string {
	return m.Content()
}

// MarshalJSON encodes the message as {"type": ..., "content": ...} with the
// lines already joined, which is the shape emitted by the JSON reporter.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    MessageType `json:"type"`
		Content string      `json:"content"`
	}{Type: m.Type, Content: m.Content()})
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidArgument indicates from/to were missing or equal, or a
	// pattern in the configuration could not be compiled.
	ExitInvalidArgument ExitCode = 2

	// ExitDirectoryNotFound indicates the root directory does not exist
	// or is not a directory.
	ExitDirectoryNotFound ExitCode = 3

	// ExitConfigError indicates the configuration file could not be
	// found, read or parsed.
	ExitConfigError ExitCode = 4

	// ExitUserCancelled indicates the user declined the confirmation prompt.
	ExitUserCancelled ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
