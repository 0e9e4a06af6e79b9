// Package report renders the message stream of a rename run.
//
// Three reporters are provided:
//   - Console writes each message as text, coloured by type with
//     github.com/charmbracelet/lipgloss when the writer is a terminal
//   - JSON writes one JSON object per message for machine consumption
//   - Recorder keeps messages in memory (used by tests and embedders)
//
// All of them satisfy rename.Reporter: Report plus a Clear operation that
// discards what was shown so far.
package report
