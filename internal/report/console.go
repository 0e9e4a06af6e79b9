package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/shinji-kodama/renamer/internal/model"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Console writes messages as plain lines, one colour per message type.
// Information messages are left unstyled.
type Console struct {
	out       io.Writer
	styles    map[model.MessageType]lipgloss.Style
	clearable bool
}

// NewConsole creates a Console reporter writing to w. Colours and screen
// clearing are only used when w is a terminal.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Console{
		out: w,
		styles: map[model.MessageType]lipgloss.Style{
			model.MessageError:        base.Foreground(lipgloss.Color("1")),
			model.MessageChangeReport: base.Foreground(lipgloss.Color("2")),
			model.MessageSkippingItem: base.Foreground(lipgloss.Color("6")),
		},
		clearable: IsTerminal(w),
	}
}

// Report prints the message. Each line is styled on its own so multi-line
// messages are not padded to a common width.
func (c *Console) Report(m model.Message) {
	style, styled := c.styles[m.Type]
	for _, line := range m.Lines {
		if styled && line != "" {
			line = style.Render(line)
		}
		fmt.Fprintln(c.out, line)
	}
}

// Clear erases the terminal. It does nothing when output is redirected,
// so logs and pipes keep the full history.
func (c *Console) Clear() {
	if c.clearable {
		fmt.Fprint(c.out, clearScreen)
	}
}

// JSON writes every message as a single-line JSON object:
//
//	{"type":"change","content":"3 occurrences changed!"}
type JSON struct {
	enc *json.Encoder
}

// NewJSON creates a JSON-lines reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Report encodes the message. Encoding a Message cannot fail, and a write
// error on the report stream has nowhere else to go, so it is dropped.
func (j *JSON) Report(m model.Message) {
	_ = j.enc.Encode(m)
}

// Clear is a no-op: a JSON stream is append-only.
func (j *JSON) Clear() {}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS
// pseudo-terminals).
func IsTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
