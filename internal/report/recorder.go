package report

import "github.com/shinji-kodama/renamer/internal/model"

// Recorder keeps every reported message in memory.
type Recorder struct {
	// Messages holds the messages reported since the last Clear.
	Messages []model.Message

	// History holds every message ever reported, Clear notwithstanding.
	History []model.Message

	// Clears counts Clear calls.
	Clears int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends m.
func (r *Recorder) Report(m model.Message) {
	r.Messages = append(r.Messages, m)
	r.History = append(r.History, m)
}

// Clear drops the visible messages and keeps the history.
func (r *Recorder) Clear() {
	r.Messages = nil
	r.Clears++
}

// OfType returns the contents of visible messages with the given type, in
// report order.
func (r *Recorder) OfType(t model.MessageType) []string {
	var out []string
	for _, m := range r.Messages {
		if m.Type == t {
			out = append(out, m.Content())
		}
	}
	return out
}
