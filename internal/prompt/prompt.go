// Package prompt asks the user for missing input and for confirmation.
//
// On a terminal, prompts are rendered with github.com/charmbracelet/huh.
// When stdin or stdout is redirected, a line-based prompter reads answers
// one line at a time, which keeps the CLI scriptable (`yes | renamer ...`).
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user interrupts a prompt (Ctrl+C) or
// input ends before an answer was given.
var ErrAborted = errors.New("prompt aborted")

// Prompter collects free-text answers and yes/no confirmations.
type Prompter interface {
	// Input asks for a line of text.
	Input(title string) (string, error)

	// Confirm shows description and asks a yes/no question. It returns true
	// when the user answered yes.
	Confirm(title, description string) (bool, error)
}

// New picks a Form when both in and out are terminals, and a Line
// prompter otherwise.
func New(in, out *os.File) Prompter {
	if isTTY(in) && isTTY(out) {
		return &Form{in: in, out: out}
	}
	return NewLine(in, out)
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Line reads answers line by line from a reader.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line-based prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Input prints "<title>: " and returns the next line without its line ending.
func (l *Line) Input(title string) (string, error) {
	fmt.Fprintf(l.out, "%s: ", title)
	return l.readLine()
}

// Confirm prints the description (or the title when there is no
// description) followed by "(press y to confirm): " and accepts "y" or
// "yes" in any case.
func (l *Line) Confirm(title, description string) (bool, error) {
	if description == "" {
		description = title
	}
	fmt.Fprintln(l.out, description)
	fmt.Fprint(l.out, "(press y to confirm): ")

	answer, err := l.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Form renders prompts as interactive huh fields.
type Form struct {
	in  io.Reader
	out io.Writer
}

// Input shows a single-line text field.
func (f *Form) Input(title string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)

	if err := f.run(huh.NewForm(huh.NewGroup(field))); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm shows a Yes/No selector with the description above it.
func (f *Form) Confirm(title, description string) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm)

	if err := f.run(huh.NewForm(huh.NewGroup(field))); err != nil {
		return false, err
	}
	return confirm, nil
}

func (f *Form) run(form *huh.Form) error {
	err := form.WithInput(f.in).WithOutput(f.out).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
