// Package prompt implements the line-oriented prompter used when stdin is not
// a terminal or when the user asks for plain output. It renders menus with
// the shared theme and reads one answer per line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/theme"
)

// ErrCanceled is returned by Ask and Confirm when input ends.
var ErrCanceled = errors.New("input canceled")

// Line reads choices and answers from a line-buffered reader.
type Line struct {
	in     *bufio.Reader
	out    io.Writer
	styles *theme.Styles
	width  int
}

// NewLine returns a prompter reading from in and writing menus to out.
// Labels wider than width are truncated; width <= 0 disables truncation.
func NewLine(in io.Reader, out io.Writer, width int) *Line {
	return &Line{
		in:     bufio.NewReader(in),
		out:    out,
		styles: theme.Default(),
		width:  width,
	}
}

// Choose renders m and returns the chosen number. Blank input and end of
// input report no value. Non-numeric and out-of-range answers re-prompt
// without re-rendering the menu.
func (l *Line) Choose(m menu.Menu) (int, bool) {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, Render(m, l.styles, l.width))
	for {
		fmt.Fprint(l.out, theme.Render(l.styles.Prompt, fmt.Sprintf("Enter your choice (1-%d): ", m.Max())))
		text, ok := l.readLine()
		if !ok || text == "" {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(l.out, theme.Render(l.styles.Error, "Invalid input. Please enter a number."))
			continue
		}
		if !m.Valid(n) {
			fmt.Fprintln(l.out, theme.Render(l.styles.Error, fmt.Sprintf("Please enter a number between 1 and %d.", m.Max())))
			continue
		}
		return n, true
	}
}

// Ask prints question and returns the trimmed answer. Blank answers yield
// def. validate, when set, rejects answers with a message and re-asks.
func (l *Line) Ask(question, def string, validate func(string) error) (string, error) {
	for {
		label := question
		if def != "" {
			label = fmt.Sprintf("%s [%s]", question, def)
		}
		fmt.Fprint(l.out, theme.Render(l.styles.Prompt, label+": "))
		text, ok := l.readLine()
		if !ok {
			return "", ErrCanceled
		}
		if text == "" {
			text = def
		}
		if validate != nil {
			if err := validate(text); err != nil {
				fmt.Fprintln(l.out, theme.Render(l.styles.Error, err.Error()))
				continue
			}
		}
		return text, nil
	}
}

// Confirm asks a yes/no question. Blank answers yield def.
func (l *Line) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprint(l.out, theme.Render(l.styles.Prompt, fmt.Sprintf("%s (%s): ", question, hint)))
		text, ok := l.readLine()
		if !ok {
			return false, ErrCanceled
		}
		switch strings.ToLower(text) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.out, theme.Render(l.styles.Error, "Please answer y or n."))
	}
}

// Println writes a line of informational output.
func (l *Line) Println(text string) {
	fmt.Fprintln(l.out, text)
}

func (l *Line) readLine() (string, bool) {
	text, err := l.in.ReadString('\n')
	if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
		return "", false
	}
	return strings.TrimSpace(text), true
}
