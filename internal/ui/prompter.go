package ui

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/prompt"
)

// Prompter shows each menu in its own Bubble Tea program.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	width int
}

// NewPrompter returns a Prompter bound to the given terminal streams.
func NewPrompter(in io.Reader, out io.Writer, width int) *Prompter {
	return &Prompter{in: in, out: out, width: width}
}

// Choose implements menu.Prompter.
func (p *Prompter) Choose(m menu.Menu) (int, bool) {
	model := NewModel(m, p.width)
	opts := []tea.ProgramOption{}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		logging.Error(err)
		return 0, false
	}
	mdl, ok := final.(*Model)
	if !ok {
		return 0, false
	}
	return mdl.Result()
}

// Asker asks free-text and yes/no questions with huh forms.
type Asker struct {
	in  io.Reader
	out io.Writer
}

// NewAsker returns an Asker bound to the given terminal streams.
func NewAsker(in io.Reader, out io.Writer) *Asker {
	return &Asker{in: in, out: out}
}

// Ask shows a single-field input. Blank answers yield def; validate sees the
// answer after that substitution.
func (a *Asker) Ask(question, def string, validate func(string) error) (string, error) {
	value := def
	input := huh.NewInput().Title(question).Value(&value)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(withDefault(s, def))
		})
	}
	if err := a.run(huh.NewGroup(input)); err != nil {
		return "", err
	}
	return withDefault(value, def), nil
}

// Confirm shows a yes/no question.
func (a *Asker) Confirm(question string, def bool) (bool, error) {
	value := def
	confirm := huh.NewConfirm().Title(question).Affirmative("Yes").Negative("No").Value(&value)
	if err := a.run(huh.NewGroup(confirm)); err != nil {
		return false, err
	}
	return value, nil
}

// Println writes informational output between prompts.
func (a *Asker) Println(text string) {
	if a.out == nil {
		return
	}
	_, _ = io.WriteString(a.out, text+"\n")
}

func (a *Asker) run(group *huh.Group) error {
	form := huh.NewForm(group).WithShowHelp(false)
	if a.in != nil {
		form = form.WithInput(a.in)
	}
	if a.out != nil {
		form = form.WithOutput(a.out)
	}
	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return prompt.ErrCanceled
	}
	return err
}

func withDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
