package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness feeds key presses to a choice model without starting a program,
// so tests can assert on cursor, view and result after each step.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness wraps model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes msg through the model and follows the returned commands until
// they run dry or the model asks to quit.
func (h *Harness) Send(msg tea.Msg) {
	for msg != nil && !h.quit {
		_, cmd := h.model.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
		}
	}
}

// Press sends one key message per key type.
func (h *Harness) Press(keys ...tea.KeyType) {
	for _, k := range keys {
		h.Send(tea.KeyMsg{Type: k})
	}
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Quit reports whether the model returned tea.Quit.
func (h *Harness) Quit() bool {
	return h.quit
}

// Result is shorthand for Model().Result().
func (h *Harness) Result() (int, bool) {
	return h.model.Result()
}

// View returns the current view string.
func (h *Harness) View() string {
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
