package ui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/prompt"
	"github.com/atomicstack/persona-picker/internal/theme"
	"github.com/atomicstack/persona-picker/internal/ui/state"
)

const (
	footerHelp = "↑/↓ move · type a number · enter choose · esc cancel"
	pageRows   = 10
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for a single numbered menu.
type Model struct {
	menu       menu.Menu
	cursor     state.Cursor
	input      textinput.Model
	width      int
	fixedWidth bool
	errMsg     string
	choice     int
	done       bool
	canceled   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel prepares a model for m. A positive width pins the render width;
// otherwise the terminal size reported by Bubble Tea is used.
func NewModel(m menu.Menu, width int) *Model {
	ti := textinput.New()
	ti.Prompt = fmt.Sprintf("Enter your choice (1-%d): ", m.Max())
	ti.CharLimit = len(strconv.Itoa(m.Max()))
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		ti.PromptStyle = styles.Prompt.Copy()
	}
	ti.Focus()
	mdl := &Model{
		menu:   m,
		cursor: state.NewCursor(m.Max()),
		input:  ti,
		errMsg: m.Notice,
	}
	if width > 0 {
		mdl.width = width
		mdl.fixedWidth = true
	}
	mdl.registerHandlers()
	return mdl
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Result returns the chosen 1-based number, or false when the menu was
// cancelled or is still open.
func (m *Model) Result() (int, bool) {
	if !m.done || m.canceled {
		return 0, false
	}
	return m.choice, true
}

// Cursor returns the highlighted option index.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(size.Width, size.Height)
	if !m.fixedWidth {
		m.width = size.Width
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m.cancel(events.UIReasonCtrlC)
	case tea.KeyEsc:
		return m.cancel(events.UIReasonEscape)
	case tea.KeyUp, tea.KeyCtrlP:
		m.moveCursor(-1)
		return nil
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		m.moveCursor(1)
		return nil
	case tea.KeyHome:
		m.input.SetValue("")
		m.cursor.Home()
		return nil
	case tea.KeyEnd:
		m.input.SetValue("")
		m.cursor.End()
		return nil
	case tea.KeyPgUp:
		m.input.SetValue("")
		m.cursor.PageUp(pageRows)
		return nil
	case tea.KeyPgDown:
		m.input.SetValue("")
		m.cursor.PageDown(pageRows)
		return nil
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r < '0' || r > '9' {
				events.UI.Key(m.menu.ID, key.String())
				return nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.followInput()
	return cmd
}

func (m *Model) moveCursor(delta int) {
	m.input.SetValue("")
	m.cursor.Move(delta)
}

// followInput moves the cursor onto the typed number when it is in range.
func (m *Model) followInput() {
	n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
	if err != nil || !m.menu.Valid(n) {
		return
	}
	m.cursor.Set(n - 1)
	m.errMsg = ""
}

func (m *Model) submit() tea.Cmd {
	if m.menu.Max() == 0 {
		return m.cancel(events.UIReasonEscape)
	}
	choice := m.cursor.Pos() + 1
	if typed := strings.TrimSpace(m.input.Value()); typed != "" {
		n, err := strconv.Atoi(typed)
		if err != nil || !m.menu.Valid(n) {
			m.errMsg = fmt.Sprintf("Please enter a number between 1 and %d.", m.menu.Max())
			m.input.SetValue("")
			return nil
		}
		choice = n
	}
	m.choice = choice
	m.done = true
	events.UI.Choose(m.menu.ID, choice)
	return tea.Quit
}

func (m *Model) cancel(reason string) tea.Cmd {
	m.done = true
	m.canceled = true
	events.UI.Cancel(m.menu.ID, reason)
	return tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	shown := m.menu
	shown.Notice = ""
	lines := prompt.Lines(shown, styles, m.width, m.cursor.Pos())
	lines = append(lines, "", m.input.View())
	if m.errMsg != "" {
		lines = append(lines, theme.Render(styles.Notice, m.errMsg))
	}
	lines = append(lines, theme.Render(styles.Footer, footerHelp))
	return strings.Join(lines, "\n")
}
