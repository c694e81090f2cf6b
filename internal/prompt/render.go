package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/theme"
)

const ellipsis = "…"

// NoCursor disables row highlighting in Lines.
const NoCursor = -1

// Lines renders m as display lines. cursor is the 0-based option index to
// highlight, or NoCursor. Labels are cut to width when width is positive.
func Lines(m menu.Menu, styles *theme.Styles, width, cursor int) []string {
	lines := make([]string, 0, len(m.Options)+len(m.Header)+6)
	if m.Title != "" {
		lines = append(lines, theme.Render(styles.Title, fit(m.Title, width)))
	}
	for _, h := range m.Header {
		lines = append(lines, theme.Render(styles.Header, fit(h, width)))
	}
	if m.Title != "" || len(m.Header) > 0 {
		lines = append(lines, "")
	}
	if m.Section != "" {
		lines = append(lines, theme.Render(styles.Section, fit(m.Section, width)))
	}
	digits := len(fmt.Sprint(len(m.Options)))
	emptyShown := false
	for i, opt := range m.Options {
		if opt.Kind != menu.KindItem && m.ItemCount() == 0 && m.Empty != "" && !emptyShown {
			lines = append(lines, "  "+theme.Render(styles.Empty, fit(m.Empty, width)))
			emptyShown = true
		}
		lines = append(lines, optionLine(i, opt, digits, styles, width, i == cursor))
	}
	if m.Notice != "" {
		lines = append(lines, "", theme.Render(styles.Notice, fit(m.Notice, width)))
	}
	return lines
}

// Render joins Lines with newlines.
func Render(m menu.Menu, styles *theme.Styles, width int) string {
	return strings.Join(Lines(m, styles, width, NoCursor), "\n")
}

func optionLine(i int, opt menu.Option, digits int, styles *theme.Styles, width int, selected bool) string {
	number := fmt.Sprintf("%*d.", digits, i+1)
	indicator := "  "
	if selected {
		indicator = "> "
	}
	prefixWidth := lipgloss.Width(indicator + number + " ")
	label := opt.Label
	if width > 0 {
		label = fit(label, width-prefixWidth)
	}
	labelStyle := styles.Item
	if opt.Kind != menu.KindItem {
		labelStyle = styles.Action
	}
	if selected {
		return theme.Render(styles.SelectedItemIndicator, indicator) +
			theme.Render(styles.Number, number) + " " +
			theme.Render(styles.SelectedItem, label)
	}
	return theme.Render(styles.ItemIndicator, indicator) +
		theme.Render(styles.Number, number) + " " +
		theme.Render(labelStyle, label)
}

func fit(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width <= 1 {
		return truncate.String(text, uint(width))
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
