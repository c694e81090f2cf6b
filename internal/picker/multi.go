package picker

import (
	"errors"
	"fmt"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/ui/state"
)

// MultiOptions configures a bounded multi-selection.
type MultiOptions struct {
	ID          string
	Title       string
	Max         int
	InitialShow int
	Increment   int
	// Seed is a previous value for the same field; selection resumes from it.
	Seed []string
}

func (o MultiOptions) withDefaults() MultiOptions {
	if o.Max <= 0 {
		o.Max = DefaultMaxSelect
	}
	if o.InitialShow <= 0 {
		o.InitialShow = DefaultPageSize
	}
	if o.Increment <= 0 {
		o.Increment = DefaultIncrement
	}
	if o.Title == "" {
		o.Title = fmt.Sprintf("Select up to %d item(s):", o.Max)
	}
	return o
}

// SelectMany accumulates up to opts.Max items from items. Items already in
// the accumulator are never offered. Finishing or cancelling commits the
// accumulator, so partial progress is always kept.
func (s *Selector) SelectMany(items []string, opts MultiOptions) []string {
	opts = opts.withDefaults()
	sel := state.NewSelection(opts.Max, opts.Seed)
	if len(items) == 0 {
		events.Multi.Finish(opts.ID, sel.Items())
		return sel.Items()
	}
	win := state.NewWindow(len(items), opts.InitialShow, opts.Increment, s.rng)
	events.Selector.Open(opts.ID, len(items), len(win.Displayed()))
	notice := ""
	for {
		m := multiMenu(opts, items, win, sel)
		m.Notice = notice
		notice = ""
		n, ok := s.prompter.Choose(m)
		if !ok {
			break
		}
		opt, valid := m.Option(n)
		if !valid {
			events.Selector.Invalid(opts.ID, n, m.Max())
			notice = rangeNotice(m)
			continue
		}
		switch opt.Kind {
		case menu.KindItem:
			item := items[opt.Index]
			if err := sel.Add(item); err != nil {
				if errors.Is(err, state.ErrSelectionFull) {
					events.Multi.Reject(opts.ID, item, opts.Max)
					notice = fmt.Sprintf("Cannot add more than %d item(s).", opts.Max)
				}
				continue
			}
			events.Multi.Add(opts.ID, item, sel.Len(), opts.Max)
			notice = fmt.Sprintf("Added: %s", item)
		case menu.KindShowMore:
			win.ShowMore()
			events.Selector.ShowMore(opts.ID, len(win.Displayed()))
		case menu.KindRegenerate:
			win.Regenerate()
			events.Selector.Regenerate(opts.ID, len(win.Displayed()))
		case menu.KindFinish:
			events.Multi.Finish(opts.ID, sel.Items())
			return sel.Items()
		}
	}
	events.Multi.Finish(opts.ID, sel.Items())
	return sel.Items()
}

func multiMenu(opts MultiOptions, items []string, win *state.Window, sel *state.Selection) menu.Menu {
	header := make([]string, 0, sel.Len()+1)
	header = append(header, fmt.Sprintf("Currently Selected (%d/%d):", sel.Len(), sel.Max()))
	if sel.Len() == 0 {
		header = append(header, "(None)")
	}
	for _, item := range sel.Items() {
		header = append(header, "- "+item)
	}

	displayed := win.Displayed()
	options := make([]menu.Option, 0, len(displayed)+3)
	for _, idx := range displayed {
		if sel.IsSelected(items[idx]) {
			continue
		}
		options = append(options, menu.Option{Label: items[idx], Kind: menu.KindItem, Index: idx})
	}
	if win.CanShowMore() {
		options = append(options, action(menu.KindShowMore, menu.LabelShowMore))
	}
	options = append(options, action(menu.KindRegenerate, menu.LabelRegenerate))
	options = append(options, action(menu.KindFinish, menu.LabelFinish))
	return menu.Menu{
		ID:      opts.ID,
		Title:   opts.Title,
		Header:  header,
		Section: "Available Options:",
		Empty:   "(No more selectable options in current view)",
		Options: options,
	}
}
