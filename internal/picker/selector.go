// Package picker implements the interactive list-navigation engine: a paged
// selector over randomly sampled windows of a candidate list, a bounded
// multi-selector built on the same windows, and a tree walker that descends
// a menu.Node hierarchy one level per prompt.
//
// Every interaction goes through a menu.Prompter. A prompter returning false
// ("no value") is treated as cancellation; the engine never reports user
// behaviour as an error.
package picker

import (
	"fmt"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
	"github.com/atomicstack/persona-picker/internal/ui/state"
)

const (
	DefaultPageSize    = 10
	DefaultIncrement   = 5
	DefaultMaxSelect   = 5
	defaultSection     = "Select an item or choose an action:"
	defaultSelectTitle = "Select an option:"
)

// Outcome reports how a paged selection ended.
type Outcome int

const (
	Selected Outcome = iota
	Skipped
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Skipped:
		return "skip"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options configures a single paged selection.
type Options struct {
	ID        string
	Title     string
	Header    []string
	PageSize  int
	Increment int
	AllowSkip bool
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Increment <= 0 {
		o.Increment = DefaultIncrement
	}
	if o.Title == "" {
		o.Title = defaultSelectTitle
	}
	return o
}

// Selector runs paged and plain selections against a prompter.
type Selector struct {
	prompter menu.Prompter
	rng      state.Rand
}

// New returns a Selector. rng drives page sampling; pass a seeded source for
// reproducible sessions.
func New(prompter menu.Prompter, rng state.Rand) *Selector {
	return &Selector{prompter: prompter, rng: rng}
}

// Select offers items through a randomly sampled window until the user picks
// an item, skips (when allowed) or cancels. An empty list is cancelled
// without prompting.
func (s *Selector) Select(items []string, opts Options) (string, Outcome) {
	idx, outcome := s.SelectIndex(items, opts)
	if outcome != Selected {
		return "", outcome
	}
	return items[idx], Selected
}

// SelectIndex is Select reporting the position of the chosen item, so
// callers that decorate labels can map the choice back to their data.
func (s *Selector) SelectIndex(items []string, opts Options) (int, Outcome) {
	opts = opts.withDefaults()
	if len(items) == 0 {
		events.Selector.Cancel(opts.ID)
		return -1, Cancelled
	}
	win := state.NewWindow(len(items), opts.PageSize, opts.Increment, s.rng)
	events.Selector.Open(opts.ID, len(items), len(win.Displayed()))
	notice := ""
	for {
		m := pageMenu(opts, items, win)
		m.Notice = notice
		notice = ""
		n, ok := s.prompter.Choose(m)
		if !ok {
			events.Selector.Cancel(opts.ID)
			return -1, Cancelled
		}
		opt, valid := m.Option(n)
		if !valid {
			events.Selector.Invalid(opts.ID, n, m.Max())
			notice = rangeNotice(m)
			continue
		}
		switch opt.Kind {
		case menu.KindItem:
			events.Selector.Select(opts.ID, items[opt.Index])
			return opt.Index, Selected
		case menu.KindShowMore:
			win.ShowMore()
			events.Selector.ShowMore(opts.ID, len(win.Displayed()))
		case menu.KindRegenerate:
			win.Regenerate()
			events.Selector.Regenerate(opts.ID, len(win.Displayed()))
		case menu.KindSkip:
			events.Selector.Skip(opts.ID)
			return -1, Skipped
		}
	}
}

// ChooseOne presents every label in a plain numbered menu and returns the
// 0-based index of the choice. ok is false on cancellation or when labels is
// empty.
func (s *Selector) ChooseOne(id, title string, labels []string) (int, bool) {
	if len(labels) == 0 {
		return -1, false
	}
	m := menu.Plain(id, title, labels)
	for {
		n, ok := s.prompter.Choose(m)
		if !ok {
			events.Selector.Cancel(id)
			return -1, false
		}
		if opt, valid := m.Option(n); valid {
			events.Selector.Select(id, opt.Label)
			return opt.Index, true
		}
		events.Selector.Invalid(id, n, m.Max())
		m.Notice = rangeNotice(m)
	}
}

func pageMenu(opts Options, items []string, win *state.Window) menu.Menu {
	displayed := win.Displayed()
	options := make([]menu.Option, 0, len(displayed)+3)
	for _, idx := range displayed {
		options = append(options, menu.Option{Label: items[idx], Kind: menu.KindItem, Index: idx})
	}
	if win.CanShowMore() {
		options = append(options, action(menu.KindShowMore, menu.LabelShowMore))
	}
	options = append(options, action(menu.KindRegenerate, menu.LabelRegenerate))
	if opts.AllowSkip {
		options = append(options, action(menu.KindSkip, menu.LabelSkip))
	}
	return menu.Menu{
		ID:      opts.ID,
		Title:   opts.Title,
		Header:  opts.Header,
		Section: defaultSection,
		Options: options,
	}
}

func action(kind menu.Kind, label string) menu.Option {
	return menu.Option{Label: label, Kind: kind, Index: -1}
}

func rangeNotice(m menu.Menu) string {
	return fmt.Sprintf("Please enter a number between 1 and %d.", m.Max())
}
