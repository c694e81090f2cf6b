package menu

// Kind classifies a numbered menu option.
type Kind int

const (
	KindItem Kind = iota
	KindShowMore
	KindRegenerate
	KindSkip
	KindFinish
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindShowMore:
		return "show-more"
	case KindRegenerate:
		return "regenerate"
	case KindSkip:
		return "skip"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Default action labels.
const (
	LabelShowMore   = "Show More Options"
	LabelRegenerate = "Show New Options (Regenerate List)"
	LabelSkip       = "Stop here and use current selection"
	LabelFinish     = "Finish Selecting"
)

// Option is one numbered entry of a rendered menu.
type Option struct {
	Label string
	Kind  Kind
	// Index points into the candidate list for KindItem options, -1 otherwise.
	Index int
}

// Menu is a single numbered prompt. Options are numbered 1..len(Options)
// in slice order.
type Menu struct {
	ID     string
	Title  string
	Header []string
	// Section is printed between the header block and the options.
	Section string
	// Empty is printed in place of items when no KindItem option exists.
	Empty   string
	Options []Option
	Notice  string
}

// Max returns the highest valid choice.
func (m Menu) Max() int {
	return len(m.Options)
}

// Valid reports whether n addresses an option.
func (m Menu) Valid(n int) bool {
	return n >= 1 && n <= len(m.Options)
}

// Option returns the option for a 1-based choice.
func (m Menu) Option(n int) (Option, bool) {
	if !m.Valid(n) {
		return Option{}, false
	}
	return m.Options[n-1], true
}

// ItemCount returns the number of KindItem options.
func (m Menu) ItemCount() int {
	count := 0
	for _, opt := range m.Options {
		if opt.Kind == KindItem {
			count++
		}
	}
	return count
}

// Prompter acquires a numeric choice for a menu. It returns false when the
// user left the input blank or input ended. Implementations may re-prompt on
// malformed input but callers still validate the returned number.
type Prompter interface {
	Choose(Menu) (int, bool)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(Menu) (int, bool)

func (f PrompterFunc) Choose(m Menu) (int, bool) {
	return f(m)
}

// Plain builds a fully enumerated menu with no actions.
func Plain(id, title string, labels []string) Menu {
	options := make([]Option, len(labels))
	for i, label := range labels {
		options[i] = Option{Label: label, Kind: KindItem, Index: i}
	}
	return Menu{ID: id, Title: title, Options: options}
}
