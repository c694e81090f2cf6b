package picker

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/atomicstack/persona-picker/internal/menu"
)

type step func(t *testing.T, m menu.Menu) (int, bool)

type scripted struct {
	t     *testing.T
	steps []step
	menus []menu.Menu
}

func newScripted(t *testing.T, steps ...step) *scripted {
	t.Helper()
	return &scripted{t: t, steps: steps}
}

func (s *scripted) Choose(m menu.Menu) (int, bool) {
	s.menus = append(s.menus, m)
	if len(s.steps) == 0 {
		s.t.Fatalf("unexpected prompt %q with %d options", m.Title, len(m.Options))
		return 0, false
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next(s.t, m)
}

func (s *scripted) done() {
	s.t.Helper()
	if len(s.steps) != 0 {
		s.t.Fatalf("expected script to be consumed, %d steps left", len(s.steps))
	}
}

func pick(label string) step {
	return func(t *testing.T, m menu.Menu) (int, bool) {
		t.Helper()
		for i, opt := range m.Options {
			if opt.Label == label {
				return i + 1, true
			}
		}
		t.Fatalf("expected option %q in menu %q, got %v", label, m.Title, labels(m))
		return 0, false
	}
}

func pickKind(kind menu.Kind) step {
	return func(t *testing.T, m menu.Menu) (int, bool) {
		t.Helper()
		for i, opt := range m.Options {
			if opt.Kind == kind {
				return i + 1, true
			}
		}
		t.Fatalf("expected %s action in menu %q, got %v", kind, m.Title, labels(m))
		return 0, false
	}
}

func number(n int) step {
	return func(*testing.T, menu.Menu) (int, bool) { return n, true }
}

func blank() step {
	return func(*testing.T, menu.Menu) (int, bool) { return 0, false }
}

func labels(m menu.Menu) []string {
	out := make([]string, len(m.Options))
	for i, opt := range m.Options {
		out[i] = opt.Label
	}
	return out
}

func itemLabels(m menu.Menu) []string {
	var out []string
	for _, opt := range m.Options {
		if opt.Kind == menu.KindItem {
			out = append(out, opt.Label)
		}
	}
	return out
}

func actionKinds(m menu.Menu) []menu.Kind {
	var out []menu.Kind
	for _, opt := range m.Options {
		if opt.Kind != menu.KindItem {
			out = append(out, opt.Kind)
		}
	}
	return out
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// assertWellFormed checks that items come first, carry valid indices that
// match their labels, and are followed only by actions.
func assertWellFormed(t *testing.T, m menu.Menu, items []string) {
	t.Helper()
	seenAction := false
	seen := map[int]bool{}
	for i, opt := range m.Options {
		if opt.Kind != menu.KindItem {
			seenAction = true
			if opt.Index != -1 {
				t.Fatalf("expected action %d to have index -1, got %d", i+1, opt.Index)
			}
			continue
		}
		if seenAction {
			t.Fatalf("expected items before actions, got %v", labels(m))
		}
		if opt.Index < 0 || opt.Index >= len(items) {
			t.Fatalf("expected index within 0..%d, got %d", len(items)-1, opt.Index)
		}
		if seen[opt.Index] {
			t.Fatalf("expected unique indices, got %d twice", opt.Index)
		}
		seen[opt.Index] = true
		if items[opt.Index] != opt.Label {
			t.Fatalf("expected label %q for index %d, got %q", items[opt.Index], opt.Index, opt.Label)
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func selectedFromHeader(m menu.Menu) []string {
	var out []string
	for _, line := range m.Header {
		if strings.HasPrefix(line, "- ") {
			out = append(out, strings.TrimPrefix(line, "- "))
		}
	}
	return out
}
