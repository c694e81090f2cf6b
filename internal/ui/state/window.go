package state

import "sort"

// Rand is the random source used for sampling. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Action selects how SamplePage derives the next displayed set.
type Action int

const (
	ActionStart Action = iota
	ActionShowMore
	ActionRegenerate
)

// SamplePage returns the next displayed index set for a list of total
// candidates. Start and Regenerate draw min(initial, total) indices uniformly
// from the whole list; ShowMore extends displayed with min(increment,
// remaining) indices drawn from the ones not yet displayed. The result is
// sorted and never aliases displayed.
func SamplePage(rng Rand, total int, displayed []int, action Action, initial, increment int) []int {
	if total <= 0 {
		return nil
	}
	switch action {
	case ActionShowMore:
		shown := make(map[int]struct{}, len(displayed))
		next := make([]int, 0, len(displayed)+increment)
		for _, idx := range displayed {
			if idx < 0 || idx >= total {
				continue
			}
			if _, dup := shown[idx]; dup {
				continue
			}
			shown[idx] = struct{}{}
			next = append(next, idx)
		}
		remaining := make([]int, 0, total-len(shown))
		for idx := 0; idx < total; idx++ {
			if _, ok := shown[idx]; !ok {
				remaining = append(remaining, idx)
			}
		}
		next = append(next, sample(rng, remaining, clamp(increment, len(remaining)))...)
		sort.Ints(next)
		return next
	default:
		pool := make([]int, total)
		for i := range pool {
			pool[i] = i
		}
		next := sample(rng, pool, clamp(initial, total))
		sort.Ints(next)
		return next
	}
}

// sample draws k distinct entries from pool with a partial Fisher-Yates
// shuffle. pool is reordered in place.
func sample(rng Rand, pool []int, k int) []int {
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]int, k)
	copy(out, pool[:k])
	return out
}

func clamp(want, limit int) int {
	if want < 1 {
		want = 1
	}
	if want > limit {
		return limit
	}
	return want
}

// Window is the live sampling session of a paged selection over a candidate
// list of fixed size.
type Window struct {
	total     int
	initial   int
	increment int
	displayed []int
	rng       Rand
}

// NewWindow starts a session with an initial random page.
func NewWindow(total, initial, increment int, rng Rand) *Window {
	w := &Window{
		total:     total,
		initial:   initial,
		increment: increment,
		rng:       rng,
	}
	w.displayed = SamplePage(rng, total, nil, ActionStart, initial, increment)
	return w
}

// Total returns the size of the candidate list.
func (w *Window) Total() int {
	return w.total
}

// Displayed returns the currently displayed indices in ascending order.
func (w *Window) Displayed() []int {
	dup := make([]int, len(w.displayed))
	copy(dup, w.displayed)
	return dup
}

// CanShowMore reports whether some candidates are not displayed yet.
func (w *Window) CanShowMore() bool {
	return len(w.displayed) < w.total
}

// ShowMore extends the page; it reports whether anything was added.
func (w *Window) ShowMore() bool {
	if !w.CanShowMore() {
		return false
	}
	before := len(w.displayed)
	w.displayed = SamplePage(w.rng, w.total, w.displayed, ActionShowMore, w.initial, w.increment)
	return len(w.displayed) > before
}

// Regenerate replaces the page with a fresh sample over the full list.
func (w *Window) Regenerate() {
	w.displayed = SamplePage(w.rng, w.total, w.displayed, ActionRegenerate, w.initial, w.increment)
}
