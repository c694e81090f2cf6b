package state

import "errors"

var (
	// ErrSelectionFull is returned when adding beyond the selection cap.
	ErrSelectionFull = errors.New("selection is full")
	// ErrAlreadySelected is returned when adding an item twice.
	ErrAlreadySelected = errors.New("item already selected")
)

// Selection accumulates up to Max distinct items in insertion order.
type Selection struct {
	max   int
	items []string
	index map[string]struct{}
}

// NewSelection seeds a selection from a previous value. Duplicates are
// dropped and the seed is truncated to max.
func NewSelection(max int, seed []string) *Selection {
	if max < 0 {
		max = 0
	}
	s := &Selection{max: max, index: make(map[string]struct{}, max)}
	for _, item := range seed {
		if s.Full() {
			break
		}
		_ = s.Add(item)
	}
	return s
}

// Add appends item when there is room and it is not already present.
func (s *Selection) Add(item string) error {
	if s.IsSelected(item) {
		return ErrAlreadySelected
	}
	if s.Full() {
		return ErrSelectionFull
	}
	s.items = append(s.items, item)
	s.index[item] = struct{}{}
	return nil
}

// IsSelected reports whether item has been accumulated.
func (s *Selection) IsSelected(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Full reports whether the cap has been reached.
func (s *Selection) Full() bool {
	return len(s.items) >= s.max
}

// Len returns the number of accumulated items.
func (s *Selection) Len() int {
	return len(s.items)
}

// Max returns the cap.
func (s *Selection) Max() int {
	return s.max
}

// Items returns the accumulated items in insertion order.
func (s *Selection) Items() []string {
	dup := make([]string, len(s.items))
	copy(dup, s.items)
	return dup
}

// Clear drops every accumulated item.
func (s *Selection) Clear() {
	s.items = nil
	for item := range s.index {
		delete(s.index, item)
	}
}
