package picker

import (
	"strings"

	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/menu"
)

// WalkOutcome reports how a tree walk ended.
type WalkOutcome int

const (
	// Completed means leaf items were chosen.
	Completed WalkOutcome = iota
	// Stopped means the walk ended at Path without leaf items.
	Stopped
	// Aborted means the user backed out; the field is unset.
	Aborted
)

func (o WalkOutcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// LeafMode decides what happens once the walk reaches a non-empty leaf.
type LeafMode int

const (
	LeafNone LeafMode = iota
	LeafSingle
	LeafMulti
)

// WalkOptions configures a tree walk.
type WalkOptions struct {
	ID string
	// Titles holds one prompt title per level; levels beyond it use a
	// generic title.
	Titles []string
	// AllowSkip reports whether the paged selector at the given level
	// (1 and deeper) offers the skip action. Nil means never.
	AllowSkip func(level int) bool
	PageSize  int
	Increment int

	Leaf          LeafMode
	LeafTitle     string
	LeafPageSize  int
	LeafAllowSkip bool
	// LeafLabel decorates single-pick leaf items for display. The result
	// still carries the undecorated item.
	LeafLabel func(item string) string
	// Multi configures the multi-selector used by LeafMulti.
	Multi MultiOptions
}

// WalkResult is the terminal state of a walk.
type WalkResult struct {
	Outcome WalkOutcome
	Path    []string
	Items   []string
	// Exhausted is set when the walk reached an empty leaf.
	Exhausted bool
}

// Joined returns the path most specific first, separated by ", ".
func (r WalkResult) Joined() string {
	parts := make([]string, len(r.Path))
	for i, p := range r.Path {
		parts[len(r.Path)-1-i] = p
	}
	return strings.Join(parts, ", ")
}

// Last returns the deepest path element, or "" for an empty path.
func (r WalkResult) Last() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

// Item returns the first chosen leaf item, or "".
func (r WalkResult) Item() string {
	if len(r.Items) == 0 {
		return ""
	}
	return r.Items[0]
}

// Walker descends menu.Node hierarchies using a Selector.
type Walker struct {
	sel *Selector
}

// NewWalker returns a Walker driving sel.
func NewWalker(sel *Selector) *Walker {
	return &Walker{sel: sel}
}

// Walk descends root one level per prompt. Level 0 is a plain menu with no
// skip; deeper levels are paged. Cancelling at any depth aborts the walk.
func (w *Walker) Walk(root *menu.Node, opts WalkOptions) WalkResult {
	node := root
	var path []string
	for level := 0; ; level++ {
		switch {
		case node.IsLeaf():
			return w.leaf(node, path, level, opts)
		case !node.IsCategory():
			events.Walk.Stop(opts.ID, path, "invalid")
			return stopped(path)
		}

		keys := node.Keys()
		if len(keys) == 0 {
			events.Walk.Stop(opts.ID, path, "empty")
			return stopped(path)
		}

		var key string
		if level == 0 {
			idx, ok := w.sel.ChooseOne(opts.ID, titleFor(opts, level), keys)
			if !ok {
				events.Walk.Abort(opts.ID, level)
				return WalkResult{Outcome: Aborted}
			}
			key = keys[idx]
		} else {
			choice, outcome := w.sel.Select(keys, Options{
				ID:        opts.ID,
				Title:     titleFor(opts, level),
				Header:    pathHeader(path),
				PageSize:  opts.PageSize,
				Increment: opts.Increment,
				AllowSkip: opts.AllowSkip != nil && opts.AllowSkip(level),
			})
			switch outcome {
			case Skipped:
				events.Walk.Stop(opts.ID, path, "skip")
				return stopped(path)
			case Cancelled:
				events.Walk.Abort(opts.ID, level)
				return WalkResult{Outcome: Aborted}
			}
			key = choice
		}

		events.Walk.Descend(opts.ID, level, key)
		path = append(path, key)
		node = node.Children[key]
	}
}

func (w *Walker) leaf(node *menu.Node, path []string, level int, opts WalkOptions) WalkResult {
	items := node.SortedItems()
	events.Walk.Leaf(opts.ID, path, len(items))
	if len(items) == 0 {
		events.Walk.Stop(opts.ID, path, "exhausted")
		res := stopped(path)
		res.Exhausted = true
		return res
	}

	switch opts.Leaf {
	case LeafMulti:
		multi := opts.Multi
		if multi.ID == "" {
			multi.ID = opts.ID
		}
		if multi.Title == "" {
			multi.Title = opts.LeafTitle
		}
		chosen := w.sel.SelectMany(items, multi)
		return WalkResult{Outcome: Completed, Path: path, Items: chosen}
	case LeafSingle:
		title := opts.LeafTitle
		if title == "" {
			title = titleFor(opts, level)
		}
		pageSize := opts.LeafPageSize
		if pageSize <= 0 {
			pageSize = opts.PageSize
		}
		labels := items
		if opts.LeafLabel != nil {
			labels = make([]string, len(items))
			for i, item := range items {
				labels[i] = opts.LeafLabel(item)
			}
		}
		idx, outcome := w.sel.SelectIndex(labels, Options{
			ID:        opts.ID,
			Title:     title,
			Header:    pathHeader(path),
			PageSize:  pageSize,
			Increment: opts.Increment,
			AllowSkip: opts.LeafAllowSkip,
		})
		switch outcome {
		case Selected:
			return WalkResult{Outcome: Completed, Path: path, Items: []string{items[idx]}}
		case Skipped:
			events.Walk.Stop(opts.ID, path, "skip")
			return stopped(path)
		default:
			events.Walk.Abort(opts.ID, level)
			return WalkResult{Outcome: Aborted}
		}
	default:
		events.Walk.Stop(opts.ID, path, "leaf")
		return stopped(path)
	}
}

func stopped(path []string) WalkResult {
	return WalkResult{Outcome: Stopped, Path: path}
}

func titleFor(opts WalkOptions, level int) string {
	if level < len(opts.Titles) && opts.Titles[level] != "" {
		return opts.Titles[level]
	}
	return "Select a category:"
}

func pathHeader(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return []string{"Current path: " + strings.Join(path, " > ")}
}
