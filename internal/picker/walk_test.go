package picker

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/persona-picker/internal/menu"
)

func sampleTree() *menu.Node {
	return menu.NewCategory(map[string]*menu.Node{
		"A": menu.NewCategory(map[string]*menu.Node{
			"X": menu.NewLeaf([]string{"i2", "i1"}),
		}),
		"B": menu.NewCategory(map[string]*menu.Node{
			"Y": menu.NewLeaf([]string{"i3"}),
		}),
	})
}

func TestWalkToLeafMultiSelect(t *testing.T) {
	p := newScripted(t,
		pick("A"),
		pick("X"),
		pick("i1"),
		pick("i2"),
		pickKind(menu.KindFinish),
	)
	w := NewWalker(New(p, seeded(1)))

	res := w.Walk(sampleTree(), WalkOptions{ID: "interests", Leaf: LeafMulti, Multi: MultiOptions{Max: 1}})
	if res.Outcome != Completed {
		t.Fatalf("expected completed, got %s", res.Outcome)
	}
	if diff := cmp.Diff([]string{"A", "X"}, res.Path); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"i1"}, res.Items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	p.done()

	if diff := cmp.Diff([]string{"A", "B"}, labels(p.menus[0])); diff != "" {
		t.Fatalf("expected plain sorted top menu (-want +got):\n%s", diff)
	}
	leafFirst := p.menus[2]
	if diff := cmp.Diff([]string{"i1", "i2"}, itemLabels(leafFirst)); diff != "" {
		t.Fatalf("expected sorted leaf items (-want +got):\n%s", diff)
	}
	leafSecond := p.menus[3]
	if diff := cmp.Diff([]string{"i2"}, itemLabels(leafSecond)); diff != "" {
		t.Fatalf("expected chosen item filtered (-want +got):\n%s", diff)
	}
	if p.menus[4].Notice != "Cannot add more than 1 item(s)." {
		t.Fatalf("expected cap notice, got %q", p.menus[4].Notice)
	}
}

func TestWalkBlankAtTopAborts(t *testing.T) {
	p := newScripted(t, blank())

	res := NewWalker(New(p, seeded(2))).Walk(sampleTree(), WalkOptions{Leaf: LeafMulti})
	if res.Outcome != Aborted {
		t.Fatalf("expected aborted, got %s", res.Outcome)
	}
	if len(res.Path) != 0 || len(res.Items) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestWalkCancelDeeperAbortsWholeWalk(t *testing.T) {
	p := newScripted(t, pick("B"), blank())

	res := NewWalker(New(p, seeded(3))).Walk(sampleTree(), WalkOptions{Leaf: LeafMulti})
	if res.Outcome != Aborted || len(res.Path) != 0 {
		t.Fatalf("expected aborted with empty path, got %+v", res)
	}
}

func TestWalkTopLevelOrderIsDeterministic(t *testing.T) {
	tree := menu.NewCategory(map[string]*menu.Node{
		"Oceania": menu.NewLeaf(nil),
		"Africa":  menu.NewLeaf(nil),
		"Europe":  menu.NewLeaf(nil),
		"Asia":    menu.NewLeaf(nil),
	})
	want := []string{"Africa", "Asia", "Europe", "Oceania"}
	for i := 0; i < 10; i++ {
		p := newScripted(t, blank())
		NewWalker(New(p, seeded(int64(i)))).Walk(tree, WalkOptions{})
		if diff := cmp.Diff(want, labels(p.menus[0])); diff != "" {
			t.Fatalf("run %d: unexpected order (-want +got):\n%s", i, diff)
		}
	}
}

func TestWalkSkipFromConfiguredLevel(t *testing.T) {
	tree := menu.NewCategory(map[string]*menu.Node{
		"Europe": menu.NewCategory(map[string]*menu.Node{
			"France": menu.NewCategory(map[string]*menu.Node{
				"Paris": menu.NewLeaf([]string{"Montmartre", "Le Marais"}),
			}),
		}),
	})
	opts := WalkOptions{
		ID:            "location",
		AllowSkip:     func(level int) bool { return level >= 2 },
		Leaf:          LeafSingle,
		LeafAllowSkip: true,
	}
	p := newScripted(t, pick("Europe"), pick("France"), pickKind(menu.KindSkip))

	res := NewWalker(New(p, seeded(4))).Walk(tree, opts)
	if res.Outcome != Stopped {
		t.Fatalf("expected stopped, got %s", res.Outcome)
	}
	if res.Joined() != "France, Europe" {
		t.Fatalf("expected reversed join, got %q", res.Joined())
	}
	for _, kind := range actionKinds(p.menus[1]) {
		if kind == menu.KindSkip {
			t.Fatalf("expected no skip at level 1")
		}
	}
	if diff := cmp.Diff([]string{"Current path: Europe > France"}, p.menus[2].Header); diff != "" {
		t.Fatalf("unexpected path header (-want +got):\n%s", diff)
	}
}

func TestWalkLeafSinglePick(t *testing.T) {
	tree := menu.NewCategory(map[string]*menu.Node{
		"Europe": menu.NewCategory(map[string]*menu.Node{
			"Paris": menu.NewLeaf([]string{"Montmartre", "Le Marais"}),
		}),
	})
	p := newScripted(t, pick("Europe"), pick("Paris"), pick("Montmartre"))

	res := NewWalker(New(p, seeded(5))).Walk(tree, WalkOptions{Leaf: LeafSingle, LeafTitle: "Select a neighborhood:"})
	if res.Outcome != Completed || res.Item() != "Montmartre" {
		t.Fatalf("expected completed Montmartre, got %+v", res)
	}
	if res.Last() != "Paris" {
		t.Fatalf("expected last path element Paris, got %q", res.Last())
	}
	if p.menus[2].Title != "Select a neighborhood:" {
		t.Fatalf("expected leaf title, got %q", p.menus[2].Title)
	}
}

func TestWalkEmptyLeafIsExhausted(t *testing.T) {
	tree := menu.NewCategory(map[string]*menu.Node{
		"Nowhere": menu.NewLeaf(nil),
	})
	p := newScripted(t, pick("Nowhere"))

	res := NewWalker(New(p, seeded(6))).Walk(tree, WalkOptions{Leaf: LeafMulti})
	if res.Outcome != Stopped || !res.Exhausted {
		t.Fatalf("expected exhausted stop, got %+v", res)
	}
	if diff := cmp.Diff([]string{"Nowhere"}, res.Path); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}
}

func TestWalkInvalidChildStops(t *testing.T) {
	tree := menu.NewCategory(map[string]*menu.Node{
		"Broken": {Kind: menu.KindInvalid},
		"Empty":  menu.NewCategory(nil),
	})

	p := newScripted(t, pick("Broken"))
	res := NewWalker(New(p, seeded(7))).Walk(tree, WalkOptions{})
	if res.Outcome != Stopped || res.Last() != "Broken" {
		t.Fatalf("expected stop at Broken, got %+v", res)
	}

	p = newScripted(t, pick("Empty"))
	res = NewWalker(New(p, seeded(7))).Walk(tree, WalkOptions{})
	if res.Outcome != Stopped || res.Last() != "Empty" || res.Exhausted {
		t.Fatalf("expected stop at Empty, got %+v", res)
	}
}

func TestWalkLeafNoneLeavesLeafUnexplored(t *testing.T) {
	p := newScripted(t, pick("B"), pick("Y"))

	res := NewWalker(New(p, seeded(8))).Walk(sampleTree(), WalkOptions{})
	if res.Outcome != Stopped || res.Joined() != "Y, B" || len(res.Items) != 0 {
		t.Fatalf("expected stop at B/Y, got %+v", res)
	}
}

func TestWalkNilRootStops(t *testing.T) {
	res := NewWalker(New(newScripted(t), seeded(9))).Walk(nil, WalkOptions{})
	if res.Outcome != Stopped || len(res.Path) != 0 {
		t.Fatalf("expected empty stop, got %+v", res)
	}
}

func TestWalkLeafLabelMapsBackToItem(t *testing.T) {
	p := newScripted(t, pick("A"), pick("X"), pick("i2 (2)"))
	counts := map[string]int{"i1": 1, "i2": 2}

	res := NewWalker(New(p, seeded(6))).Walk(sampleTree(), WalkOptions{
		Leaf: LeafSingle,
		LeafLabel: func(item string) string {
			return fmt.Sprintf("%s (%d)", item, counts[item])
		},
	})
	if res.Outcome != Completed || res.Item() != "i2" {
		t.Fatalf("expected undecorated i2, got %+v", res)
	}
	if diff := cmp.Diff([]string{"i1 (1)", "i2 (2)"}, itemLabels(p.menus[2])); diff != "" {
		t.Fatalf("unexpected leaf labels (-want +got):\n%s", diff)
	}
	p.done()
}
