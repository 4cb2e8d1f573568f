package namespace

import (
	"iter"
	"strings"
)

// Line is a single entry of a tree listing.
type Line struct {
	Depth int
	Name  string
	Kind  Kind
}

// String formats the line indented by two spaces per level, e.g. "  - docs (Folder)".
func (l Line) String() string {
	return strings.Repeat("  ", l.Depth) + "- " + l.Name + " (" + l.Kind.Label() + ")"
}

// Render returns the pre-order listing of the subtree at id, starting at depth.
// Children are visited in child list order. The sequence is evaluated lazily
// and may be iterated more than once, an invalid id yields no lines.
func (t *Tree) Render(id NodeID, depth int) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if _, err := t.lookup(id); err != nil {
			return
		}
		t.render(id, depth, yield)
	}
}

func (t *Tree) render(id NodeID, depth int, yield func(Line) bool) bool {
	n := t.nodes[id]
	if !yield(Line{Depth: depth, Name: n.name, Kind: n.kind}) {
		return false
	}
	for c := n.firstChild; c != None; c = t.nodes[c].nextSibling {
		if !t.render(c, depth+1, yield) {
			return false
		}
	}

	return true
}

// Walk calls fn for every node of the subtree at id in pre-order.
// Walking stops at the first error returned by fn.
func (t *Tree) Walk(id NodeID, fn func(Entry) error) error {
	if _, err := t.lookup(id); err != nil {
		return err
	}

	return t.walk(id, fn)
}

func (t *Tree) walk(id NodeID, fn func(Entry) error) error {
	n := t.nodes[id]
	err := fn(Entry{ID: id, Name: n.name, Kind: n.kind})
	if err != nil {
		return err
	}

	for c := n.firstChild; c != None; c = t.nodes[c].nextSibling {
		err = t.walk(c, fn)
		if err != nil {
			return err
		}
	}

	return nil
}
