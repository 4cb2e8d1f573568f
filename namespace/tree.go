package namespace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/klingtnet/foldersim/names"
)

// Tree is a hierarchy of files and folders below a single root folder.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes     []node
	root      NodeID
	order     ChildOrder
	destroyed bool
}

// NewTree returns a tree consisting of a root folder named rootName.
func NewTree(rootName string, order ChildOrder) (*Tree, error) {
	t := &Tree{root: None, order: order}
	root, err := t.CreateNode(rootName, Folder)
	if err != nil {
		return nil, fmt.Errorf("creating root failed: %w", err)
	}
	t.root = root

	return t, nil
}

// Root returns the identifier of the root folder.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of live nodes, including nodes not yet attached.
func (t *Tree) Len() int {
	n := 0
	for i := range t.nodes {
		if !t.nodes[i].released {
			n++
		}
	}

	return n
}

func (t *Tree) lookup(id NodeID) (*node, error) {
	if t.destroyed {
		return nil, ErrReleased
	}
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchNode, id)
	}
	n := &t.nodes[id]
	if n.released {
		return nil, fmt.Errorf("%w: %d", ErrReleased, id)
	}

	return n, nil
}

// Entry returns a description of the node addressed by id.
func (t *Tree) Entry(id NodeID) (Entry, error) {
	n, err := t.lookup(id)
	if err != nil {
		return Entry{ID: None}, err
	}

	return Entry{ID: id, Name: n.name, Kind: n.kind}, nil
}

// CreateNode allocates a new node without parent, children or siblings.
// The node becomes part of the hierarchy once it is passed to AddChild.
func (t *Tree) CreateNode(name string, kind Kind) (NodeID, error) {
	if t.destroyed {
		return None, ErrReleased
	}
	if kind != File && kind != Folder {
		return None, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	normalized, err := names.Normalize(name)
	if err != nil {
		return None, fmt.Errorf("%w %q: %w", ErrInvalidName, name, err)
	}

	t.nodes = append(t.nodes, node{
		name:        normalized,
		kind:        kind,
		parent:      None,
		firstChild:  None,
		lastChild:   None,
		nextSibling: None,
	})

	return NodeID(len(t.nodes) - 1), nil
}

// attached reports whether id is the root or one of its descendants.
func (t *Tree) attached(id NodeID) bool {
	for id != None {
		if id == t.root {
			return true
		}
		id = t.nodes[id].parent
	}

	return false
}

// AddChild links child into the child list of parent.
// The parent must be a folder reachable from the root, the child a freshly created node.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, err := t.lookup(parent)
	if err != nil {
		return err
	}
	c, err := t.lookup(child)
	if err != nil {
		return err
	}
	if p.kind != Folder {
		return fmt.Errorf("%w: %q", ErrNotAFolder, p.name)
	}
	if !t.attached(parent) {
		return fmt.Errorf("%w: %q", ErrDetached, p.name)
	}
	if child == t.root || c.parent != None {
		return fmt.Errorf("%w: %q", ErrAlreadyAttached, c.name)
	}

	c.parent = parent
	switch t.order {
	case OldestFirst:
		if p.lastChild == None {
			p.firstChild = child
		} else {
			t.nodes[p.lastChild].nextSibling = child
		}
		p.lastChild = child
	default:
		c.nextSibling = p.firstChild
		p.firstChild = child
		if p.lastChild == None {
			p.lastChild = child
		}
	}

	return nil
}

// Insert creates a node and adds it as child of parent in one step.
// Nothing is allocated if parent cannot take children.
func (t *Tree) Insert(parent NodeID, name string, kind Kind) (NodeID, error) {
	p, err := t.lookup(parent)
	if err != nil {
		return None, err
	}
	if p.kind != Folder {
		return None, fmt.Errorf("%w: %q", ErrNotAFolder, p.name)
	}

	child, err := t.CreateNode(name, kind)
	if err != nil {
		return None, err
	}
	err = t.AddChild(parent, child)
	if err != nil {
		// Only the last node can be dropped without leaving a hole.
		t.nodes = t.nodes[:len(t.nodes)-1]
		return None, err
	}

	return child, nil
}

// Children returns the children of id in child list order.
func (t *Tree) Children(id NodeID) ([]Entry, error) {
	n, err := t.lookup(id)
	if err != nil {
		return nil, err
	}

	var children []Entry
	for c := n.firstChild; c != None; c = t.nodes[c].nextSibling {
		children = append(children, Entry{ID: c, Name: t.nodes[c].name, Kind: t.nodes[c].kind})
	}

	return children, nil
}

// Parent returns the parent of id, None for the root and detached nodes.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.lookup(id)
	if err != nil {
		return None, err
	}

	return n.parent, nil
}

// Path returns the slash separated names from the root down to id, e.g. /Root/docs.
func (t *Tree) Path(id NodeID) (string, error) {
	if _, err := t.lookup(id); err != nil {
		return "", err
	}

	var segments []string
	for ; id != None; id = t.nodes[id].parent {
		segments = append(segments, t.nodes[id].name)
	}
	slices.Reverse(segments)

	return "/" + strings.Join(segments, "/"), nil
}
