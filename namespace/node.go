// Package namespace implements an in-memory hierarchy of files and folders.
//
// Nodes are kept in an arena and addressed by stable NodeIDs. Children of a
// folder form a singly linked list anchored at the folder's first child,
// every node additionally records the index of its parent.
package namespace

import (
	"fmt"

	"github.com/klingtnet/foldersim/names"
)

// Kind of a node.
type Kind int

const (
	File Kind = iota + 1
	Folder
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label returns the title-cased kind, as shown in listings.
func (k Kind) Label() string {
	return names.Title(k.String())
}

// NodeID addresses a node within its Tree.
type NodeID int

// None is the identifier of an absent node.
const None NodeID = -1

// ChildOrder determines where a new child is linked into its parent's child list.
type ChildOrder int

const (
	// NewestFirst prepends new children, the most recently added child is listed first.
	NewestFirst ChildOrder = iota
	// OldestFirst appends new children, children are listed in insertion order.
	OldestFirst
)

func (o ChildOrder) String() string {
	if o == OldestFirst {
		return "oldest-first"
	}
	return "newest-first"
}

// ErrBadChildOrder indicates an unknown child order.
var ErrBadChildOrder = fmt.Errorf("child order must be one of newest-first, oldest-first")

// ParseChildOrder parses the textual representation of a ChildOrder.
// The empty string yields the default, NewestFirst.
func ParseChildOrder(s string) (ChildOrder, error) {
	switch s {
	case "", "newest-first":
		return NewestFirst, nil
	case "oldest-first":
		return OldestFirst, nil
	default:
		return NewestFirst, fmt.Errorf("%w: %q", ErrBadChildOrder, s)
	}
}

type node struct {
	name string
	kind Kind

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	nextSibling NodeID

	released bool
}

// Entry describes a single node.
type Entry struct {
	ID   NodeID
	Name string
	Kind Kind
}
