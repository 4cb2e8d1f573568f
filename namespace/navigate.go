package namespace

import (
	"fmt"
	"strings"

	"github.com/klingtnet/foldersim/names"
)

// Move is the direction of a navigation step.
type Move int

const (
	MoveStay Move = iota
	MoveUp
	MoveDescend
)

// Target describes a single navigation step relative to the current folder.
type Target struct {
	move Move
	name string
}

// Stay targets the current folder.
func Stay() Target { return Target{move: MoveStay} }

// Up targets the parent of the current folder.
func Up() Target { return Target{move: MoveUp} }

// Descend targets the child folder called name.
func Descend(name string) Target { return Target{move: MoveDescend, name: name} }

// ParseTarget interprets a navigation token.
// "." stays, ".." and "up" ascend, every other token names a child folder.
func ParseTarget(token string) Target {
	switch token = strings.TrimSpace(token); token {
	case ".":
		return Stay()
	case "..", "up":
		return Up()
	default:
		return Descend(token)
	}
}

// Move returns the direction of the step.
func (t Target) Move() Move { return t.move }

// Name returns the child name of a descending step.
func (t Target) Name() string { return t.name }

func (t Target) String() string {
	switch t.move {
	case MoveStay:
		return "."
	case MoveUp:
		return ".."
	default:
		return t.name
	}
}

// Navigate returns the folder reached from cursor by taking a step towards target.
// On failure cursor is returned unchanged together with the error.
func (t *Tree) Navigate(cursor NodeID, target Target) (NodeID, error) {
	n, err := t.lookup(cursor)
	if err != nil {
		return cursor, err
	}
	if n.kind != Folder {
		return cursor, fmt.Errorf("%w: %q", ErrNotAFolder, n.name)
	}

	switch target.move {
	case MoveStay:
		return cursor, nil
	case MoveUp:
		if cursor == t.root || n.parent == None {
			return cursor, ErrAlreadyAtRoot
		}
		return n.parent, nil
	default:
		return t.descend(cursor, n, target.name)
	}
}

func (t *Tree) descend(cursor NodeID, n *node, name string) (NodeID, error) {
	normalized, err := names.Normalize(name)
	if err != nil {
		// An invalid name can not have been added in the first place.
		return cursor, fmt.Errorf("%w: %q", ErrChildNotFound, name)
	}

	sawFile := false
	for c := n.firstChild; c != None; c = t.nodes[c].nextSibling {
		child := &t.nodes[c]
		if child.name != normalized {
			continue
		}
		if child.kind == Folder {
			return c, nil
		}
		sawFile = true
	}
	if sawFile {
		return cursor, fmt.Errorf("%w: %q", ErrNotAFolder, normalized)
	}

	return cursor, fmt.Errorf("%w: %q", ErrChildNotFound, normalized)
}
