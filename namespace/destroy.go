package namespace

// DestroySubtree releases the node at id together with all of its descendants
// and returns the number of released nodes. Children are released before
// their parent. Destroying the root releases the whole tree, afterwards every
// operation on the tree fails with ErrReleased.
func (t *Tree) DestroySubtree(id NodeID) (int, error) {
	n, err := t.lookup(id)
	if err != nil {
		return 0, err
	}

	if id == t.root {
		count := t.release(id)
		t.nodes = nil
		t.root = None
		t.destroyed = true

		return count, nil
	}

	if n.parent != None {
		t.unlink(n.parent, id)
	}

	return t.release(id), nil
}

// unlink removes child from the child list of parent.
func (t *Tree) unlink(parent, child NodeID) {
	p := &t.nodes[parent]
	prev := None
	for c := p.firstChild; c != None; prev, c = c, t.nodes[c].nextSibling {
		if c != child {
			continue
		}
		next := t.nodes[c].nextSibling
		if prev == None {
			p.firstChild = next
		} else {
			t.nodes[prev].nextSibling = next
		}
		if p.lastChild == child {
			p.lastChild = prev
		}

		return
	}
}

// release marks the subtree at id as released in post-order.
func (t *Tree) release(id NodeID) int {
	count := 0
	for c := t.nodes[id].firstChild; c != None; {
		next := t.nodes[c].nextSibling
		count += t.release(c)
		c = next
	}
	t.nodes[id] = node{
		parent:      None,
		firstChild:  None,
		lastChild:   None,
		nextSibling: None,
		released:    true,
	}

	return count + 1
}
