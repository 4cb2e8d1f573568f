package namespace

import (
	"fmt"
	"iter"
)

// DefaultRootName is the name of the root folder of a new session.
const DefaultRootName = "Root"

type sessionOptions struct {
	rootName string
	order    ChildOrder
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithRootName sets the name of the root folder.
func WithRootName(name string) Option {
	return func(o *sessionOptions) { o.rootName = name }
}

// WithChildOrder sets where new children are linked into their folder.
func WithChildOrder(order ChildOrder) Option {
	return func(o *sessionOptions) { o.order = order }
}

// Session owns a tree and the cursor pointing at the current folder.
// Once End has been called every operation fails with ErrSessionEnded.
//
// A Session is not safe for concurrent use.
type Session struct {
	tree   *Tree
	cursor NodeID
	ended  bool
}

// NewSession returns a session whose cursor is placed on a fresh root folder.
func NewSession(opts ...Option) (*Session, error) {
	o := sessionOptions{rootName: DefaultRootName, order: NewestFirst}
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := NewTree(o.rootName, o.order)
	if err != nil {
		return nil, err
	}

	return &Session{tree: tree, cursor: tree.Root()}, nil
}

func (s *Session) check() error {
	if s.ended {
		return ErrSessionEnded
	}
	return nil
}

func (s *Session) add(name string, kind Kind) (Entry, error) {
	if err := s.check(); err != nil {
		return Entry{ID: None}, err
	}

	id, err := s.tree.Insert(s.cursor, name, kind)
	if err != nil {
		return Entry{ID: None}, fmt.Errorf("adding %s failed: %w", kind, err)
	}

	return s.tree.Entry(id)
}

// AddFile adds a file to the current folder.
func (s *Session) AddFile(name string) (Entry, error) {
	return s.add(name, File)
}

// AddFolder adds a sub-folder to the current folder.
func (s *Session) AddFolder(name string) (Entry, error) {
	return s.add(name, Folder)
}

// Navigate moves the cursor as described by token, see ParseTarget.
// The cursor stays in place if navigation fails.
func (s *Session) Navigate(token string) (Entry, error) {
	if err := s.check(); err != nil {
		return Entry{ID: None}, err
	}

	cursor, err := s.tree.Navigate(s.cursor, ParseTarget(token))
	if err != nil {
		return Entry{ID: None}, err
	}
	s.cursor = cursor

	return s.tree.Entry(cursor)
}

// Show returns the listing of the whole tree starting at the root.
func (s *Session) Show() (iter.Seq[Line], error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	return s.tree.Render(s.tree.Root(), 0), nil
}

// End destroys the tree and returns the number of released nodes.
func (s *Session) End() (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	count, err := s.tree.DestroySubtree(s.tree.Root())
	if err != nil {
		return 0, err
	}
	s.ended = true
	s.cursor = None

	return count, nil
}

// Cursor returns the current folder.
func (s *Session) Cursor() (Entry, error) {
	if err := s.check(); err != nil {
		return Entry{ID: None}, err
	}

	return s.tree.Entry(s.cursor)
}

// Location returns the path of the current folder.
func (s *Session) Location() (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}

	return s.tree.Path(s.cursor)
}

// List returns the children of the current folder.
func (s *Session) List() ([]Entry, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	return s.tree.Children(s.cursor)
}

// Count returns the number of folders and files in the tree, the root included.
func (s *Session) Count() (folders, files int, err error) {
	if err = s.check(); err != nil {
		return
	}

	err = s.tree.Walk(s.tree.Root(), func(e Entry) error {
		if e.Kind == Folder {
			folders++
		} else {
			files++
		}
		return nil
	})

	return
}
