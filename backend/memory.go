package backend

import (
	"context"
	"iter"

	"github.com/klingtnet/foldersim/namespace"
)

// Memory is a Backend held entirely in memory.
type Memory struct {
	session *namespace.Session
}

// NewMemory returns a Memory backend operating on session.
func NewMemory(session *namespace.Session) *Memory {
	return &Memory{session: session}
}

// ListChildren implements Backend.
func (m *Memory) ListChildren(_ context.Context) ([]namespace.Entry, error) {
	return m.session.List()
}

// CreateChild implements Backend.
func (m *Memory) CreateChild(_ context.Context, name string, kind namespace.Kind) error {
	var err error
	switch kind {
	case namespace.File:
		_, err = m.session.AddFile(name)
	case namespace.Folder:
		_, err = m.session.AddFolder(name)
	default:
		err = namespace.ErrUnknownKind
	}

	return err
}

// MoveTo implements Backend.
func (m *Memory) MoveTo(_ context.Context, token string) error {
	_, err := m.session.Navigate(token)
	return err
}

// Location implements Backend.
// An ended session has no location.
func (m *Memory) Location() string {
	location, err := m.session.Location()
	if err != nil {
		return ""
	}
	return location
}

// Show implements Renderable.
func (m *Memory) Show() (iter.Seq[namespace.Line], error) {
	return m.session.Show()
}

// Close ends the session and releases the tree.
func (m *Memory) Close() error {
	_, err := m.session.End()
	return err
}

var (
	_ Backend    = &Memory{}
	_ Renderable = &Memory{}
)
