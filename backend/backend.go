// Package backend provides a common interface over the in-memory namespace
// and a real file system, so callers cannot tell which store is active.
package backend

import (
	"context"
	"fmt"
	"iter"

	"github.com/klingtnet/foldersim/namespace"
)

// ErrUnsupported indicates an operation the active backend does not offer.
var ErrUnsupported = fmt.Errorf("not supported by this backend")

// Backend is a hierarchy of files and folders with a current folder.
type Backend interface {
	// ListChildren returns the entries of the current folder.
	ListChildren(ctx context.Context) ([]namespace.Entry, error)
	// CreateChild creates a file or folder inside the current folder.
	CreateChild(ctx context.Context, name string, kind namespace.Kind) error
	// MoveTo changes the current folder, see namespace.ParseTarget for tokens.
	MoveTo(ctx context.Context, token string) error
	// Location returns the path of the current folder.
	Location() string
	// Close releases the backend, it must not be used afterwards.
	Close() error
}

// Renderable is implemented by backends that can list their whole tree.
type Renderable interface {
	Show() (iter.Seq[namespace.Line], error)
}
