package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klingtnet/foldersim/names"
	"github.com/klingtnet/foldersim/namespace"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Disk is a Backend operating directly on the entries of a file system.
type Disk struct {
	fs  afero.Fs
	dir string
}

// NewDisk returns a Disk backend whose current folder is dir.
func NewDisk(filesystem afero.Fs, dir string) (*Disk, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	isDir, err := afero.IsDir(filesystem, dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %q", namespace.ErrNotAFolder, dir)
	}

	return &Disk{fs: filesystem, dir: dir}, nil
}

// ListChildren implements Backend.
// Only folders and regular files are listed, in lexical order.
func (d *Disk) ListChildren(ctx context.Context) ([]namespace.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(d.fs, d.dir)
	if err != nil {
		return nil, err
	}

	var entries []namespace.Entry
	for _, info := range infos {
		switch {
		case info.IsDir():
			entries = append(entries, namespace.Entry{ID: namespace.None, Name: info.Name(), Kind: namespace.Folder})
		case info.Mode().IsRegular():
			entries = append(entries, namespace.Entry{ID: namespace.None, Name: info.Name(), Kind: namespace.File})
		}
	}

	return entries, nil
}

// join returns the path of the entry called name inside the current folder.
// Normalization confines name to a single path segment.
func (d *Disk) join(name string) (string, error) {
	normalized, err := names.Normalize(name)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", namespace.ErrInvalidName, name, err)
	}

	return filepath.Join(d.dir, normalized), nil
}

// CreateChild implements Backend.
// Files are created empty, an existing file is truncated.
func (d *Disk) CreateChild(ctx context.Context, name string, kind namespace.Kind) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := d.join(name)
	if err != nil {
		return err
	}

	switch kind {
	case namespace.File:
		f, err := d.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
		if err != nil {
			return err
		}
		return f.Close()
	case namespace.Folder:
		return d.fs.Mkdir(path, dirPerm)
	default:
		return fmt.Errorf("%w: %s", namespace.ErrUnknownKind, kind)
	}
}

// MoveTo implements Backend.
func (d *Disk) MoveTo(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := namespace.ParseTarget(token)
	switch target.Move() {
	case namespace.MoveStay:
		return nil
	case namespace.MoveUp:
		parent := filepath.Dir(d.dir)
		if parent == d.dir {
			return namespace.ErrAlreadyAtRoot
		}
		d.dir = parent
		return nil
	}

	path, err := d.join(target.Name())
	if err != nil {
		return fmt.Errorf("%w: %q", namespace.ErrChildNotFound, target.Name())
	}
	info, err := d.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", namespace.ErrChildNotFound, target.Name())
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", namespace.ErrNotAFolder, target.Name())
	}
	d.dir = path

	return nil
}

// Location implements Backend.
func (d *Disk) Location() string {
	return d.dir
}

// Close implements Backend.
func (d *Disk) Close() error {
	return nil
}

var _ Backend = &Disk{}
