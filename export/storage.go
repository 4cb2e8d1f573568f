package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Storage provides methods for persisting exported trees.
type Storage interface {
	Store(ctx context.Context, name string, content io.Reader) error
}

// FileStorage persists to a file system below a base directory.
type FileStorage struct {
	fs      afero.Fs
	baseDir string
}

// NewFileStorage returns an initialized FileStorage.
func NewFileStorage(filesystem afero.Fs, baseDir string) *FileStorage {
	return &FileStorage{fs: filesystem, baseDir: baseDir}
}

var ErrEmptyName = fmt.Errorf("name must not be empty")

// Store implements Storage.
// name is always resolved below the base directory, ".." elements cannot leave it.
func (s *FileStorage) Store(ctx context.Context, name string, content io.Reader) (err error) {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	target := s.path(name)
	if err = s.fs.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("creating export folder failed: %w", err)
	}
	file, err := s.fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening %q failed: %w", name, err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("writing %q failed: %w", name, closeErr)
		}
	}()

	if _, err = io.Copy(file, content); err != nil {
		return fmt.Errorf("writing %q failed: %w", name, err)
	}

	return nil
}

func (s *FileStorage) path(name string) string {
	return filepath.Join(s.baseDir, filepath.Clean(string(filepath.Separator)+name))
}
