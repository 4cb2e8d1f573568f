package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	dir := "/exports"
	filesystem := afero.NewMemMapFs()
	s := NewFileStorage(filesystem, dir)

	tCases := []struct {
		name         string
		expectedName string
		content      string
		err          error
	}{
		{"a/b/c", "/a/b/c", "content", nil},
		{"../../etc/passwd", "/etc/passwd", "something", nil},
		{"", "", "", ErrEmptyName},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := s.Store(context.Background(), tCase.name, bytes.NewBufferString(tCase.content))
			if tCase.err != nil {
				require.ErrorIs(t, err, tCase.err)
				return
			}
			require.NoError(t, err)
			content, err := afero.ReadFile(filesystem, filepath.Join(dir, tCase.expectedName))
			require.NoError(t, err, "could not read destination file")
			require.Equal(t, tCase.content, string(content))
		})
	}
}

func TestStorageCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileStorage(afero.NewMemMapFs(), "/").Store(ctx, "tree.md", bytes.NewBufferString("x"))
	require.ErrorIs(t, err, context.Canceled)
}

var errDiskFull = fmt.Errorf("disk full")

// closeFailFs hands out files that report errDiskFull when they are closed.
type closeFailFs struct {
	afero.Fs
}

func (fs closeFailFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return closeFailFile{file}, nil
}

type closeFailFile struct {
	afero.File
}

func (f closeFailFile) Close() error {
	_ = f.File.Close()
	return errDiskFull
}

func TestStorageCloseError(t *testing.T) {
	s := NewFileStorage(closeFailFs{afero.NewMemMapFs()}, "/exports")

	err := s.Store(context.Background(), "tree.md", bytes.NewBufferString("content"))
	require.ErrorIs(t, err, errDiskFull)
	require.ErrorContains(t, err, `writing "tree.md" failed`)
}
