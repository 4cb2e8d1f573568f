// Package testutils provides fixtures shared by tests of several packages.
package testutils

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdata embed.FS

// NewTestScriptFS returns a file system containing the command scripts in testdata/scripts.
func NewTestScriptFS(t *testing.T) fs.FS {
	scriptFS, err := fs.Sub(testdata, "testdata/scripts")
	require.NoError(t, err)

	return scriptFS
}

// ReadTestScript returns the content of the named test script.
func ReadTestScript(t *testing.T, name string) []byte {
	data, err := fs.ReadFile(NewTestScriptFS(t), name)
	require.NoError(t, err)

	return data
}
