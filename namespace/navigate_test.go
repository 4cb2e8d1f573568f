package namespace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tCases := []struct {
		token string
		move  Move
		name  string
	}{
		{".", MoveStay, ""},
		{"..", MoveUp, ""},
		{"up", MoveUp, ""},
		{" .. ", MoveUp, ""},
		{"docs", MoveDescend, "docs"},
		{"Up", MoveDescend, "Up"},
	}
	for _, tCase := range tCases {
		t.Run(tCase.token, func(t *testing.T) {
			target := ParseTarget(tCase.token)
			require.Equal(t, tCase.move, target.Move())
			require.Equal(t, tCase.name, target.Name())
		})
	}
}

func TestNavigate(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	root := tree.Root()
	docs, err := tree.Insert(root, "docs", Folder)
	require.NoError(t, err)
	_, err = tree.Insert(root, "a.txt", File)
	require.NoError(t, err)

	tCases := []struct {
		name     string
		cursor   NodeID
		target   Target
		expected NodeID
		err      error
	}{
		{"stay", docs, Stay(), docs, nil},
		{"descend", root, Descend("docs"), docs, nil},
		{"ascend", docs, Up(), root, nil},
		{"ascend from root", root, Up(), root, ErrAlreadyAtRoot},
		{"missing child", root, Descend("missing"), root, ErrChildNotFound},
		{"file is no target", root, Descend("a.txt"), root, ErrNotAFolder},
		{"invalid name", root, Descend("a/b"), root, ErrChildNotFound},
		{"absent cursor", NodeID(99), Stay(), NodeID(99), ErrNoSuchNode},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			actual, err := tree.Navigate(tCase.cursor, tCase.target)
			if tCase.err != nil {
				require.ErrorIs(t, err, tCase.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tCase.expected, actual)
		})
	}
}

func TestNavigateFolderShadowedByFile(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	folder, err := tree.Insert(tree.Root(), "same", Folder)
	require.NoError(t, err)
	// The file is listed first but only folders are eligible.
	_, err = tree.Insert(tree.Root(), "same", File)
	require.NoError(t, err)

	actual, err := tree.Navigate(tree.Root(), Descend("same"))
	require.NoError(t, err)
	require.Equal(t, folder, actual)
}

func TestNavigateFirstMatchWins(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	_, err := tree.Insert(tree.Root(), "dup", Folder)
	require.NoError(t, err)
	newest, err := tree.Insert(tree.Root(), "dup", Folder)
	require.NoError(t, err)

	actual, err := tree.Navigate(tree.Root(), Descend("dup"))
	require.NoError(t, err)
	require.Equal(t, newest, actual)
}

func TestNavigateDeepRoundTrip(t *testing.T) {
	tree := newTestTree(t, NewestFirst)

	// Build several wide levels so a parent is neither the root nor one of its direct children.
	path := []NodeID{tree.Root()}
	for depth := 0; depth < 6; depth++ {
		parent := path[len(path)-1]
		var next NodeID
		for i := 0; i < 3; i++ {
			id, err := tree.Insert(parent, string(rune('a'+i)), Folder)
			require.NoError(t, err)
			_, err = tree.Insert(id, "f.txt", File)
			require.NoError(t, err)
			if i == 1 {
				next = id
			}
		}
		path = append(path, next)
	}

	for i := len(path) - 1; i > 0; i-- {
		entry, err := tree.Entry(path[i])
		require.NoError(t, err)

		down, err := tree.Navigate(path[i-1], Descend(entry.Name))
		require.NoError(t, err)
		require.Equal(t, path[i], down)

		up, err := tree.Navigate(down, Up())
		require.NoError(t, err)
		require.Equal(t, path[i-1], up)
	}
}
