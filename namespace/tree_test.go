package namespace

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, order ChildOrder) *Tree {
	t.Helper()
	tree, err := NewTree(DefaultRootName, order)
	require.NoError(t, err)

	return tree
}

func childNames(t *testing.T, tree *Tree, id NodeID) []string {
	t.Helper()
	children, err := tree.Children(id)
	require.NoError(t, err)

	var out []string
	for _, child := range children {
		out = append(out, child.Name)
	}

	return out
}

func TestNewTree(t *testing.T) {
	tree := newTestTree(t, NewestFirst)

	root, err := tree.Entry(tree.Root())
	require.NoError(t, err)
	require.Equal(t, Entry{ID: tree.Root(), Name: "Root", Kind: Folder}, root)
	require.Equal(t, 1, tree.Len())

	parent, err := tree.Parent(tree.Root())
	require.NoError(t, err)
	require.Equal(t, None, parent)

	_, err = NewTree("", NewestFirst)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestCreateNode(t *testing.T) {
	tree := newTestTree(t, NewestFirst)

	tCases := []struct {
		name     string
		nodeName string
		kind     Kind
		err      error
	}{
		{"file", "a.txt", File, nil},
		{"folder", "docs", Folder, nil},
		{"unknown kind", "x", Kind(42), ErrUnknownKind},
		{"empty name", " ", Folder, ErrInvalidName},
		{"too long", strings.Repeat("n", 100), File, ErrNameTooLong},
		{"reserved", "..", Folder, ErrInvalidName},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			id, err := tree.CreateNode(tCase.nodeName, tCase.kind)
			if tCase.err != nil {
				require.ErrorIs(t, err, tCase.err)
				require.Equal(t, None, id)
				return
			}
			require.NoError(t, err)

			entry, err := tree.Entry(id)
			require.NoError(t, err)
			require.Equal(t, tCase.nodeName, entry.Name)
			require.Equal(t, tCase.kind, entry.Kind)

			parent, err := tree.Parent(id)
			require.NoError(t, err)
			require.Equal(t, None, parent)
			require.Empty(t, childNames(t, tree, id))
		})
	}
}

func TestAddChild(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	file, err := tree.CreateNode("a.txt", File)
	require.NoError(t, err)
	require.NoError(t, tree.AddChild(tree.Root(), file))

	t.Run("parent is a file", func(t *testing.T) {
		child, err := tree.CreateNode("b.txt", File)
		require.NoError(t, err)
		require.ErrorIs(t, tree.AddChild(file, child), ErrNotAFolder)
	})

	t.Run("child already attached", func(t *testing.T) {
		require.ErrorIs(t, tree.AddChild(tree.Root(), file), ErrAlreadyAttached)
	})

	t.Run("root as child", func(t *testing.T) {
		folder, err := tree.Insert(tree.Root(), "docs", Folder)
		require.NoError(t, err)
		require.ErrorIs(t, tree.AddChild(folder, tree.Root()), ErrAlreadyAttached)
	})

	t.Run("detached parent", func(t *testing.T) {
		detached, err := tree.CreateNode("loose", Folder)
		require.NoError(t, err)
		child, err := tree.CreateNode("c.txt", File)
		require.NoError(t, err)
		require.ErrorIs(t, tree.AddChild(detached, child), ErrDetached)
	})

	t.Run("absent nodes", func(t *testing.T) {
		require.ErrorIs(t, tree.AddChild(None, file), ErrNoSuchNode)
		require.ErrorIs(t, tree.AddChild(tree.Root(), NodeID(1000)), ErrNoSuchNode)
	})
}

func TestInsertOnFileAllocatesNothing(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	file, err := tree.Insert(tree.Root(), "a.txt", File)
	require.NoError(t, err)
	before := tree.Len()

	_, err = tree.Insert(file, "b.txt", File)
	require.ErrorIs(t, err, ErrNotAFolder)
	require.Equal(t, before, tree.Len())
}

func TestChildOrder(t *testing.T) {
	tCases := []struct {
		order    ChildOrder
		expected []string
	}{
		{NewestFirst, []string{"c", "b", "a"}},
		{OldestFirst, []string{"a", "b", "c"}},
	}
	for _, tCase := range tCases {
		t.Run(tCase.order.String(), func(t *testing.T) {
			tree := newTestTree(t, tCase.order)
			for _, name := range []string{"a", "b", "c"} {
				_, err := tree.Insert(tree.Root(), name, File)
				require.NoError(t, err)
			}
			require.Equal(t, tCase.expected, childNames(t, tree, tree.Root()))
		})
	}
}

func TestParseChildOrder(t *testing.T) {
	order, err := ParseChildOrder("")
	require.NoError(t, err)
	require.Equal(t, NewestFirst, order)

	order, err = ParseChildOrder("oldest-first")
	require.NoError(t, err)
	require.Equal(t, OldestFirst, order)

	_, err = ParseChildOrder("random")
	require.ErrorIs(t, err, ErrBadChildOrder)
}

func TestPath(t *testing.T) {
	tree := newTestTree(t, NewestFirst)
	x, err := tree.Insert(tree.Root(), "x", Folder)
	require.NoError(t, err)
	y, err := tree.Insert(x, "y", Folder)
	require.NoError(t, err)

	path, err := tree.Path(y)
	require.NoError(t, err)
	require.Equal(t, "/Root/x/y", path)

	path, err = tree.Path(tree.Root())
	require.NoError(t, err)
	require.Equal(t, "/Root", path)
}

func TestInsertionCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, order := range []ChildOrder{NewestFirst, OldestFirst} {
		tree := newTestTree(t, order)
		folders := []NodeID{tree.Root()}
		addedFolders := map[NodeID]int{}

		for i := 0; i < 500; i++ {
			parent := folders[rnd.Intn(len(folders))]
			kind := File
			if rnd.Intn(2) == 0 {
				kind = Folder
			}
			id, err := tree.Insert(parent, "n", kind)
			require.NoError(t, err)
			if kind == Folder {
				folders = append(folders, id)
				addedFolders[parent]++
			}
		}

		for _, folder := range folders {
			children, err := tree.Children(folder)
			require.NoError(t, err)
			count := 0
			for _, child := range children {
				if child.Kind == Folder {
					count++
				}
			}
			require.Equal(t, addedFolders[folder], count)
		}
		require.Equal(t, 501, tree.Len())
	}
}

func TestWalk(t *testing.T) {
	tree := newTestTree(t, OldestFirst)
	docs, err := tree.Insert(tree.Root(), "docs", Folder)
	require.NoError(t, err)
	_, err = tree.Insert(docs, "a.txt", File)
	require.NoError(t, err)
	_, err = tree.Insert(tree.Root(), "b.txt", File)
	require.NoError(t, err)

	var visited []string
	err = tree.Walk(tree.Root(), func(e Entry) error {
		visited = append(visited, e.Name)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Root", "docs", "a.txt", "b.txt"}, visited)

	stop := ErrChildNotFound
	visited = nil
	err = tree.Walk(tree.Root(), func(e Entry) error {
		visited = append(visited, e.Name)
		if e.Name == "docs" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.True(t, slices.Equal([]string{"Root", "docs"}, visited))
}
