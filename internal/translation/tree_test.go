package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeMakeThenFindCaseInsensitive(t *testing.T) {
	tree := NewTree()

	made := tree.Make("a.b.c")
	require.NotNil(t, made)

	found := tree.Find("A.B.C")
	assert.Same(t, made, found)
}

func TestTreeFindWithoutCreation(t *testing.T) {
	tree := NewTree()
	assert.Nil(t, tree.Find("missing"))

	tree.Make("menu.file")
	assert.Nil(t, tree.Find("menu.edit"))
	assert.NotNil(t, tree.Find("menu"))
	assert.NotNil(t, tree.Find("MENU.FILE"))
}

func TestTreeRejectsMalformedPaths(t *testing.T) {
	tree := NewTree()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: ""},
		{name: "leading dot", path: ".a"},
		{name: "trailing dot", path: "a."},
		{name: "consecutive dots", path: "a..b"},
		{name: "lone dot", path: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tree.Make(tt.path))
			assert.Nil(t, tree.Find(tt.path))
		})
	}
}

func TestTreePreservesOriginalCasing(t *testing.T) {
	tree := NewTree()

	node := tree.Make("Menu.File")
	require.NotNil(t, node)
	assert.Equal(t, "File", node.Name())

	// Navigating with different casing reaches the same node and does not
	// rename it.
	again := tree.Make("menu.FILE")
	assert.Same(t, node, again)
	assert.Equal(t, "File", again.Name())
}

func TestNodeLeaves(t *testing.T) {
	tree := NewTree()
	node := tree.Make("menu")
	require.NotNil(t, node)

	node.SetLeaf("Open", true)
	node.SetLeaf("close", false)

	leaf, ok := node.Leaf("OPEN")
	require.True(t, ok)
	assert.Equal(t, "Open", leaf.Key)
	assert.True(t, leaf.Templated)

	leaves := node.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, "close", leaves[0].Key)
	assert.Equal(t, "Open", leaves[1].Key)
}

func TestRootLeaves(t *testing.T) {
	tree := NewTree()
	tree.Root().SetLeaf("greeting", false)

	leaf, ok := tree.Root().Leaf("greeting")
	require.True(t, ok)
	assert.Equal(t, "greeting", leaf.Key)
	assert.Equal(t, "", tree.Root().Name())
}
