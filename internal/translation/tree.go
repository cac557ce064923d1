package translation

import (
	"sort"
	"strings"
)

// Leaf is a terminal entry under a tree node: the unqualified key name with
// its template flag. The authoritative text lives in the owning Translation.
type Leaf struct {
	Key       string
	Templated bool
}

// Node is one level of a translation tree. Child and leaf lookup is
// case-insensitive; names keep their original source casing.
type Node struct {
	name     string
	children map[string]*Node
	leaves   map[string]Leaf
}

func newNode(name string) *Node {
	return &Node{
		name:     name,
		children: make(map[string]*Node),
		leaves:   make(map[string]Leaf),
	}
}

// Name returns the node's own (unqualified) name.
func (n *Node) Name() string { return n.name }

// Child resolves a direct child by name, case-insensitively.
func (n *Node) Child(name string) *Node {
	return n.children[strings.ToLower(name)]
}

// Children returns the direct children sorted by folded name.
func (n *Node) Children() []*Node {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Node, len(keys))
	for i, k := range keys {
		out[i] = n.children[k]
	}
	return out
}

// SetLeaf stores a leaf under this node, keyed case-insensitively by the
// unqualified key name.
func (n *Node) SetLeaf(key string, templated bool) {
	n.leaves[strings.ToLower(key)] = Leaf{Key: key, Templated: templated}
}

// Leaf resolves a leaf by unqualified name, case-insensitively.
func (n *Node) Leaf(name string) (Leaf, bool) {
	l, ok := n.leaves[strings.ToLower(name)]
	return l, ok
}

// Leaves returns the node's leaves sorted by folded key.
func (n *Node) Leaves() []Leaf {
	keys := make([]string, 0, len(n.leaves))
	for k := range n.leaves {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Leaf, len(keys))
	for i, k := range keys {
		out[i] = n.leaves[k]
	}
	return out
}

func (n *Node) find(path string) *Node {
	head, rest, hasDot := strings.Cut(path, ".")
	if head == "" {
		return nil
	}
	child := n.children[strings.ToLower(head)]
	if child == nil {
		return nil
	}
	if !hasDot {
		return child
	}
	return child.find(rest)
}

func (n *Node) make(path string) *Node {
	head, rest, hasDot := strings.Cut(path, ".")
	if head == "" {
		return nil
	}
	folded := strings.ToLower(head)
	child, ok := n.children[folded]
	if !ok {
		child = newNode(head)
		n.children[folded] = child
	}
	if !hasDot {
		return child
	}
	return child.make(rest)
}

// Tree indexes one parsed source's entries by dotted path. It owns a single
// root node with an empty name.
type Tree struct {
	root *Node
}

// NewTree creates a tree with an empty root.
func NewTree() *Tree {
	return &Tree{root: newNode("")}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Find resolves a dotted path to a node, navigating case-insensitively.
// It returns nil for an empty path, for any empty segment, or when a segment
// does not exist. No nodes are created.
func (t *Tree) Find(path string) *Node {
	if path == "" {
		return nil
	}
	return t.root.find(path)
}

// Make resolves a dotted path to a node, creating missing intermediate nodes
// as it descends. It returns nil for an empty path or for any empty segment
// (consecutive dots, a leading dot, or a trailing dot).
func (t *Tree) Make(path string) *Node {
	if path == "" {
		return nil
	}
	return t.root.make(path)
}
