package parameters

import (
	"sort"
	"strings"
)

// Node is a branch or leaf of the parameter tree. Leaves carry a Series.
type Node struct {
	Name     string
	Children map[string]*Node
	Series   *Series
}

// Tree is an in-memory parameter namespace. It is read-only once loaded and
// safe for concurrent use.
type Tree struct {
	root *Node
}

// NewTree wraps a root node.
func NewTree(root *Node) *Tree {
	if root == nil {
		root = &Node{Children: map[string]*Node{}}
	}
	return &Tree{root: root}
}

// Resolve walks the dotted path and returns the parameter at its end. Paths
// that stop on a branch, or name a missing child, do not resolve.
func (t *Tree) Resolve(path string) (Parameter, bool) {
	series, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	return series, true
}

// Lookup is Resolve returning the concrete Series.
func (t *Tree) Lookup(path string) (*Series, bool) {
	path = strings.TrimSpace(path)
	if path == "" || t == nil || t.root == nil {
		return nil, false
	}

	node := t.root
	for _, part := range strings.Split(path, ".") {
		child, ok := node.Children[part]
		if !ok {
			return nil, false
		}
		node = child
	}
	if node.Series == nil {
		return nil, false
	}
	return node.Series, true
}

// Paths returns every leaf path in sorted order.
func (t *Tree) Paths() []string {
	var paths []string
	if t == nil || t.root == nil {
		return paths
	}
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		if n.Series != nil {
			paths = append(paths, prefix)
		}
		for name, child := range n.Children {
			next := name
			if prefix != "" {
				next = prefix + "." + name
			}
			walk(next, child)
		}
	}
	walk("", t.root)
	sort.Strings(paths)
	return paths
}

// Describe returns the description of the parameter at path, or an empty
// string when it has none.
func (t *Tree) Describe(path string) string {
	if series, ok := t.Lookup(path); ok {
		return series.Description
	}
	return ""
}
