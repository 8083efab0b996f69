package shader

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeName is returned by [Tree.RenameNode] when the name is empty.
	ErrInvalidNodeName = errors.New("node name must not be empty")

	// ErrDuplicateNodeName is returned by [Tree.RenameNode] when another node
	// in the tree already uses the name.
	ErrDuplicateNodeName = errors.New("duplicate node name")

	// ErrUnknownNode is returned when a node or socket does not belong to the tree.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNodeAttached is returned by [Tree.AddNode] when the node already
	// belongs to a tree.
	ErrNodeAttached = errors.New("node already attached to a tree")

	// ErrSocketDirection is returned by [Tree.AddLink] when the source is not
	// an output socket or the target is not an input socket.
	ErrSocketDirection = errors.New("links must go from an output to an input socket")

	// ErrSelfLink is returned by [Tree.AddLink] when both sockets belong to the
	// same node.
	ErrSelfLink = errors.New("cannot link a node to itself")
)

// Link connects an output socket to an input socket.
type Link struct {
	From *Socket
	To   *Socket
}

// Tree is a material's node graph.
//
// The zero value is not usable - use [NewTree].
type Tree struct {
	nodes  []*Node
	byName map[string]*Node
	links  []*Link
}

// NewTree creates an empty node tree.
func NewTree() *Tree {
	return &Tree{byName: make(map[string]*Node)}
}

// Nodes returns the nodes in insertion order.
// The returned slice is a copy; the nodes are shared.
func (t *Tree) Nodes() []*Node { return slices.Clone(t.nodes) }

// Links returns the links in insertion order.
func (t *Tree) Links() []*Link { return slices.Clone(t.links) }

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// LinkCount returns the number of links.
func (t *Tree) LinkCount() int { return len(t.links) }

// Node looks up a node by name.
func (t *Tree) Node(name string) (*Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// UniqueName returns base if it is free, otherwise the first free name of the
// form "base.001", "base.002", ...
func (t *Tree) UniqueName(base string) string {
	if base == "" {
		base = "Node"
	}
	if _, taken := t.byName[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if _, taken := t.byName[candidate]; !taken {
			return candidate
		}
	}
}

// AddNode attaches a detached node and gives it a unique name derived from
// its label (or type when no label is set).
func (t *Tree) AddNode(n *Node) error {
	if n.tree != nil {
		return ErrNodeAttached
	}
	base := n.Label
	if base == "" {
		base = n.Type
	}
	n.name = t.UniqueName(base)
	n.tree = t
	t.nodes = append(t.nodes, n)
	t.byName[n.name] = n
	return nil
}

// RenameNode changes a node's name. Renaming a node to its current name is a
// no-op.
func (t *Tree) RenameNode(n *Node, name string) error {
	if n.tree != t {
		return ErrUnknownNode
	}
	if name == "" {
		return ErrInvalidNodeName
	}
	if name == n.name {
		return nil
	}
	if _, taken := t.byName[name]; taken {
		return ErrDuplicateNodeName
	}
	delete(t.byName, n.name)
	n.name = name
	t.byName[name] = n
	return nil
}

// RemoveNode detaches a node and every link touching it.
func (t *Tree) RemoveNode(n *Node) error {
	if n.tree != t {
		return ErrUnknownNode
	}
	t.links = slices.DeleteFunc(t.links, func(l *Link) bool {
		if l.From.node == n || l.To.node == n {
			l.From.links--
			l.To.links--
			return true
		}
		return false
	})
	t.nodes = slices.DeleteFunc(t.nodes, func(x *Node) bool { return x == n })
	delete(t.byName, n.name)
	n.tree = nil
	return nil
}

// Clear removes all nodes and links.
func (t *Tree) Clear() {
	for _, l := range t.links {
		l.From.links--
		l.To.links--
	}
	for _, n := range t.nodes {
		n.tree = nil
	}
	t.nodes = nil
	t.links = nil
	t.byName = make(map[string]*Node)
}

// AddLink connects an output socket to an input socket. Both nodes must
// belong to the tree. An input accepts a single link: any existing link into
// to is replaced.
func (t *Tree) AddLink(from, to *Socket) (*Link, error) {
	if from == nil || to == nil || from.node == nil || to.node == nil {
		return nil, ErrUnknownNode
	}
	if from.node.tree != t || to.node.tree != t {
		return nil, ErrUnknownNode
	}
	if !from.Output || to.Output {
		return nil, ErrSocketDirection
	}
	if from.node == to.node {
		return nil, ErrSelfLink
	}

	t.links = slices.DeleteFunc(t.links, func(l *Link) bool {
		if l.To == to {
			l.From.links--
			l.To.links--
			return true
		}
		return false
	})

	l := &Link{From: from, To: to}
	from.links++
	to.links++
	t.links = append(t.links, l)
	return l, nil
}
