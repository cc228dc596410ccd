// Package widget is the retained scene the series handlers draw into: named
// container nodes, pooled label widgets and plain text elements.
//
// Nothing here is safe for concurrent use. A chart ticks its handlers on one
// goroutine and every mutation happens inside that tick.
package widget

import "github.com/gogpu/ggchart/style"

// Node is a named container in the widget tree.
type Node struct {
	name     string
	parent   *Node
	children []*Node
	active   bool
	bounds   style.Rect

	// element is the widget attached to this node, if any.
	element any
}

// NewNode creates a detached active node.
func NewNode(name string) *Node {
	return &Node{name: name, active: true}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in insertion order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Bounds returns the rectangle the node was laid out in.
func (n *Node) Bounds() style.Rect { return n.bounds }

// SetBounds records the rectangle the node is laid out in.
func (n *Node) SetBounds(r style.Rect) { n.bounds = r }

// Active reports the node's own active flag.
func (n *Node) Active() bool { return n.active }

// SetActive shows or hides the node.
func (n *Node) SetActive(active bool) { n.active = active }

// ActiveInHierarchy reports whether the node and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.parent {
		if !p.active {
			return false
		}
	}
	return true
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// GetOrAddChild returns the named child, creating it if needed.
// The second result is true when the child was created.
func (n *Node) GetOrAddChild(name string) (*Node, bool) {
	if c := n.Child(name); c != nil {
		return c, false
	}
	c := NewNode(name)
	n.AddChild(c)
	return c, true
}

// AddChild attaches c to n, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) {
	if c.parent == n {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c. Returns false if c is not a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, cc := range n.children {
		if cc == c {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			c.parent = nil
			return true
		}
	}
	return false
}

// HideAll deactivates every direct child.
func (n *Node) HideAll() {
	for _, c := range n.children {
		c.active = false
	}
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn stops descent into that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Element returns the widget attached to the node.
func (n *Node) Element() any { return n.element }

func (n *Node) rename(name string) { n.name = name }
