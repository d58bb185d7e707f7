// Package layout models the measurable content tree a scroll surface moves:
// a wrapper viewport, a content node and the content's children.
package layout

// Axis is the direction children flow in.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Node is one box in the content tree. Width and Height are explicit extents;
// a zero extent is "auto" and is derived from the children along Flow.
type Node struct {
	ID     string
	Body   string
	Width  float64
	Height float64
	Flow   Axis
	// Clone marks nodes injected as copies of other nodes.
	Clone bool

	children []*Node
}

// NewNode creates a node with explicit extents.
func NewNode(id string, width, height float64) *Node {
	return &Node{ID: id, Width: width, Height: height}
}

// Children returns the child list. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Append adds children at the end.
func (n *Node) Append(children ...*Node) {
	n.children = append(n.children, children...)
}

// Prepend adds a child at the start.
func (n *Node) Prepend(child *Node) {
	n.children = append([]*Node{child}, n.children...)
}

// Remove detaches child and reports whether it was present.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// Copy returns a deep copy of n marked as a clone.
func (n *Node) Copy() *Node {
	c := &Node{
		ID:     n.ID,
		Body:   n.Body,
		Width:  n.Width,
		Height: n.Height,
		Flow:   n.Flow,
		Clone:  true,
	}
	for _, child := range n.children {
		c.children = append(c.children, child.Copy())
	}
	return c
}

// MeasuredWidth returns Width, or the children's extent when Width is auto.
func (n *Node) MeasuredWidth() float64 {
	if n.Width > 0 {
		return n.Width
	}
	return n.auto(Horizontal, (*Node).MeasuredWidth)
}

// MeasuredHeight returns Height, or the children's extent when Height is auto.
func (n *Node) MeasuredHeight() float64 {
	if n.Height > 0 {
		return n.Height
	}
	return n.auto(Vertical, (*Node).MeasuredHeight)
}

// auto sums children along the flow axis and takes the largest across it.
func (n *Node) auto(axis Axis, measure func(*Node) float64) float64 {
	total, largest := 0.0, 0.0
	for _, c := range n.children {
		v := measure(c)
		total += v
		if v > largest {
			largest = v
		}
	}
	if n.Flow == axis {
		return total
	}
	return largest
}
