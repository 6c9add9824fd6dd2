package widget

import (
	"checkgrip/internal/domain"
)

// HierarchyListener is told about every node added to or removed from a
// container or any of its descendants
type HierarchyListener interface {
	OnChildAdded(parent *Container, child domain.Node)
	OnChildRemoved(parent *Container, child domain.Node)
}

// attachable is implemented by every node type in this package so a container
// can track ownership
type attachable interface {
	domain.Node
	parentContainer() *Container
	setParentContainer(c *Container)
}

// Container is a section of the tree holding an ordered list of children
type Container struct {
	id       domain.ID
	label    string
	parent   *Container
	children []domain.Node
	listener HierarchyListener
}

// NewContainer creates an empty container
func NewContainer(id domain.ID, label string) *Container {
	return &Container{
		id:    id,
		label: label,
	}
}

func (c *Container) ID() domain.ID      { return c.id }
func (c *Container) SetID(id domain.ID) { c.id = id }
func (c *Container) Label() string      { return c.label }

// Parent returns the container holding c, nil for a root
func (c *Container) Parent() *Container { return c.parent }

func (c *Container) parentContainer() *Container     { return c.parent }
func (c *Container) setParentContainer(p *Container) { c.parent = p }

// ChildCount returns the number of direct children
func (c *Container) ChildCount() int { return len(c.children) }

// ChildAt returns the direct child at index, nil when out of range
func (c *Container) ChildAt(index int) domain.Node {
	if index < 0 || index >= len(c.children) {
		return nil
	}
	return c.children[index]
}

// Children returns a copy of the direct children
func (c *Container) Children() []domain.Node {
	return append([]domain.Node(nil), c.children...)
}

// IndexOf returns the position of child among the direct children or -1
func (c *Container) IndexOf(child domain.Node) int {
	for i, n := range c.children {
		if n == child {
			return i
		}
	}
	return -1
}

// SetOnHierarchyChange installs the listener for structural changes in this
// subtree. Passing nil removes it.
func (c *Container) SetOnHierarchyChange(l HierarchyListener) {
	c.listener = l
}

// Add appends child
func (c *Container) Add(child domain.Node) {
	c.Insert(len(c.children), child)
}

// Insert places child at index, clamped to the valid range. A child that
// already belongs to another container is removed from it first. Inserting
// c or one of its ancestors is ignored.
func (c *Container) Insert(index int, child domain.Node) {
	if child == nil {
		return
	}
	if sub, ok := child.(*Container); ok && sub.contains(c) {
		return
	}
	if a, ok := child.(attachable); ok {
		if old := a.parentContainer(); old != nil {
			old.Remove(child)
		}
		a.setParentContainer(c)
	}

	if index < 0 {
		index = 0
	}
	if index > len(c.children) {
		index = len(c.children)
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child

	c.dispatchAdded(c, child)
}

// Remove detaches child and reports whether it was a direct child
func (c *Container) Remove(child domain.Node) bool {
	index := c.IndexOf(child)
	if index < 0 {
		return false
	}
	c.RemoveAt(index)
	return true
}

// RemoveAt detaches the child at index and returns it, nil when out of range
func (c *Container) RemoveAt(index int) domain.Node {
	if index < 0 || index >= len(c.children) {
		return nil
	}
	child := c.children[index]
	c.children = append(c.children[:index], c.children[index+1:]...)
	if a, ok := child.(attachable); ok {
		a.setParentContainer(nil)
	}

	c.dispatchRemoved(c, child)
	return child
}

// FindByID searches c and its descendants depth first. NoID never matches.
func (c *Container) FindByID(id domain.ID) domain.Node {
	if id == domain.NoID {
		return nil
	}
	var found domain.Node
	domain.Walk(c, func(n domain.Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// contains reports whether n is c or lies below it
func (c *Container) contains(n *Container) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == c {
			return true
		}
	}
	return false
}

// dispatchAdded notifies this container's listener, then every ancestor's
func (c *Container) dispatchAdded(parent *Container, child domain.Node) {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.listener != nil {
			cur.listener.OnChildAdded(parent, child)
		}
	}
}

func (c *Container) dispatchRemoved(parent *Container, child domain.Node) {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.listener != nil {
			cur.listener.OnChildRemoved(parent, child)
		}
	}
}
