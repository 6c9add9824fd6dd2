package selection

import (
	"checkgrip/internal/domain"
	"checkgrip/internal/widget"
)

// PassThrough feeds a container's hierarchy events to a group and then hands
// them to an optional user listener
type PassThrough struct {
	group *Group
	next  widget.HierarchyListener
}

// NewPassThrough creates the listener. next may be nil.
func NewPassThrough(g *Group, next widget.HierarchyListener) *PassThrough {
	return &PassThrough{group: g, next: next}
}

// SetNext replaces the user listener
func (p *PassThrough) SetNext(next widget.HierarchyListener) {
	p.next = next
}

func (p *PassThrough) OnChildAdded(parent *widget.Container, child domain.Node) {
	p.group.AttachSubtree(child)
	if p.next != nil {
		p.next.OnChildAdded(parent, child)
	}
}

func (p *PassThrough) OnChildRemoved(parent *widget.Container, child domain.Node) {
	p.group.DetachSubtree(child)
	if p.next != nil {
		p.next.OnChildRemoved(parent, child)
	}
}

// Bind creates a group managing root. Items already under root are attached
// right away and the group follows every later change through a PassThrough
// installed as root's hierarchy listener.
func Bind(root *widget.Container, alloc Allocator, opts Options, next widget.HierarchyListener) (*Group, *PassThrough) {
	g := New(root, alloc, opts)
	g.AttachSubtree(root)
	pt := NewPassThrough(g, next)
	root.SetOnHierarchyChange(pt)
	return g, pt
}
