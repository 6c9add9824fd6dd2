// Package selection keeps at most one checkable item checked across a tree
// of arbitrarily nested sections.
//
// A Group never walks the tree on its own. Structural changes reach it through
// AttachSubtree and DetachSubtree (PassThrough wires those to a container's
// hierarchy events) and direct toggles reach it through the single listener it
// installs on every managed item. Every call is expected to happen on one
// goroutine; the protect flag only breaks synchronous re-entrancy.
package selection

import (
	"log"

	"checkgrip/internal/domain"
)

// OnCheckedChangeFunc receives the group and the selected id, NoID when the
// selection was cleared
type OnCheckedChangeFunc func(g *Group, id domain.ID)

// Finder locates a node anywhere in the managed tree
type Finder interface {
	FindByID(id domain.ID) domain.Node
}

// Allocator provides identifiers for items attached without one
type Allocator interface {
	Next() domain.ID
}

// Options tune attach behaviour
type Options struct {
	// NormalizeOnAttach unchecks every pre-checked item of an attached
	// subtree except the last one visited
	NormalizeOnAttach bool
}

// Group coordinates the checked state of every checkable item in a tree
type Group struct {
	tree  Finder
	alloc Allocator
	opts  Options

	checkedID domain.ID
	protect   bool
	listener  OnCheckedChangeFunc
	tracker   domain.CheckedChangeFunc // shared by every managed item
}

// New creates a group with nothing selected
func New(tree Finder, alloc Allocator, opts Options) *Group {
	g := &Group{
		tree:      tree,
		alloc:     alloc,
		opts:      opts,
		checkedID: domain.NoID,
	}
	g.tracker = g.onChildCheckedChanged
	return g
}

// CheckedID returns the selected identifier or NoID
func (g *Group) CheckedID() domain.ID {
	return g.checkedID
}

// SetOnCheckedChange replaces the listener. nil unsubscribes.
func (g *Group) SetOnCheckedChange(fn OnCheckedChangeFunc) {
	g.listener = fn
}

// Check selects id and notifies the listener once. id does not have to be
// present in the tree; it becomes the selection all the same. Checking the
// current selection again is a no-op.
func (g *Group) Check(id domain.ID) {
	if id == g.checkedID {
		return
	}
	g.moveSelection(id)
	g.notify(id)
}

// ClearCheck drops the selection
func (g *Group) ClearCheck() {
	g.Check(domain.NoID)
}

// SetCheckWithoutNotif selects id like Check but never calls the listener
func (g *Group) SetCheckWithoutNotif(id domain.ID) {
	if id == g.checkedID {
		return
	}
	g.moveSelection(id)
}

// SetCheckedState sets the flag of the item named id if it is present and
// checkable. The change reaches the group through the item's listener, the
// same way a direct toggle does.
func (g *Group) SetCheckedState(id domain.ID, checked bool) {
	g.setCheckedState(id, checked)
}

// AttachSubtree starts managing every checkable item under root, root
// included. Items without an id get one from the allocator that is not yet
// used anywhere in the tree. A pre-checked
// item becomes the selection without a notification; when several are
// checked the last one visited wins.
func (g *Group) AttachSubtree(root domain.Node) {
	items := domain.Checkables(root)
	if len(items) == 0 {
		return
	}

	batch := make(map[domain.ID]bool, len(items))
	for _, item := range items {
		if item.ID() == domain.NoID && g.alloc != nil {
			item.SetID(g.nextFreeID())
		}
		item.SetOnCheckedChange(g.tracker)
		batch[item.ID()] = true
	}

	var winner domain.Checkable
	for _, item := range items {
		if !item.Checked() {
			continue
		}
		g.suppress(func() {
			// Items arriving in the same subtree are not part of the tree the
			// previous selection was made in, so they are left alone.
			if g.checkedID != domain.NoID && !batch[g.checkedID] {
				g.setCheckedState(g.checkedID, false)
			}
			if g.opts.NormalizeOnAttach && winner != nil && winner != item {
				winner.SetChecked(false)
			}
		})
		winner = item
		g.checkedID = item.ID()
	}

	if winner != nil {
		log.Printf("selection: adopted pre-checked item %s", winner.ID())
	}
}

// DetachSubtree stops managing every checkable item under root. The
// selection is kept even when it names a detached item.
func (g *Group) DetachSubtree(root domain.Node) {
	for _, item := range domain.Checkables(root) {
		item.SetOnCheckedChange(nil)
	}
}

// onChildCheckedChanged reacts to an item toggled outside the group's API.
// Unchecking the selected item still reports that item's id.
func (g *Group) onChildCheckedChanged(item domain.Checkable, checked bool) {
	if g.protect {
		return
	}

	g.suppress(func() {
		if g.checkedID != domain.NoID {
			g.setCheckedState(g.checkedID, false)
		}
		// Still guarded: item may be the previous selection, and re-asserting
		// it unguarded re-enters this handler.
		item.SetChecked(checked)
	})

	id := item.ID()
	g.checkedID = id
	g.notify(id)
}

// nextFreeID skips allocator ids already taken by a node in the tree
func (g *Group) nextFreeID() domain.ID {
	id := g.alloc.Next()
	if g.tree == nil {
		return id
	}
	for g.tree.FindByID(id) != nil {
		id = g.alloc.Next()
	}
	return id
}

// moveSelection unchecks the old item and checks the new one without letting
// their callbacks re-enter the group
func (g *Group) moveSelection(id domain.ID) {
	g.suppress(func() {
		if g.checkedID != domain.NoID {
			g.setCheckedState(g.checkedID, false)
		}
		if id != domain.NoID {
			g.setCheckedState(id, true)
		}
	})
	g.checkedID = id
}

func (g *Group) setCheckedState(id domain.ID, checked bool) {
	if g.tree == nil {
		return
	}
	if item, ok := g.tree.FindByID(id).(domain.Checkable); ok {
		item.SetChecked(checked)
	}
}

// suppress runs fn with item callbacks ignored and restores the flag even if
// fn panics
func (g *Group) suppress(fn func()) {
	prev := g.protect
	g.protect = true
	defer func() { g.protect = prev }()
	fn()
}

func (g *Group) notify(id domain.ID) {
	if g.listener != nil {
		g.listener(g, id)
	}
}
