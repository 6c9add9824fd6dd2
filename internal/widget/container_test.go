package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkgrip/internal/domain"
)

type event struct {
	added  bool
	parent domain.ID
	child  domain.ID
}

type recordingListener struct {
	events []event
}

func (r *recordingListener) OnChildAdded(parent *Container, child domain.Node) {
	r.events = append(r.events, event{added: true, parent: parent.ID(), child: child.ID()})
}

func (r *recordingListener) OnChildRemoved(parent *Container, child domain.Node) {
	r.events = append(r.events, event{added: false, parent: parent.ID(), child: child.ID()})
}

func TestAddAndRemoveBubbleToAncestors(t *testing.T) {
	root := NewContainer("root", "Root")
	wired := NewContainer("wired", "Wired")
	root.Add(wired)

	rootEvents := &recordingListener{}
	wiredEvents := &recordingListener{}
	root.SetOnHierarchyChange(rootEvents)
	wired.SetOnHierarchyChange(wiredEvents)

	eth := NewCheckBox("eth0", "Ethernet")
	wired.Add(eth)
	require.True(t, wired.Remove(eth))

	want := []event{
		{added: true, parent: "wired", child: "eth0"},
		{added: false, parent: "wired", child: "eth0"},
	}
	assert.Equal(t, want, wiredEvents.events)
	assert.Equal(t, want, rootEvents.events)
	assert.Nil(t, eth.Parent())
}

func TestInsertMovesNodeBetweenContainers(t *testing.T) {
	root := NewContainer("root", "")
	a := NewContainer("a", "")
	b := NewContainer("b", "")
	root.Add(a)
	root.Add(b)

	box := NewCheckBox("x", "X")
	a.Add(box)

	events := &recordingListener{}
	root.SetOnHierarchyChange(events)
	b.Insert(0, box)

	assert.Equal(t, 0, a.ChildCount())
	assert.Equal(t, 1, b.ChildCount())
	assert.Same(t, b, box.Parent())
	assert.Equal(t, []event{
		{added: false, parent: "a", child: "x"},
		{added: true, parent: "b", child: "x"},
	}, events.events)
}

func TestInsertClampsIndex(t *testing.T) {
	c := NewContainer("c", "")
	c.Insert(5, NewLabel("one", "1"))
	c.Insert(-3, NewLabel("zero", "0"))
	c.Insert(1, NewLabel("mid", "m"))

	var ids []domain.ID
	for _, n := range c.Children() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []domain.ID{"zero", "mid", "one"}, ids)
	assert.Nil(t, c.ChildAt(3))
	assert.Nil(t, c.RemoveAt(7))
}

func TestFindByIDSearchesNestedSections(t *testing.T) {
	root := NewContainer("root", "")
	outer := NewContainer("outer", "")
	inner := NewContainer("inner", "")
	box := NewCheckBox("deep", "Deep")
	root.Add(outer)
	outer.Add(inner)
	inner.Add(box)
	inner.Add(NewCheckBox(domain.NoID, "Anonymous"))

	assert.Same(t, box, root.FindByID("deep"))
	assert.Same(t, inner, root.FindByID("inner"))
	assert.Same(t, root, root.FindByID("root"))
	assert.Nil(t, root.FindByID("missing"))
	assert.Nil(t, root.FindByID(domain.NoID))
}

func TestCheckBoxNotifiesOnlyOnChange(t *testing.T) {
	box := NewCheckBox("a", "A")
	var calls []bool
	box.SetOnCheckedChange(func(item domain.Checkable, checked bool) {
		assert.Same(t, box, item)
		calls = append(calls, checked)
	})

	box.SetChecked(false)
	box.SetChecked(true)
	box.SetChecked(true)
	box.Toggle()

	assert.Equal(t, []bool{true, false}, calls)

	box.SetOnCheckedChange(nil)
	assert.False(t, box.HasListener())
	box.Toggle()
	assert.Len(t, calls, 2)
}

func TestInsertIgnoresAncestors(t *testing.T) {
	root := NewContainer("root", "")
	mid := NewContainer("mid", "")
	leaf := NewContainer("leaf", "")
	root.Add(mid)
	mid.Add(leaf)

	l := &recordingListener{}
	root.SetOnHierarchyChange(l)

	leaf.Add(root)
	leaf.Add(mid)
	mid.Add(mid)

	assert.Equal(t, 0, leaf.ChildCount())
	assert.Equal(t, 1, mid.ChildCount())
	assert.Same(t, mid, leaf.Parent())
	assert.Nil(t, root.Parent())
	assert.Empty(t, l.events)
	assert.Same(t, leaf, root.FindByID("leaf"))
}
