package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checkgrip/internal/domain"
	"checkgrip/internal/ids"
	"checkgrip/internal/widget"
)

// observer records what the group had already done when the event arrived
type observer struct {
	group       *Group
	added       []domain.ID
	removed     []domain.ID
	idsAtAdd    []domain.ID
	listenerSet []bool
}

func (o *observer) OnChildAdded(_ *widget.Container, child domain.Node) {
	o.added = append(o.added, child.ID())
	o.idsAtAdd = append(o.idsAtAdd, o.group.CheckedID())
	if box, ok := child.(*widget.CheckBox); ok {
		o.listenerSet = append(o.listenerSet, box.HasListener())
	}
}

func (o *observer) OnChildRemoved(_ *widget.Container, child domain.Node) {
	o.removed = append(o.removed, child.ID())
}

func TestPassThroughForwardsAfterGroupReacts(t *testing.T) {
	root := widget.NewContainer("root", "")
	obs := &observer{}
	g, _ := Bind(root, ids.NewSequence("n"), Options{}, obs)
	obs.group = g

	box := widget.NewCheckBox("a", "A")
	box.SetChecked(true)
	root.Add(box)
	root.Remove(box)

	assert.Equal(t, []domain.ID{"a"}, obs.added)
	assert.Equal(t, []domain.ID{"a"}, obs.removed)
	assert.Equal(t, []domain.ID{"a"}, obs.idsAtAdd)
	assert.Equal(t, []bool{true}, obs.listenerSet)
}

func TestPassThroughSeesNestedChanges(t *testing.T) {
	root := widget.NewContainer("root", "")
	section := widget.NewContainer("section", "")
	root.Add(section)

	g, pt := Bind(root, ids.NewSequence("n"), Options{}, nil)
	obs := &observer{group: g}
	pt.SetNext(obs)

	late := widget.NewCheckBox(domain.NoID, "Late")
	section.Add(late)

	assert.Equal(t, domain.ID("n-1"), late.ID())
	assert.True(t, late.HasListener())
	assert.Equal(t, []domain.ID{"n-1"}, obs.added)

	late.Toggle()
	assert.Equal(t, domain.ID("n-1"), g.CheckedID())
}
