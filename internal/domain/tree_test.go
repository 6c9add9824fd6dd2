package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkgrip/internal/domain"
	"checkgrip/internal/widget"
)

func TestCheckablesVisitsDepthFirst(t *testing.T) {
	root := widget.NewContainer("root", "")
	s1 := widget.NewContainer("s1", "")
	s1.Add(widget.NewCheckBox("a", ""))
	s1.Add(widget.NewLabel("note", ""))
	s1.Add(widget.NewCheckBox("b", ""))
	root.Add(s1)
	root.Add(widget.NewCheckBox("c", ""))

	var ids []domain.ID
	for _, item := range domain.Checkables(root) {
		ids = append(ids, item.ID())
	}
	assert.Equal(t, []domain.ID{"a", "b", "c"}, ids)

	require.Len(t, domain.Checkables(widget.NewCheckBox("solo", "")), 1)
	assert.Empty(t, domain.Checkables(nil))
}

func TestWalkStopsEarly(t *testing.T) {
	root := widget.NewContainer("root", "")
	root.Add(widget.NewLabel("first", ""))
	root.Add(widget.NewLabel("second", ""))

	var visited []domain.ID
	complete := domain.Walk(root, func(n domain.Node) bool {
		visited = append(visited, n.ID())
		return n.ID() != "first"
	})
	assert.False(t, complete)
	assert.Equal(t, []domain.ID{"root", "first"}, visited)
}
