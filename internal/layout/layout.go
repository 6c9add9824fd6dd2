// Package layout converts between layout documents and widget trees.
package layout

import (
	"fmt"

	"checkgrip/internal/config"
	"checkgrip/internal/domain"
	"checkgrip/internal/widget"
)

// Build creates the nodes of doc under root. Each top-level entry is built
// completely before it is added, so a section arrives in the tree as one
// subtree.
func Build(doc *config.Layout, root *widget.Container) error {
	for i, n := range doc.Nodes {
		node, err := buildNode(n)
		if err != nil {
			return fmt.Errorf("nodes[%d]: %w", i, err)
		}
		root.Add(node)
	}
	return nil
}

func buildNode(n config.Node) (domain.Node, error) {
	id := domain.ID(n.ID)
	switch n.Kind {
	case config.KindSection:
		section := widget.NewContainer(id, n.Label)
		for i, child := range n.Children {
			node, err := buildNode(child)
			if err != nil {
				return nil, fmt.Errorf("children[%d]: %w", i, err)
			}
			section.Add(node)
		}
		return section, nil
	case config.KindCheckbox:
		box := widget.NewCheckBox(id, n.Label)
		box.SetChecked(n.Checked)
		return box, nil
	case config.KindLabel:
		return widget.NewLabel(id, n.Label), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidLayout, n.Kind)
	}
}

// Snapshot describes the current tree under root, including allocated ids
// and checked flags
func Snapshot(root *widget.Container, title string) *config.Layout {
	return &config.Layout{
		Title: title,
		Nodes: snapshotChildren(root),
	}
}

func snapshotChildren(c *widget.Container) []config.Node {
	var nodes []config.Node
	for _, child := range c.Children() {
		nodes = append(nodes, snapshotNode(child))
	}
	return nodes
}

func snapshotNode(n domain.Node) config.Node {
	out := config.Node{ID: string(n.ID())}
	if l, ok := n.(widget.Labeled); ok {
		out.Label = l.Label()
	}
	switch v := n.(type) {
	case *widget.Container:
		out.Kind = config.KindSection
		out.Children = snapshotChildren(v)
	case domain.Checkable:
		out.Kind = config.KindCheckbox
		out.Checked = v.Checked()
	default:
		out.Kind = config.KindLabel
	}
	return out
}
