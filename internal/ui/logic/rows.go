package logic

import (
	"checkgrip/internal/domain"
	"checkgrip/internal/widget"
)

// RowKind says how a row is drawn and which keys apply to it
type RowKind int

const (
	RowSection RowKind = iota
	RowCheckbox
	RowLabel
)

// Row is one visible line of the tree
type Row struct {
	Node  domain.Node
	Depth int
	Kind  RowKind
}

// Checkbox returns the row's checkbox, nil for other kinds
func (r Row) Checkbox() *widget.CheckBox {
	box, _ := r.Node.(*widget.CheckBox)
	return box
}

// Flatten lists root's descendants (not root itself) in display order
func Flatten(root *widget.Container) []Row {
	var rows []Row
	var walk func(c *widget.Container, depth int)
	walk = func(c *widget.Container, depth int) {
		for _, child := range c.Children() {
			switch n := child.(type) {
			case *widget.Container:
				rows = append(rows, Row{Node: n, Depth: depth, Kind: RowSection})
				walk(n, depth+1)
			case domain.Checkable:
				rows = append(rows, Row{Node: n, Depth: depth, Kind: RowCheckbox})
			default:
				rows = append(rows, Row{Node: n, Depth: depth, Kind: RowLabel})
			}
		}
	}
	walk(root, 0)
	return rows
}
