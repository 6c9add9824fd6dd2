package domain

// ID names a node within one tree
type ID string

// NoID is the sentinel for "no selection" and for nodes that have not been
// given an identifier yet
const NoID ID = ""

// Node is anything that can live in a selection tree
type Node interface {
	ID() ID
	SetID(id ID)
}

// Parent is a node that holds other nodes
type Parent interface {
	Node
	ChildCount() int
	ChildAt(index int) Node
}

// CheckedChangeFunc is called by a Checkable after its checked flag changed
type CheckedChangeFunc func(item Checkable, checked bool)

// Checkable is a leaf with a boolean checked state and a single listener slot.
// SetChecked must only notify when the state actually changes.
type Checkable interface {
	Node
	Checked() bool
	SetChecked(checked bool)
	SetOnCheckedChange(fn CheckedChangeFunc) // nil uninstalls
}
