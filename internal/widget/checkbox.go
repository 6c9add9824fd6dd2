package widget

import (
	"checkgrip/internal/domain"
)

// CheckBox is a checkable leaf
type CheckBox struct {
	id       domain.ID
	label    string
	checked  bool
	parent   *Container
	listener domain.CheckedChangeFunc
}

// NewCheckBox creates an unchecked box. id may be NoID; the selection group
// allocates one when the box is attached.
func NewCheckBox(id domain.ID, label string) *CheckBox {
	return &CheckBox{id: id, label: label}
}

func (b *CheckBox) ID() domain.ID      { return b.id }
func (b *CheckBox) SetID(id domain.ID) { b.id = id }
func (b *CheckBox) Label() string      { return b.label }
func (b *CheckBox) Checked() bool      { return b.checked }

// Parent returns the container holding b
func (b *CheckBox) Parent() *Container { return b.parent }

func (b *CheckBox) parentContainer() *Container     { return b.parent }
func (b *CheckBox) setParentContainer(p *Container) { b.parent = p }

// SetChecked updates the flag and notifies the listener on change only
func (b *CheckBox) SetChecked(checked bool) {
	if b.checked == checked {
		return
	}
	b.checked = checked
	if b.listener != nil {
		b.listener(b, checked)
	}
}

// Toggle flips the flag the way a user tap would
func (b *CheckBox) Toggle() {
	b.SetChecked(!b.checked)
}

// SetOnCheckedChange replaces the single listener slot
func (b *CheckBox) SetOnCheckedChange(fn domain.CheckedChangeFunc) {
	b.listener = fn
}

// HasListener reports whether a listener is installed
func (b *CheckBox) HasListener() bool {
	return b.listener != nil
}
