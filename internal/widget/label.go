package widget

import (
	"checkgrip/internal/domain"
)

// Label is a plain, non-checkable leaf
type Label struct {
	id     domain.ID
	text   string
	parent *Container
}

// NewLabel creates a text leaf
func NewLabel(id domain.ID, text string) *Label {
	return &Label{id: id, text: text}
}

func (l *Label) ID() domain.ID      { return l.id }
func (l *Label) SetID(id domain.ID) { l.id = id }
func (l *Label) Label() string      { return l.text }

// Parent returns the container holding l
func (l *Label) Parent() *Container { return l.parent }

func (l *Label) parentContainer() *Container     { return l.parent }
func (l *Label) setParentContainer(p *Container) { l.parent = p }
