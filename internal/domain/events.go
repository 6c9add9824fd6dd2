package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventNodeAttached     EventType = "NodeAttached"
	EventNodeDetached     EventType = "NodeDetached"
	EventLayoutSaved      EventType = "LayoutSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted once per notification delivered by a
// selection group
type SelectionChangedEvent struct {
	ID       ID // NoID when the selection was cleared
	Previous ID // id carried by the previous notification
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// NodeAttachedEvent is emitted when a node is added anywhere in the tree
type NodeAttachedEvent struct {
	Parent ID
	Child  ID
}

func (e NodeAttachedEvent) Type() EventType { return EventNodeAttached }

// NodeDetachedEvent is emitted when a node is removed from the tree
type NodeDetachedEvent struct {
	Parent ID
	Child  ID
}

func (e NodeDetachedEvent) Type() EventType { return EventNodeDetached }

// LayoutSavedEvent is emitted after the layout was written to disk
type LayoutSavedEvent struct {
	Path string
}

func (e LayoutSavedEvent) Type() EventType { return EventLayoutSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
