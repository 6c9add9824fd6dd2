package widget

// Labeled is implemented by nodes that carry display text
type Labeled interface {
	Label() string
}
