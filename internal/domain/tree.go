package domain

// WalkFunc is called for each visited node. Returning false stops the walk.
type WalkFunc func(n Node) bool

// Walk visits root and its descendants depth first, parents before children.
// It reports whether the walk ran to completion.
func Walk(root Node, fn WalkFunc) bool {
	if root == nil {
		return true
	}
	if !fn(root) {
		return false
	}
	if p, ok := root.(Parent); ok {
		for i := 0; i < p.ChildCount(); i++ {
			if !Walk(p.ChildAt(i), fn) {
				return false
			}
		}
	}
	return true
}

// Checkables returns every checkable node in the subtree in visiting order
func Checkables(root Node) []Checkable {
	var items []Checkable
	Walk(root, func(n Node) bool {
		if c, ok := n.(Checkable); ok {
			items = append(items, c)
		}
		return true
	})
	return items
}
