package logic

// Navigator handles cursor movement and viewport management
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// SelectedIndex returns the cursor position
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetTotal updates the row count and keeps the cursor in range
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.totalItems = total
	n.SetSelectedIndex(n.selectedIndex)
}

// SetViewportHeight updates the available height
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SetSelectedIndex moves the cursor, clamped to the rows, and scrolls to it
func (n *Navigator) SetSelectedIndex(index int) {
	if index >= n.totalItems {
		index = n.totalItems - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
}

// MoveUp moves the cursor one row up
func (n *Navigator) MoveUp() { n.SetSelectedIndex(n.selectedIndex - 1) }

// MoveDown moves the cursor one row down
func (n *Navigator) MoveDown() { n.SetSelectedIndex(n.selectedIndex + 1) }

// PageUp moves the cursor one viewport up
func (n *Navigator) PageUp() { n.SetSelectedIndex(n.selectedIndex - n.viewportHeight) }

// PageDown moves the cursor one viewport down
func (n *Navigator) PageDown() { n.SetSelectedIndex(n.selectedIndex + n.viewportHeight) }

// Home moves the cursor to the first row
func (n *Navigator) Home() { n.SetSelectedIndex(0) }

// End moves the cursor to the last row
func (n *Navigator) End() { n.SetSelectedIndex(n.totalItems - 1) }

// VisibleRange returns the half-open range of rows to draw
func (n *Navigator) VisibleRange() (start, end int) {
	start = n.viewportOffset
	end = start + n.viewportHeight
	if end > n.totalItems {
		end = n.totalItems
	}
	return start, end
}

// ensureSelectedVisible adjusts the viewport to keep the cursor visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
