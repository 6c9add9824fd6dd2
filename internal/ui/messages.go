package ui

// layoutSavedMsg reports the result of writing the layout snapshot
type layoutSavedMsg struct {
	path string
	err  error
}

// pagerClosedMsg is sent when the history pager exits
type pagerClosedMsg struct {
	err error
}
