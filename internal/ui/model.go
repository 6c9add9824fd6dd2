package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"checkgrip/internal/config"
	"checkgrip/internal/domain"
	"checkgrip/internal/eventbus"
	"checkgrip/internal/history"
	"checkgrip/internal/layout"
	"checkgrip/internal/selection"
	"checkgrip/internal/ui/logic"
	"checkgrip/internal/ui/views"
	"checkgrip/internal/widget"
)

// DefaultSavePath is used by the save key when no layout file was given
const DefaultSavePath = "checkgrip-layout.toml"

// Options holds everything the model needs from main
type Options struct {
	Bus        eventbus.EventBus
	Settings   *config.Settings
	Layouts    config.LayoutService
	Layout     *config.Layout
	LayoutPath string
	Allocator  selection.Allocator
	History    *history.Recorder
}

// detachedNode remembers where a node was removed from
type detachedNode struct {
	node   domain.Node
	parent *widget.Container
	index  int
}

// parented is implemented by every widget
type parented interface {
	Parent() *widget.Container
}

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	settings   *config.Settings
	layouts    config.LayoutService
	layoutPath string
	title      string
	history    *history.Recorder

	root      *widget.Container
	group     *selection.Group
	initialID domain.ID
	// lastNotified is the id carried by the most recent notification
	lastNotified domain.ID
	detached     []detachedNode

	rows      []logic.Row
	navigator *logic.Navigator
	renderer  *views.Renderer
	keys      keyMap
	help      help.Model
	fullHelp  bool

	width      int
	height     int
	status     string
	statusKind views.StatusKind
}

// NewModel builds the widget tree from opts.Layout under a selection group
func NewModel(opts Options) (*Model, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	doc := opts.Layout
	if doc == nil {
		doc = config.DefaultLayout()
	}

	m := &Model{
		bus:        opts.Bus,
		settings:   settings,
		layouts:    opts.Layouts,
		layoutPath: opts.LayoutPath,
		title:      doc.Title,
		history:    opts.History,
		root:       widget.NewContainer(config.RootID, doc.Title),
		navigator:  logic.NewNavigator(),
		renderer:   views.NewRenderer(),
		keys:       newKeyMap(),
		help:       help.New(),
	}

	groupOpts := selection.Options{NormalizeOnAttach: settings.NormalizeOnAttach}
	m.group, _ = selection.Bind(m.root, opts.Allocator, groupOpts, &hierarchyPublisher{bus: opts.Bus})
	if err := layout.Build(doc, m.root); err != nil {
		return nil, fmt.Errorf("failed to build layout: %w", err)
	}
	m.group.SetOnCheckedChange(m.onSelectionChanged)

	m.initialID = m.group.CheckedID()
	m.lastNotified = m.initialID
	m.refreshRows()
	log.Printf("ui: built %d rows, initial selection %q", len(m.rows), m.initialID)
	return m, nil
}

// Group exposes the selection group driving the tree
func (m *Model) Group() *selection.Group {
	return m.group
}

// Root returns the tree's root container
func (m *Model) Root() *widget.Container {
	return m.root
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case layoutSavedMsg:
		if msg.err != nil {
			m.reportError("Failed to save layout", msg.err)
			m.setStatus(views.StatusError, "Save failed: %v", msg.err)
		} else {
			m.setStatus(views.StatusSuccess, "Layout saved to %s", msg.path)
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.reportError("Pager error", msg.err)
			m.setStatus(views.StatusError, "Pager failed: %v", msg.err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.navigator.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.navigator.MoveDown()
	case key.Matches(msg, m.keys.Home):
		m.navigator.Home()
	case key.Matches(msg, m.keys.End):
		m.navigator.End()
	case key.Matches(msg, m.keys.PageUp):
		m.navigator.PageUp()
	case key.Matches(msg, m.keys.PageDn):
		m.navigator.PageDown()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleFocused()
	case key.Matches(msg, m.keys.Check):
		m.checkFocused()
	case key.Matches(msg, m.keys.Clear):
		m.group.ClearCheck()
	case key.Matches(msg, m.keys.Detach):
		m.detachFocused()
	case key.Matches(msg, m.keys.Attach):
		m.reattach()
	case key.Matches(msg, m.keys.Restore):
		m.group.SetCheckWithoutNotif(m.initialID)
		m.setStatus(views.StatusInfo, "Restored initial selection %s (no notification)", describe(m.initialID))
	case key.Matches(msg, m.keys.Save):
		return m, m.saveLayout()
	case key.Matches(msg, m.keys.History):
		return m, m.showHistory()
	case key.Matches(msg, m.keys.Help):
		m.fullHelp = !m.fullHelp
		m.updateViewportHeight()
	}
	return m, nil
}

// toggleFocused flips the focused checkbox directly, as a click would
func (m *Model) toggleFocused() {
	row, ok := m.focused()
	if !ok {
		return
	}
	box := row.Checkbox()
	if box == nil {
		m.setStatus(views.StatusInfo, "Only checkboxes can be toggled")
		return
	}
	box.Toggle()
}

func (m *Model) checkFocused() {
	row, ok := m.focused()
	if !ok {
		return
	}
	if row.Kind != logic.RowCheckbox {
		m.setStatus(views.StatusInfo, "Only checkboxes can be selected")
		return
	}
	m.group.Check(row.Node.ID())
}

func (m *Model) detachFocused() {
	row, ok := m.focused()
	if !ok {
		return
	}
	p, ok := row.Node.(parented)
	if !ok || p.Parent() == nil {
		return
	}
	parent := p.Parent()
	index := parent.IndexOf(row.Node)
	parent.RemoveAt(index)
	m.detached = append(m.detached, detachedNode{node: row.Node, parent: parent, index: index})
	m.refreshRows()
	m.setStatus(views.StatusInfo, "Detached %s", describe(row.Node.ID()))
}

func (m *Model) reattach() {
	if len(m.detached) == 0 {
		m.setStatus(views.StatusInfo, "Nothing to put back")
		return
	}
	last := m.detached[len(m.detached)-1]
	m.detached = m.detached[:len(m.detached)-1]
	last.parent.Insert(last.index, last.node)
	m.refreshRows()
	m.setStatus(views.StatusInfo, "Put back %s", describe(last.node.ID()))
}

func (m *Model) saveLayout() tea.Cmd {
	if m.layouts == nil {
		return nil
	}
	path := m.layoutPath
	if path == "" {
		path = DefaultSavePath
	}
	snapshot := layout.Snapshot(m.root, m.title)
	layouts := m.layouts
	return func() tea.Msg {
		return layoutSavedMsg{path: path, err: layouts.Save(snapshot, path)}
	}
}

func (m *Model) showHistory() tea.Cmd {
	if m.history == nil {
		m.setStatus(views.StatusInfo, "History is not recorded")
		return nil
	}
	return showInPager(m.history.Render())
}

// onSelectionChanged is the group's listener
func (m *Model) onSelectionChanged(_ *selection.Group, id domain.ID) {
	previous := m.lastNotified
	m.lastNotified = id
	log.Printf("ui: selection changed to %q (was %q)", id, previous)
	if id == domain.NoID {
		m.setStatus(views.StatusSuccess, "Selection cleared")
	} else {
		m.setStatus(views.StatusSuccess, "Selected %s", id)
	}
	if m.history != nil {
		m.history.Record(id, previous)
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.SelectionChangedEvent{ID: id, Previous: previous})
	}
}

func (m *Model) focused() (logic.Row, bool) {
	i := m.navigator.SelectedIndex()
	if i < 0 || i >= len(m.rows) {
		return logic.Row{}, false
	}
	return m.rows[i], true
}

func (m *Model) refreshRows() {
	m.rows = logic.Flatten(m.root)
	m.navigator.SetTotal(len(m.rows))
}

func (m *Model) updateViewportHeight() {
	// title, selection line, blank, status, help and padding
	reserved := 8
	if m.fullHelp {
		reserved += 6
	}
	if !m.settings.UI.ShowHelp {
		reserved -= 2
	}
	m.navigator.SetViewportHeight(m.height - reserved)
}

func (m *Model) reportError(message string, err error) {
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	} else {
		log.Printf("%s: %v", message, err)
	}
}

func (m *Model) setStatus(kind views.StatusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	checked := m.group.CheckedID()
	start := m.navigator.ViewportOffset()
	return m.renderer.Render(views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Title:           m.title,
		Rows:            m.rows,
		SelectedIndex:   m.navigator.SelectedIndex(),
		ViewportOffset:  start,
		ViewportHeight:  m.navigator.ViewportHeight(),
		CheckedID:       checked,
		CheckedAttached: checked == domain.NoID || m.root.FindByID(checked) != nil,
		ShowIDs:         m.settings.UI.ShowIDs,
		StatusMessage:   m.status,
		StatusKind:      m.statusKind,
		ShowHelp:        m.settings.UI.ShowHelp,
		FullHelp:        m.fullHelp,
		HelpModel:       m.help,
		Keys:            m.keys,
	})
}

func describe(id domain.ID) string {
	if id == domain.NoID {
		return "nothing"
	}
	return string(id)
}

// hierarchyPublisher reports tree changes on the bus
type hierarchyPublisher struct {
	bus eventbus.EventBus
}

func (h *hierarchyPublisher) OnChildAdded(parent *widget.Container, child domain.Node) {
	if h.bus != nil {
		h.bus.Publish(eventbus.NodeAttachedEvent{Parent: parent.ID(), Child: child.ID()})
	}
}

func (h *hierarchyPublisher) OnChildRemoved(parent *widget.Container, child domain.Node) {
	if h.bus != nil {
		h.bus.Publish(eventbus.NodeDetachedEvent{Parent: parent.ID(), Child: child.ID()})
	}
}
