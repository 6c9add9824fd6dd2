package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"checkgrip/internal/domain"
	"checkgrip/internal/ui/logic"
	"checkgrip/internal/widget"
)

// StatusKind picks the status line style
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Rows           []logic.Row
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	CheckedID      domain.ID
	// CheckedAttached is false when CheckedID names a node that is no
	// longer in the tree
	CheckedAttached bool
	ShowIDs         bool
	StatusMessage   string
	StatusKind      StatusKind
	ShowHelp        bool
	FullHelp        bool
	HelpModel       help.Model
	Keys            help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "checkgrip"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")
	content.WriteString(r.renderSelection(state))
	content.WriteString("\n\n")

	if len(state.Rows) == 0 {
		content.WriteString(r.styles.Text.Render("Nothing to show"))
		content.WriteString("\n")
	}

	end := state.ViewportOffset + state.ViewportHeight
	if end > len(state.Rows) {
		end = len(state.Rows)
	}
	for i := state.ViewportOffset; i < end; i++ {
		line := r.renderRow(state.Rows[i], state.ShowIDs)
		if i == state.SelectedIndex {
			line = r.styles.HighlightBg.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	if hidden := len(state.Rows) - end; hidden > 0 {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("... %d more", hidden)))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.statusStyle(state.StatusKind).Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.ShowHelp && state.Keys != nil {
		h := state.HelpModel
		h.ShowAll = state.FullHelp
		content.WriteString(r.styles.Help.Render(h.View(state.Keys)))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderSelection(state ViewState) string {
	if state.CheckedID == domain.NoID {
		return "Selected: " + r.styles.Text.Render("none")
	}
	s := "Selected: " + r.styles.Selected.Render(string(state.CheckedID))
	if !state.CheckedAttached {
		s += " " + r.styles.Detached.Render("(detached)")
	}
	return s
}

func (r *Renderer) renderRow(row logic.Row, showIDs bool) string {
	indent := strings.Repeat("  ", row.Depth)
	text := ""
	if l, ok := row.Node.(widget.Labeled); ok {
		text = l.Label()
	}

	var line string
	switch row.Kind {
	case logic.RowSection:
		line = indent + r.styles.Section.Render("▼ "+text)
	case logic.RowCheckbox:
		box := row.Node.(domain.Checkable)
		mark := r.styles.Unchecked.Render("[ ]")
		if box.Checked() {
			mark = r.styles.Checked.Render("[x]")
		}
		line = indent + mark + " " + text
	default:
		line = indent + r.styles.Text.Render(text)
	}

	if showIDs && row.Node.ID() != domain.NoID {
		line += " " + r.styles.ID.Render("#"+string(row.Node.ID()))
	}
	return line
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return r.styles.StatusError
	case StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.Status
	}
}
