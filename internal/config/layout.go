package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"checkgrip/internal/eventbus"
)

// Node kinds
const (
	KindSection  = "section"
	KindCheckbox = "checkbox"
	KindLabel    = "label"
)

// RootID names the container holding a layout's top-level nodes
const RootID = "root"

// ErrInvalidLayout wraps every structural problem found in a layout document
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the tree shown by the application
type Layout struct {
	Title string `toml:"title"`
	Nodes []Node `toml:"nodes"`
}

// Node is one entry of a layout. Only sections have children and only
// checkboxes can be checked.
type Node struct {
	Kind     string `toml:"kind"`
	ID       string `toml:"id,omitempty"`
	Label    string `toml:"label"`
	Checked  bool   `toml:"checked,omitempty"`
	Children []Node `toml:"children,omitempty"`
}

const defaultLayoutTOML = `title = "Network profile"

[[nodes]]
kind = "label"
label = "Pick the one connection to bring up at boot."

[[nodes]]
kind = "section"
id = "wired"
label = "Wired"

  [[nodes.children]]
  kind = "checkbox"
  id = "eth0"
  label = "Ethernet (eth0)"
  checked = true

  [[nodes.children]]
  kind = "checkbox"
  id = "eth1"
  label = "Ethernet (eth1)"

[[nodes]]
kind = "section"
id = "wireless"
label = "Wireless"

  [[nodes.children]]
  kind = "section"
  id = "band-24"
  label = "2.4 GHz"

    [[nodes.children.children]]
    kind = "checkbox"
    id = "home-24"
    label = "home"

    [[nodes.children.children]]
    kind = "checkbox"
    label = "guest"

  [[nodes.children]]
  kind = "section"
  id = "band-5"
  label = "5 GHz"

    [[nodes.children.children]]
    kind = "checkbox"
    id = "home-5"
    label = "home-5G"

[[nodes]]
kind = "checkbox"
id = "offline"
label = "Stay offline"
`

// DefaultLayout returns the built-in layout
func DefaultLayout() *Layout {
	l, err := ParseLayout([]byte(defaultLayoutTOML))
	if err != nil {
		panic(fmt.Sprintf("built-in layout: %v", err))
	}
	return l
}

// ParseLayout decodes and validates a layout document. Unknown keys are
// rejected.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks node kinds and that explicit ids are unique and not
// reserved
func (l *Layout) Validate() error {
	seen := make(map[string]bool)
	var check func(nodes []Node, path string) error
	check = func(nodes []Node, path string) error {
		for i, n := range nodes {
			where := fmt.Sprintf("%s[%d]", path, i)
			switch n.Kind {
			case KindSection:
			case KindCheckbox, KindLabel:
				if len(n.Children) > 0 {
					return fmt.Errorf("%w: %s: %s cannot have children", ErrInvalidLayout, where, n.Kind)
				}
			default:
				return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidLayout, where, n.Kind)
			}
			if n.Checked && n.Kind != KindCheckbox {
				return fmt.Errorf("%w: %s: only checkboxes can be checked", ErrInvalidLayout, where)
			}
			if n.ID == RootID {
				return fmt.Errorf("%w: %s: id %q is reserved", ErrInvalidLayout, where, RootID)
			}
			if n.ID != "" {
				if seen[n.ID] {
					return fmt.Errorf("%w: %s: duplicate id %q", ErrInvalidLayout, where, n.ID)
				}
				seen[n.ID] = true
			}
			if err := check(n.Children, where+".children"); err != nil {
				return err
			}
		}
		return nil
	}
	return check(l.Nodes, "nodes")
}

// LayoutService loads and saves layout documents
type LayoutService interface {
	Load(path string) (*Layout, error)
	Save(layout *Layout, path string) error
}

// layoutService is the concrete implementation
type layoutService struct {
	bus eventbus.EventBus
}

// NewLayoutService creates a layout service. bus may be nil; when set, a
// LayoutSavedEvent is published after every save.
func NewLayoutService(bus eventbus.EventBus) LayoutService {
	return &layoutService{bus: bus}
}

// Load reads a layout file. An empty path yields the built-in layout.
func (s *layoutService) Load(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Save writes layout to path, creating the directory if needed
func (s *layoutService) Save(layout *Layout, path string) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	data, err := toml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.LayoutSavedEvent{Path: path})
	}
	return nil
}
