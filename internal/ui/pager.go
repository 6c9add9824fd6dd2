package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in ov. It satisfies tea.ExecCommand so the
// program releases the terminal while ov runs.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov talks to the terminal directly
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showInPager returns a command that runs ov over content
func showInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
