package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"folio/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent(currentPage string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	model := help.New()
	model.ShowAll = true
	model.FullSeparator = "    "
	model.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	model.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	model.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("folio keys"))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Viewing: %s", currentPage)))
	b.WriteString("\n\n")
	b.WriteString(model.FullHelpView(r.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Press q to return."))
	b.WriteString("\n")
	return b.String()
}

// pagerCommand runs ov over a block of text. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs and restores it after.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// Run shows the content in ov until the user leaves the pager
func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ShowHelpInPager returns a command that shows content in the ov pager
func ShowHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
