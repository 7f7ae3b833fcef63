package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/ui/logic"
	"folio/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.AppState
	PageStep int
	// ShowHelp returns the command that opens the help pager; may be nil
	ShowHelp func() tea.Cmd
}

// SwitchPageCommand shows a page from its first line
type SwitchPageCommand struct {
	ctx  *CommandContext
	page domain.Page
}

// NewSwitchPageCommand creates a new page switch command
func NewSwitchPageCommand(ctx *CommandContext, page domain.Page) *SwitchPageCommand {
	return &SwitchPageCommand{ctx: ctx, page: page}
}

// Execute performs the page switch
func (c *SwitchPageCommand) Execute() tea.Cmd {
	if !c.page.Valid() {
		log.Printf("Ignoring switch to unknown page %d", int(c.page))
		return nil
	}
	if c.ctx.State.SetPage(c.page) {
		log.Printf("Switched to %s", c.page)
	}
	return nil
}

// ScrollCommand moves the scroll offset by a number of lines
type ScrollCommand struct {
	ctx   *CommandContext
	delta int
}

// NewScrollCommand creates a new scroll command
func NewScrollCommand(ctx *CommandContext, delta int) *ScrollCommand {
	return &ScrollCommand{ctx: ctx, delta: delta}
}

// Execute performs the scroll
func (c *ScrollCommand) Execute() tea.Cmd {
	c.ctx.State.SetScroll(logic.ScrollBy(c.ctx.State.ScrollOffset, c.delta))
	return nil
}

// QuitCommand ends the main loop
type QuitCommand struct {
	ctx   *CommandContext
	force bool
}

// NewQuitCommand creates a new quit command
func NewQuitCommand(ctx *CommandContext, force bool) *QuitCommand {
	return &QuitCommand{ctx: ctx, force: force}
}

// Execute marks the state as terminating and asks Bubble Tea to exit
func (c *QuitCommand) Execute() tea.Cmd {
	if !c.ctx.State.IsRunning() {
		return nil
	}
	if c.force {
		log.Printf("Interrupted, quitting")
	} else {
		log.Printf("Quit requested")
	}
	c.ctx.State.Terminate()
	return tea.Quit
}

// HelpCommand opens the key reference
type HelpCommand struct {
	ctx *CommandContext
}

// NewHelpCommand creates a new help command
func NewHelpCommand(ctx *CommandContext) *HelpCommand {
	return &HelpCommand{ctx: ctx}
}

// Execute returns the pager command, if one is configured
func (c *HelpCommand) Execute() tea.Cmd {
	if c.ctx.ShowHelp == nil {
		return nil
	}
	return c.ctx.ShowHelp()
}
