package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, pageStep int, showHelp func() tea.Cmd) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			PageStep: pageStep,
			ShowHelp: showHelp,
		},
	}
}

// Execute runs the command for a single action
func (e *Executor) Execute(action types.Action) tea.Cmd {
	cmd := e.commandFor(action)
	if cmd == nil {
		return nil
	}
	return cmd.Execute()
}

// ExecuteAll runs every action in order, stopping after a quit
func (e *Executor) ExecuteAll(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if !e.ctx.State.IsRunning() {
			break
		}
		if cmd := e.Execute(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (e *Executor) commandFor(action types.Action) Command {
	switch a := action.(type) {
	case types.SwitchPageAction:
		return NewSwitchPageCommand(e.ctx, a.Page)
	case types.NavigateAction:
		switch a.Direction {
		case types.DirectionUp:
			return NewScrollCommand(e.ctx, -1)
		case types.DirectionDown:
			return NewScrollCommand(e.ctx, 1)
		case types.DirectionPageUp:
			return NewScrollCommand(e.ctx, -e.ctx.PageStep)
		case types.DirectionPageDown:
			return NewScrollCommand(e.ctx, e.ctx.PageStep)
		}
		log.Printf("Unknown scroll direction %q", a.Direction)
		return nil
	case types.QuitAction:
		return NewQuitCommand(e.ctx, a.Force)
	case types.ToggleHelpAction:
		return NewHelpCommand(e.ctx)
	default:
		log.Printf("Unhandled action %s", action.Type())
		return nil
	}
}
