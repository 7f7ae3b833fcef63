package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(modes.Keys{
		Quit:      keys.Quit,
		ForceQuit: keys.ForceQuit,
		Help:      keys.Help,
		Home:      keys.Home,
		Projects:  keys.Projects,
		About:     keys.About,
		Contact:   keys.Contact,
		Up:        keys.Up,
		Down:      keys.Down,
		PageUp:    keys.PageUp,
		PageDown:  keys.PageDown,
	})

	return h
}

// HandleKey maps a key press to the actions the model should execute.
// Keys no mode consumes produce no actions.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}
