package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/ui/input/types"
)

// Keys is the subset of bindings the normal mode reacts to
type Keys struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Home      key.Binding
	Projects  key.Binding
	About     key.Binding
	Contact   key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

type NormalMode struct {
	keys Keys
}

func NewNormalMode(keys Keys) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Home):
		return switchTo(ctx, domain.PageHome), true

	case key.Matches(msg, m.keys.Projects):
		return switchTo(ctx, domain.PageProjects), true

	case key.Matches(msg, m.keys.About):
		return switchTo(ctx, domain.PageAbout), true

	case key.Matches(msg, m.keys.Contact):
		return switchTo(ctx, domain.PageContact), true

	case key.Matches(msg, m.keys.Up):
		// Already at the top
		if ctx.ScrollOffset() == 0 {
			return nil, true
		}
		return []types.Action{types.NavigateAction{Direction: types.DirectionUp}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: types.DirectionDown}}, true

	case key.Matches(msg, m.keys.PageUp):
		if ctx.ScrollOffset() == 0 {
			return nil, true
		}
		return []types.Action{types.NavigateAction{Direction: types.DirectionPageUp}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPageDown}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

// switchTo selects a page. Reselecting the page already shown from its
// first line changes nothing.
func switchTo(ctx types.Context, page domain.Page) []types.Action {
	if ctx.CurrentPage() == page && ctx.ScrollOffset() == 0 {
		return nil
	}
	return []types.Action{types.SwitchPageAction{Page: page}}
}
