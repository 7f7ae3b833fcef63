package types

import "folio/internal/domain"

// Scroll directions
const (
	DirectionUp       = "up"
	DirectionDown     = "down"
	DirectionPageUp   = "pageup"
	DirectionPageDown = "pagedown"
)

// NavigateAction scrolls the current page
type NavigateAction struct {
	Direction string // one of the Direction constants
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchPageAction shows another page from the top
type SwitchPageAction struct {
	Page domain.Page
}

func (a SwitchPageAction) Type() string { return "switch_page" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for q/Esc
}

func (a QuitAction) Type() string { return "quit" }
