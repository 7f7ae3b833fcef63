package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() domain.Page
	ScrollOffset() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}
