package input

import (
	"folio/internal/domain"
	"folio/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentPage returns the page being displayed
func (c *ModelContext) CurrentPage() domain.Page {
	return c.State.CurrentPage
}

// ScrollOffset returns the current scroll offset
func (c *ModelContext) ScrollOffset() int {
	return c.State.ScrollOffset
}
