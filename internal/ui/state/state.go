package state

import (
	"folio/internal/domain"
)

// Phase is the lifecycle stage of the application
type Phase int

const (
	Running Phase = iota
	Terminating
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// AppState contains all the application state
type AppState struct {
	CurrentPage  domain.Page
	ScrollOffset int // first visible content line; never negative
	Width        int // terminal columns
	Height       int // terminal rows
	Phase        Phase
}

// NewAppState creates the state shown at startup
func NewAppState() *AppState {
	return &AppState{
		CurrentPage: domain.PageHome,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Phase:       Running,
	}
}

// SetPage switches page and rewinds scrolling. It reports whether the page changed.
func (s *AppState) SetPage(page domain.Page) bool {
	changed := s.CurrentPage != page
	s.CurrentPage = page
	s.ScrollOffset = 0
	return changed
}

// SetScroll stores a scroll offset, clamping negative values to zero
func (s *AppState) SetScroll(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.ScrollOffset = offset
}

// Resize records the terminal size; non-positive dimensions are ignored
func (s *AppState) Resize(width, height int) {
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
}

// Terminate moves the application into its final phase
func (s *AppState) Terminate() {
	s.Phase = Terminating
}

// IsRunning reports whether the main loop should continue
func (s *AppState) IsRunning() bool {
	return s.Phase == Running
}
