package views

import (
	"github.com/charmbracelet/bubbles/key"

	"folio/internal/ui/screen"
	"folio/internal/ui/state"
)

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	headerRender *HeaderRenderer
	pageRender   *PageRenderer
	footerRender *FooterRenderer
}

// NewRenderer creates a new renderer whose footer lists legend
func NewRenderer(legend []key.Binding) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		headerRender: NewHeaderRenderer(styles),
		pageRender:   NewPageRenderer(),
		footerRender: NewFooterRenderer(styles, legend),
	}
}

// ContentStart returns the first row used for page content
func ContentStart(headerHeight int) int {
	return headerHeight + 1
}

// Render repaints the whole screen: header, visible content, then footer.
// lines is the current page's content split into lines.
func (r *Renderer) Render(s screen.Surface, st *state.AppState, lines []string) {
	s.Clear()
	s.ResetStyle()
	s.MoveTo(0, 0)

	headerHeight := r.headerRender.Draw(s, 0, 0, st.CurrentPage)

	width, height := s.Size()
	r.pageRender.Draw(s, lines, st.ScrollOffset, ContentStart(headerHeight), height)
	r.footerRender.Draw(s, width, height)

	s.MoveTo(0, 0)
}
