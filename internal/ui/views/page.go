package views

import (
	"folio/internal/ui/logic"
	"folio/internal/ui/markup"
	"folio/internal/ui/screen"
)

// ContentIndent is the column page text starts at
const ContentIndent = 2

// PageRenderer draws the visible window of a page's content
type PageRenderer struct{}

// NewPageRenderer creates a new page renderer
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

// Draw renders the lines visible at offset, starting at row startY
func (p *PageRenderer) Draw(s screen.Surface, lines []string, offset, startY, height int) {
	for _, placed := range logic.VisibleLines(lines, offset, startY, height) {
		s.MoveTo(ContentIndent, placed.Row)
		markup.Draw(s, markup.Render(placed.Text))
	}
}
