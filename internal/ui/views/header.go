package views

import (
	"strings"

	"folio/internal/domain"
	"folio/internal/ui/screen"
)

const (
	// NavItemWidth is the width of each navigation cell in columns
	NavItemWidth = 12
	// HeaderHeight is the number of rows DrawHeader occupies
	HeaderHeight = 8

	navRows = 3
)

// Banner is the ASCII art drawn at the top of every page
var Banner = []string{
	" ███████╗ ██████╗ ██╗     ██╗ ██████╗ ",
	" ██╔════╝██╔═══██╗██║     ██║██╔═══██╗",
	" █████╗  ██║   ██║██║     ██║██║   ██║",
	" ██╔══╝  ██║   ██║██║     ██║██║   ██║",
	" ██║     ╚██████╔╝███████╗██║╚██████╔╝",
}

// HeaderRenderer draws the banner and navigation bar
type HeaderRenderer struct {
	styles *Styles
}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer(styles *Styles) *HeaderRenderer {
	return &HeaderRenderer{styles: styles}
}

// Draw paints the header with its top-left corner at (x, y) and returns the
// number of rows used, which is HeaderHeight for every page.
func (h *HeaderRenderer) Draw(s screen.Surface, x, y int, current domain.Page) int {
	h.drawBanner(s, x, y)
	h.drawNav(s, x, y+len(Banner), current)
	s.ResetStyle()
	return HeaderHeight
}

func (h *HeaderRenderer) drawBanner(s screen.Surface, x, y int) {
	for i, line := range Banner {
		s.MoveTo(x, y+i)
		s.SetForeground(h.styles.BannerColor(i))
		s.SetEmphasis(screen.Bold)
		s.Print(line)
	}
	s.ResetStyle()
}

func (h *HeaderRenderer) drawNav(s screen.Surface, x, y int, current domain.Page) {
	pages := domain.Pages()
	items := make([]string, len(pages))
	for i, page := range pages {
		items[i] = NavItem(page.Label(), page == current)
	}

	top, bottom := NavBorders(items)

	apply(s, h.styles.NavFrame)
	s.MoveTo(x, y)
	s.Print(top)

	s.MoveTo(x, y+1)
	s.Print("│")
	for i, item := range items {
		if pages[i] == current {
			apply(s, h.styles.NavActive)
		} else {
			apply(s, h.styles.NavInactive)
		}
		s.Print(item)
		apply(s, h.styles.NavFrame)
		s.Print("│")
	}

	s.MoveTo(x, y+2)
	s.Print(bottom)
}

// NavItem returns a navigation label with its selection glyph, centered in a
// cell of NavItemWidth columns. Labels wider than the cell are not padded.
func NavItem(label string, selected bool) string {
	glyph := "○"
	if selected {
		glyph = "●"
	}
	return center(glyph+" "+label, NavItemWidth)
}

// NavBorders returns the top and bottom border lines for a row of items
func NavBorders(items []string) (string, string) {
	var top, bottom strings.Builder
	top.WriteString("╭")
	bottom.WriteString("╰")
	for i, item := range items {
		w := screen.StringWidth(item)
		top.WriteString(strings.Repeat("─", w))
		bottom.WriteString(strings.Repeat("─", w))
		if i < len(items)-1 {
			top.WriteString("┬")
			bottom.WriteString("┴")
		}
	}
	top.WriteString("╮")
	bottom.WriteString("╯")
	return top.String(), bottom.String()
}

func center(text string, width int) string {
	pad := width - screen.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
