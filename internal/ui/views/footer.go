package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"folio/internal/ui/screen"
)

const legendPrefix = "Navigation: "

// FooterRenderer draws the rule and key legend at the bottom of the screen
type FooterRenderer struct {
	styles *Styles
	legend []key.Binding
}

// NewFooterRenderer creates a footer listing the given bindings
func NewFooterRenderer(styles *Styles, legend []key.Binding) *FooterRenderer {
	return &FooterRenderer{styles: styles, legend: legend}
}

// Draw paints the footer on the last two rows of a width x height screen
func (f *FooterRenderer) Draw(s screen.Surface, width, height int) {
	y := height - 2

	apply(s, f.styles.FooterRule)
	s.MoveTo(0, y)
	s.Print(strings.Repeat("─", max(width, 0)))

	s.MoveTo(2, y+1)
	apply(s, f.styles.FooterText)
	s.Print(legendPrefix)
	printed := 0
	for _, b := range f.legend {
		if !b.Enabled() {
			continue
		}
		if printed > 0 {
			apply(s, f.styles.FooterText)
			s.Print(" | ")
		}
		help := b.Help()
		apply(s, f.styles.FooterKey)
		s.Print(help.Key)
		apply(s, f.styles.FooterText)
		s.Print(" " + help.Desc)
		printed++
	}
	s.ResetStyle()
}
