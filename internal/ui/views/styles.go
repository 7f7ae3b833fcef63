package views

import (
	"folio/internal/ui/screen"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	NavFrame    screen.Style
	NavActive   screen.Style
	NavInactive screen.Style
	FooterRule  screen.Style
	FooterText  screen.Style
	FooterKey   screen.Style
	// BannerPalette colors banner lines in turn
	BannerPalette []screen.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		NavFrame:    screen.Style{Foreground: screen.ColorDarkGrey},
		NavActive:   screen.Style{Foreground: screen.ColorCyan, Emphasis: screen.Bold},
		NavInactive: screen.Style{Foreground: screen.ColorGrey},
		FooterRule:  screen.Style{Foreground: screen.ColorDarkGrey},
		FooterText:  screen.Style{Foreground: screen.ColorGrey},
		FooterKey:   screen.Style{Foreground: screen.ColorCyan},
		BannerPalette: []screen.Color{
			screen.ColorMagenta,
			screen.ColorBlue,
			screen.ColorCyan,
			screen.ColorGreen,
			screen.ColorYellow,
			screen.ColorRed,
		},
	}
}

// BannerColor returns the palette color for banner line i
func (s *Styles) BannerColor(i int) screen.Color {
	if len(s.BannerPalette) == 0 {
		return screen.ColorDefault
	}
	return s.BannerPalette[i%len(s.BannerPalette)]
}

func apply(s screen.Surface, st screen.Style) {
	s.SetForeground(st.Foreground)
	s.SetEmphasis(st.Emphasis)
}
