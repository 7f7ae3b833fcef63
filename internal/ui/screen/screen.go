// Package screen provides the drawing surface the views paint into.
//
// A Surface mirrors the cursor-addressed terminal model: clear, move the
// cursor, set a color and emphasis, print. Frame is the in-memory
// implementation whose String output is handed to Bubble Tea as the view.
package screen

import (
	"github.com/charmbracelet/lipgloss"
)

// Color is a terminal foreground color
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGrey
	ColorDarkGrey
	ColorWhite
)

// lipglossColors maps colors to ANSI palette indexes
var lipglossColors = map[Color]lipgloss.Color{
	ColorBlack:    lipgloss.Color("0"),
	ColorRed:      lipgloss.Color("1"),
	ColorGreen:    lipgloss.Color("2"),
	ColorYellow:   lipgloss.Color("3"),
	ColorBlue:     lipgloss.Color("4"),
	ColorMagenta:  lipgloss.Color("5"),
	ColorCyan:     lipgloss.Color("6"),
	ColorGrey:     lipgloss.Color("7"),
	ColorDarkGrey: lipgloss.Color("8"),
	ColorWhite:    lipgloss.Color("15"),
}

// Emphasis is a set of text attributes
type Emphasis uint8

const (
	Bold Emphasis = 1 << iota
	Dim

	EmphasisNone Emphasis = 0
)

// Has reports whether all flags in f are set
func (e Emphasis) Has(f Emphasis) bool {
	return e&f == f
}

// Style is the attribute pair applied to printed text
type Style struct {
	Foreground Color
	Emphasis   Emphasis
}

func (s Style) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipglossColors[s.Foreground]; ok {
		st = st.Foreground(c)
	}
	if s.Emphasis.Has(Bold) {
		st = st.Bold(true)
	}
	if s.Emphasis.Has(Dim) {
		st = st.Faint(true)
	}
	return st
}

// Surface is the terminal-control capability used by the renderer
type Surface interface {
	// Clear blanks the surface and moves the cursor to the origin
	Clear()
	MoveTo(x, y int)
	SetForeground(c Color)
	SetEmphasis(e Emphasis)
	// ResetStyle restores the default color and clears emphasis
	ResetStyle()
	// Print writes text at the cursor and advances it
	Print(text string)
	Size() (width, height int)
}
