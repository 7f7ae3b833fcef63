// Package markup classifies page lines by prefix and turns them into styled segments.
package markup

import (
	"strings"

	"folio/internal/ui/screen"
)

// Kind is the markup class of a line
type Kind int

const (
	Plain Kind = iota
	Heading1
	Heading2
	Bullet
	CodeFence
)

func (k Kind) String() string {
	switch k {
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case Bullet:
		return "bullet"
	case CodeFence:
		return "codefence"
	default:
		return "plain"
	}
}

// BulletGlyph is printed in front of bullet items
const BulletGlyph = "● "

// Segment is a run of text with a single style
type Segment struct {
	Text       string
	Foreground screen.Color
	Emphasis   screen.Emphasis
}

// Classify returns the kind of line and the text left after stripping its marker.
// "## " is checked before "# " so subheadings never classify as headings.
func Classify(line string) (Kind, string) {
	switch {
	case strings.HasPrefix(line, "## "):
		return Heading2, line[3:]
	case strings.HasPrefix(line, "# "):
		return Heading1, line[2:]
	case strings.HasPrefix(line, "- "):
		return Bullet, line[2:]
	case strings.HasPrefix(line, "```"):
		return CodeFence, line
	default:
		return Plain, line
	}
}

// Render returns the styled segments for a single line
func Render(line string) []Segment {
	kind, body := Classify(line)
	switch kind {
	case Heading2:
		return []Segment{{Text: body, Foreground: screen.ColorGreen, Emphasis: screen.Bold}}
	case Heading1:
		return []Segment{{Text: body, Foreground: screen.ColorCyan, Emphasis: screen.Bold}}
	case Bullet:
		return []Segment{
			{Text: BulletGlyph, Foreground: screen.ColorYellow},
			{Text: body, Foreground: screen.ColorWhite},
		}
	case CodeFence:
		return []Segment{{Text: body, Foreground: screen.ColorMagenta, Emphasis: screen.Dim}}
	default:
		return []Segment{{Text: body, Foreground: screen.ColorWhite}}
	}
}

// Draw prints segments at the surface cursor, resetting the style afterwards
func Draw(s screen.Surface, segments []Segment) {
	for _, seg := range segments {
		s.SetForeground(seg.Foreground)
		s.SetEmphasis(seg.Emphasis)
		s.Print(seg.Text)
	}
	s.ResetStyle()
}
