package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// widths is pinned to narrow ambiguous characters so box drawing glyphs
// measure the same regardless of locale.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StringWidth returns the number of cells text occupies when printed
func StringWidth(text string) int {
	return widths.StringWidth(text)
}

// Cell is one column of a frame row
type Cell struct {
	Content string
	Style   Style
	// Width is 2 for the leading cell of a wide rune and 0 for its trailing half
	Width int
}

var blankCell = Cell{Content: " ", Width: 1}

// Frame is an in-memory Surface. Output that falls outside the frame is
// dropped, so long lines are truncated at the right edge.
type Frame struct {
	width  int
	height int
	rows   [][]Cell
	x, y   int
	prevX  int // last cell written, for zero-width runes; -1 when none
	style  Style
}

// NewFrame creates a blank frame of the given size
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range f.rows {
		f.rows[y] = make([]Cell, width)
	}
	f.Clear()
	return f
}

// Clear blanks every cell and homes the cursor
func (f *Frame) Clear() {
	for _, row := range f.rows {
		for x := range row {
			row[x] = blankCell
		}
	}
	f.x, f.y = 0, 0
	f.prevX = -1
}

// MoveTo positions the cursor
func (f *Frame) MoveTo(x, y int) {
	f.x, f.y = x, y
	f.prevX = -1
}

// SetForeground sets the color for subsequent prints
func (f *Frame) SetForeground(c Color) {
	f.style.Foreground = c
}

// SetEmphasis sets the attributes for subsequent prints
func (f *Frame) SetEmphasis(e Emphasis) {
	f.style.Emphasis = e
}

// ResetStyle restores default color and attributes
func (f *Frame) ResetStyle() {
	f.style = Style{}
}

// Size returns the frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Print writes text at the cursor. Control characters other than tab are
// ignored; tabs advance to the next multiple of four columns.
func (f *Frame) Print(text string) {
	for _, r := range text {
		switch {
		case r == '\t':
			n := tabWidth - (f.x % tabWidth)
			for i := 0; i < n; i++ {
				f.put(" ", 1)
			}
			continue
		case r < 0x20 || r == 0x7f:
			continue
		}

		w := widths.RuneWidth(r)
		if w == 0 {
			f.attach(r)
			continue
		}
		f.put(string(r), w)
	}
}

func (f *Frame) put(content string, w int) {
	defer func() { f.x += w }()

	if f.y < 0 || f.y >= f.height || f.x < 0 || f.x+w > f.width {
		f.prevX = -1
		return
	}

	row := f.rows[f.y]
	f.release(row, f.x)
	if w == 2 {
		f.release(row, f.x+1)
	}

	row[f.x] = Cell{Content: content, Style: f.style, Width: w}
	if w == 2 {
		row[f.x+1] = Cell{Style: f.style, Width: 0}
	}
	f.prevX = f.x
}

// release blanks the other half of a wide rune about to be overwritten at x
func (f *Frame) release(row []Cell, x int) {
	switch row[x].Width {
	case 0:
		if x > 0 {
			row[x-1] = blankCell
		}
	case 2:
		if x+1 < len(row) {
			row[x+1] = blankCell
		}
	}
}

func (f *Frame) attach(r rune) {
	if f.prevX < 0 || f.y < 0 || f.y >= f.height {
		return
	}
	f.rows[f.y][f.prevX].Content += string(r)
}

// At returns the cell at (x, y); out of range positions return a blank cell
func (f *Frame) At(x, y int) Cell {
	if y < 0 || y >= f.height || x < 0 || x >= f.width {
		return blankCell
	}
	return f.rows[y][x]
}

// Line returns row y as plain text without trailing spaces
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var b strings.Builder
	for _, c := range f.rows[y] {
		b.WriteString(c.Content)
	}
	return strings.TrimRight(b.String(), " ")
}

// String renders the frame with styles applied, one line per row
func (f *Frame) String() string {
	lines := make([]string, f.height)
	for y, row := range f.rows {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []Cell) string {
	end := len(row)
	for end > 0 && row[end-1] == blankCell {
		end--
	}

	var out strings.Builder
	var run strings.Builder
	var runStyle Style

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runStyle == (Style{}) {
			out.WriteString(run.String())
		} else {
			out.WriteString(runStyle.lipgloss().Render(run.String()))
		}
		run.Reset()
	}

	for _, c := range row[:end] {
		if c.Style != runStyle {
			flush()
			runStyle = c.Style
		}
		run.WriteString(c.Content)
	}
	flush()
	return out.String()
}
