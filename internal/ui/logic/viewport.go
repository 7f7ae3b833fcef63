package logic

// FooterReserve is the number of rows below the content kept for the footer
const FooterReserve = 3

// PlacedLine is a content line paired with the screen row it is drawn on
type PlacedLine struct {
	Index int // position in the content
	Row   int
	Text  string
}

// VisibleHeight returns how many content rows fit between startY and the footer
func VisibleHeight(startY, termHeight int) int {
	h := termHeight - startY - FooterReserve
	if h < 0 {
		return 0
	}
	return h
}

// VisibleLines returns the window of lines shown for the given scroll offset.
// An offset past the end of the content yields no lines.
func VisibleLines(lines []string, offset, startY, termHeight int) []PlacedLine {
	if offset < 0 {
		offset = 0
	}
	height := VisibleHeight(startY, termHeight)
	if height == 0 || offset >= len(lines) {
		return nil
	}

	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}

	placed := make([]PlacedLine, 0, end-offset)
	for i := offset; i < end; i++ {
		placed = append(placed, PlacedLine{
			Index: i,
			Row:   startY + (i - offset),
			Text:  lines[i],
		})
	}
	return placed
}

// ScrollBy moves offset by delta without going above the first line.
// There is no lower bound: scrolling past the content shows an empty page.
func ScrollBy(offset, delta int) int {
	offset += delta
	if offset < 0 {
		return 0
	}
	return offset
}
