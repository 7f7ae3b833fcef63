package ui

import (
	"time"
)

// tickMsg is sent on a timer so the terminal size is re-checked without input
type tickMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
