// Package cli holds text helpers for the rbtree command's terminal output.
package cli

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment positions banner text inside the box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	// DefaultWidth is the banner width used by the rbtree command.
	DefaultWidth = 80

	borderWidth = 2
)

// Divider returns a horizontal rule width characters wide, followed by a newline.
func Divider(width int) string {
	if width < borderWidth {
		return ""
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-borderWidth) + dividerRight + "\n"
}

// Banner draws s, one box row per line, in a box width characters wide. Lines that do
// not fit are cut and end in an ellipsis. It returns "" for a non-positive width or an
// unknown alignment.
func Banner(s string, width int, alignment Alignment) string {
	if width <= borderWidth {
		return ""
	}

	inner := width - borderWidth
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line, ok := pad(l, inner, alignment)
		if !ok {
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n-1 graphic runes of s, leaving room for an ellipsis.
func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}

		if count >= n {
			break
		}

		out.WriteRune(r)
	}

	return out.String(), count
}

func pad(text string, width int, alignment Alignment) (string, bool) {
	length := countGraphic(text)

	if length > width {
		text, length = truncateGraphic(text, width)
		text += ellipsis
	}

	diff := width - length

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff), true
	case AlignRight:
		return strings.Repeat(" ", diff) + text, true
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return fmt.Sprintf("%s%s%s", strings.Repeat(" ", left), text, strings.Repeat(" ", diff-left)), true
	default:
		return "", false
	}
}
