package utils

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to a maximum display width with ellipsis
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxLen, "…")
}

// PadString pads a string to a specific width
func PadString(s string, width int, padChar rune) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(string(padChar), width-w)
}

// SlideOffset is the indent for an element that has travelled progress
// (0..1) of a slide over distance columns.
func SlideOffset(progress float64, distance int) int {
	progress = math.Max(0, math.Min(1, progress))
	return int(math.Round((1 - progress) * float64(distance)))
}

// RevealWidth is how many of width columns are uncovered at progress
func RevealWidth(progress float64, width int) int {
	return width - SlideOffset(progress, width)
}
