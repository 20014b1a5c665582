package mdfmt

import "github.com/mattn/go-runewidth"

// displayWidth returns the number of fixed-width terminal columns s
// occupies. Full-width runes count as 2, so padding computed from it
// lines up in monospace rendering where a byte or rune count would not.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
