// Package textwidth measures the display width of text the way a terminal
// cell grid does: per grapheme cluster, not per code point. A multi-codepoint
// emoji occupies two cells no matter how many codepoints compose it, and a
// combining mark adds nothing to the base letter.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grapheme returns the display width of a single grapheme cluster. The width
// of a cluster is the maximum width of its runes: zero-width joiners and
// combining marks contribute nothing, while any wide rune makes the whole
// cluster wide.
func Grapheme(cluster string) int {
	width := 0
	for _, r := range cluster {
		if w := runewidth.RuneWidth(r); w > width {
			width = w
		}
	}
	return width
}

// String returns the display width of s, summed over grapheme clusters.
func String(s string) int {
	total := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += Grapheme(cluster)
	}
	return total
}
