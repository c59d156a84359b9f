// Package strings provides small string helpers shared across tripctl
// output code.
package strings

import (
	"strings"
)

// DefaultCellMaxLen caps free-text table cells (notes, addresses) so one
// long value does not stretch the whole table.
const DefaultCellMaxLen = 40

// MinTruncateLen is the smallest usable maxLen for Truncate. Anything
// shorter leaves no room for content plus the ellipsis.
const MinTruncateLen = 4

// Truncate collapses s to a single line and caps it at maxLen runes,
// appending "..." when content was cut. Newlines and runs of whitespace
// become single spaces. Operating on runes keeps multi-byte characters
// intact.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
