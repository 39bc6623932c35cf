package views

import (
	"strings"
	"unicode/utf8"
)

// sanitizeForTerminal drops codepoints that make tcell miscount cell
// widths in names and message previews: skin tone modifiers, the zero
// width joiner and variation selectors. What is left of an emoji sequence
// renders as its base glyph.
func sanitizeForTerminal(s string) string {
	if !strings.ContainsFunc(s, dropRune) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropRune(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func dropRune(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
		return true
	case r == 0x200D: // ZWJ
		return true
	case r >= 0xFE00 && r <= 0xFE0F,
		r >= 0xE0100 && r <= 0xE01EF:
		return true
	default:
		return false
	}
}
