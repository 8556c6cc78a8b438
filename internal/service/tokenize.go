package service

import "strings"

// Normalize lowercases s, replaces every character that is not an ASCII
// letter or digit with a space, collapses runs of whitespace, and trims
// the ends. ASCII-only on purpose: patterns and queries go through the
// same function, so both sides degrade identically on non-ASCII input.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c - 'A' + 'a')
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes s and splits it into words.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
