package validator

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// IsSpace reports whether r belongs to the ECMAScript WhiteSpace or
// LineTerminator sets: ASCII whitespace including vertical tab, the Unicode
// Zs category, U+2028, U+2029 and U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace trims IsSpace runes from both ends, like String.prototype.trim.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Length counts UTF-16 code units, matching an input element's value.length.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
