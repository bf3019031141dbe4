// Package grammar implements the character-level pieces of the RFC 3986
// grammar: character class predicates, the percent-codec, bounded index
// scanning and dot-segment collapse.
package grammar

import "github.com/ghettovoice/gouri/internal/constraints"

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsSchemeChar checks a non-leading character of the scheme rule.
func IsSchemeChar(c byte) bool {
	return IsAlphaChar(c) || IsDigitChar(c) || c == '+' || c == '-' || c == '.'
}

// IsScheme checks the scheme rule:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsCharUnreserved checks the unreserved rule.
func IsCharUnreserved(c byte) bool {
	return unreservedChars[c] || IsAlphaChar(c) || IsDigitChar(c)
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
