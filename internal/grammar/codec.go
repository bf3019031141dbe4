package grammar

import (
	"bytes"

	"github.com/ghettovoice/gouri/internal/constraints"
)

// EncodeComponent escapes s for use as a single URI component: unreserved
// characters pass through unchanged, every other byte of the UTF-8 encoding
// is replaced by its "% HEXDIG HEXDIG" form with uppercase hex digits.
// Unlike a full-URI escaper it does not preserve existing escapes, so '%'
// itself is always encoded.
func EncodeComponent[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if IsCharUnreserved(s[i]) {
			b.WriteByte(s[i])
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		}
	}
	return T(b.Bytes())
}

// Decode unescapes s by converting each 3-byte substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. Malformed escapes are copied
// through verbatim, one byte at a time, so consecutive valid escapes still
// reassemble multi-byte UTF-8 sequences.
func Decode[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}
