package uri

import (
	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// EncodeComponent percent-encodes s (string or []byte) for use as a single
// URI component. Characters in the RFC 3986 unreserved set (ALPHA, DIGIT,
// "-", ".", "_", "~") pass through unchanged, every other byte of the UTF-8
// encoding becomes "%XX" with uppercase hex digits.
func EncodeComponent[T constraints.Byteseq](s T) T {
	return grammar.EncodeComponent(s)
}

// Decode percent-decodes s (string or []byte). Valid "%XX" triplets —
// including one occupying the final three bytes of the input — decode to the
// escaped byte, so consecutive escapes reassemble multi-byte UTF-8
// characters. A malformed escape is copied through verbatim instead of
// failing.
func Decode[T constraints.Byteseq](s T) T {
	return grammar.Decode(s)
}
