package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/types"
)

// splitAuthority decomposes a verbatim authority string into its userinfo,
// host and port views. The parser and the builder both route through it, so
// the four authority-related fields of a URI always come from the same
// decomposition pass.
//
// The decomposition is as lenient as the parser: an unmatched '[' keeps the
// remaining text as the host verbatim, a remainder whose only ':' is the
// leading character stays whole, and malformed port text degrades to the
// absent port.
func splitAuthority(a string) (userInfo, host types.Opt[string], port types.Opt[uint16]) {
	rem := a
	// userinfo ends at the last '@': earlier '@'s belong to the userinfo itself
	if i := strings.LastIndexByte(a, '@'); i >= 0 {
		userInfo = types.Some(a[:i])
		rem = a[i+1:]
	}

	if strings.HasPrefix(rem, "[") {
		// IPv6 literal, preserved with its brackets
		if rb := strings.IndexByte(rem, ']'); rb > 0 {
			host = types.Some(rem[:rb+1])
			if rb+1 < len(rem) && rem[rb+1] == ':' {
				port = parsePort(rem[rb+2:])
			}
			return userInfo, host, port
		}
		return userInfo, types.Some(rem), port
	}

	if i := strings.LastIndexByte(rem, ':'); i > 0 {
		return userInfo, types.Some(rem[:i]), parsePort(rem[i+1:])
	}
	return userInfo, types.Some(rem), port
}

// parsePort converts port text to a port number. Empty text, a non-digit
// character or a value above 65535 all yield the absent port, never an
// error.
func parsePort(s string) types.Opt[uint16] {
	if s == "" {
		return types.None[uint16]()
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return types.None[uint16]()
		}
		v = v*10 + int(c-'0')
		if v > 65535 {
			return types.None[uint16]()
		}
	}
	return types.Some(uint16(v))
}
