package uri

//go:generate go tool errtrace -w .

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// URI represents a hierarchical URI. The zero value is the empty reference.
//
// A URI is immutable: all components are fixed at construction and every
// transformation ([URI.Normalize], [URI.Resolve], [URI.Relativize]) produces
// a new value. The authority string is authoritative; userInfo, host and
// port are views derived from it in a single decomposition pass at
// construction time.
type URI struct {
	scheme    types.Opt[string]
	authority types.Opt[string] // [userinfo@]host[:port], kept verbatim
	userInfo  types.Opt[string]
	host      types.Opt[string] // IPv6 literals keep their brackets
	port      types.Opt[uint16]
	path      string
	query     types.Opt[string] // without leading '?'
	fragment  types.Opt[string] // without leading '#'
	raw       string            // original textual form, excluded from comparisons
}

// Scheme returns the URI scheme and whether it is present.
func (u *URI) Scheme() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.scheme.Get()
}

// Authority returns the verbatim authority component and whether it is present.
func (u *URI) Authority() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.authority.Get()
}

// UserInfo returns the userinfo sub-component of the authority and whether
// it is present.
func (u *URI) UserInfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.userInfo.Get()
}

// Host returns the host sub-component of the authority and whether it is
// present. IPv6 literals are returned with their square brackets.
func (u *URI) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host.Get()
}

// Port returns the port or -1 when it is absent or was malformed in the
// input (non-digit text or a value above 65535 both degrade to -1).
func (u *URI) Port() int {
	if u == nil {
		return -1
	}
	if p, ok := u.port.Get(); ok {
		return int(p)
	}
	return -1
}

// Path returns the path component. It is never absent, only possibly empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the query component without the leading '?' and whether it
// is present.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query.Get()
}

// Fragment returns the fragment component without the leading '#' and
// whether it is present.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment.Get()
}

// Raw returns the original text the URI was parsed from. For values built by
// Resolve, Relativize or Normalize it is the composed textual form. Raw
// never participates in comparisons.
func (u *URI) Raw() string {
	if u == nil {
		return ""
	}
	return u.raw
}

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool {
	return u != nil && u.scheme.IsSet()
}

// IsOpaque reports whether the URI is opaque. It is always false: only
// hierarchical URIs are modeled.
func (u *URI) IsOpaque() bool {
	return false
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// RenderTo writes the textual form of the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if s, ok := u.scheme.Get(); ok {
		cw.WriteString(s)
		cw.WriteString(":")
	}
	if a, ok := u.authority.Get(); ok {
		cw.WriteString("//")
		cw.WriteString(a)
	}
	if u.path != "" {
		// a relative path next to an authority needs a separating '/'
		if u.authority.IsSet() && u.path[0] != '/' {
			cw.WriteString("/")
		}
		cw.WriteString(u.path)
	}
	if q, ok := u.query.Get(); ok {
		cw.WriteString("?")
		cw.WriteString(q)
	}
	if f, ok := u.fragment.Get(); ok {
		cw.WriteString("#")
		cw.WriteString(f)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the textual form of the URI composed from its components.
// It is not guaranteed to reproduce malformed input byte-for-byte, but
// re-parsing the result yields an equal value.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// ASCIIString returns the US-ASCII textual form of the URI. No punycode or
// extra percent-encoding pass is applied, so it is currently identical to
// [URI.String].
func (u *URI) ASCIIString() string {
	return u.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality. Two URIs are equal when
// their scheme, authority, path, query and fragment components match,
// absence included. The derived userInfo/host/port views and the raw text
// are not compared.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.scheme == other.scheme &&
		u.authority == other.authority &&
		u.path == other.path &&
		u.query == other.query &&
		u.fragment == other.fragment
}

// Compare orders URIs by scheme, authority, path, query and fragment, in
// that order. An absent component sorts before any present one, present
// components compare lexicographically. A nil URI sorts first. The order is
// total and consistent with [URI.Equal]: Compare returns 0 iff Equal reports
// true.
func (u *URI) Compare(other *URI) int {
	if u == other {
		return 0
	}
	if u == nil {
		return -1
	}
	if other == nil {
		return 1
	}

	if c := types.Compare(u.scheme, other.scheme); c != 0 {
		return c
	}
	if c := types.Compare(u.authority, other.authority); c != 0 {
		return c
	}
	if c := cmp.Compare(u.path, other.path); c != 0 {
		return c
	}
	if c := types.Compare(u.query, other.query); c != 0 {
		return c
	}
	return types.Compare(u.fragment, other.fragment)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It never fails:
// parsing is total.
func (u *URI) UnmarshalText(text []byte) error {
	*u = *Parse(text)
	return nil
}
