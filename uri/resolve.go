package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Normalize returns a URI with "." and ".." segments collapsed from the
// path. When the path is empty or already normal the receiver itself is
// returned. Normalization is idempotent.
func (u *URI) Normalize() *URI {
	if u == nil || u.path == "" {
		return u
	}
	norm := grammar.CollapseDotSegments(u.path, u.authority.IsSet())
	if norm == u.path {
		return u
	}
	return builder{
		scheme:    u.scheme,
		authority: u.authority,
		path:      norm,
		query:     u.query,
		fragment:  u.fragment,
	}.build()
}

// Resolve resolves the reference ref against the base URI u per RFC 3986
// section 5.3 and returns the result as a new URI. An absolute reference
// (one with a scheme) ignores the base entirely and is only normalized. The
// fragment is always taken from the reference, never inherited from the
// base. Resolve fails only when u or ref is nil.
func (u *URI) Resolve(ref *URI) (*URI, error) {
	if u == nil || ref == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(ErrNilReference))
	}

	if ref.scheme.IsSet() {
		return ref.Normalize(), nil
	}

	if ref.authority.IsSet() {
		return builder{
			scheme:    u.scheme,
			authority: ref.authority,
			path:      grammar.CollapseDotSegments(ref.path, true),
			query:     ref.query,
			fragment:  ref.fragment,
		}.build(), nil
	}

	if ref.path == "" {
		q := ref.query
		if !q.IsSet() {
			q = u.query
		}
		return builder{
			scheme:    u.scheme,
			authority: u.authority,
			path:      u.path,
			query:     q,
			fragment:  ref.fragment,
		}.build(), nil
	}

	var merged string
	switch i := strings.LastIndexByte(u.path, '/'); {
	case u.authority.IsSet() && u.path == "":
		merged = "/" + ref.path
	case i >= 0:
		merged = u.path[:i+1] + ref.path
	default:
		merged = ref.path
	}
	return builder{
		scheme:    u.scheme,
		authority: u.authority,
		path:      grammar.CollapseDotSegments(merged, u.authority.IsSet()),
		query:     ref.query,
		fragment:  ref.fragment,
	}.build(), nil
}

// ResolveText parses s and resolves it against the base URI u.
// See [URI.Resolve].
func (u *URI) ResolveText(s string) (*URI, error) {
	return errtrace.Wrap2(u.Resolve(Parse(s)))
}
