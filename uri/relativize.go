package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

// Relativize computes the inverse of [URI.Resolve] for the common-prefix
// case: it returns a scheme-less, authority-less reference that resolves
// back to other against the base URI u. When no relative form exists — the
// scheme or authority differ, or other's path does not start with the
// base's directory prefix — other is returned unchanged. Relativize fails
// only when u or other is nil.
func (u *URI) Relativize(other *URI) (*URI, error) {
	if u == nil || other == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(ErrNilReference))
	}

	if u.scheme != other.scheme || u.authority != other.authority {
		return other, nil
	}

	prefix := dirPrefix(u.path)
	if !strings.HasPrefix(other.path, prefix) {
		return other, nil
	}

	rel := strings.TrimPrefix(other.path[len(prefix):], "/")
	return builder{
		path:     rel,
		query:    other.query,
		fragment: other.fragment,
	}.build(), nil
}

// dirPrefix returns the directory prefix of a path: the path itself when it
// ends with '/', otherwise everything up to and including its last '/', or
// "" when there is none.
func dirPrefix(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i+1]
	}
	return ""
}
