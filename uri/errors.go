package uri

import "github.com/ghettovoice/gouri/internal/errorutil"

// ErrNilReference is returned by [URI.Resolve], [URI.ResolveText] and
// [URI.Relativize] when the receiver or the reference argument is nil. It is
// the only failure the package produces: malformed text is tolerated
// everywhere, an absent reference is not.
const ErrNilReference = errorutil.Error("nil reference")
