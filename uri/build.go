package uri

import "github.com/ghettovoice/gouri/internal/types"

// builder assembles a new URI from component parts. Its mutability never
// leaves the package: build is the only way out, and it re-derives the
// userinfo/host/port views from the assembled authority so the result is as
// internally consistent as a parsed value.
type builder struct {
	scheme    types.Opt[string]
	authority types.Opt[string]
	path      string
	query     types.Opt[string]
	fragment  types.Opt[string]
}

func (b builder) build() *URI {
	u := &URI{
		scheme:    b.scheme,
		authority: b.authority,
		path:      b.path,
		query:     b.query,
		fragment:  b.fragment,
	}
	if a, ok := b.authority.Get(); ok {
		u.userInfo, u.host, u.port = splitAuthority(a)
	}
	u.raw = u.String()
	return u
}
