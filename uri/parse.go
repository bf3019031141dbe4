package uri

import (
	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/types"
)

// Parse parses s (string or []byte) into a URI value.
//
// Parsing is total and lenient: malformed input never produces an error.
// Text before the first ':' that does not match the scheme grammar makes the
// whole input scheme-less, and the authority form "//host/path" is still
// recognized without a scheme. Everything after the first '#' is the
// fragment regardless of what precedes it.
func Parse[T constraints.Byteseq](s T) *URI {
	var p parser
	p.run(string(s))
	return &URI{
		scheme:    p.scheme,
		authority: p.authority,
		userInfo:  p.userInfo,
		host:      p.host,
		port:      p.port,
		path:      p.path,
		query:     p.query,
		fragment:  p.fragment,
		raw:       p.s,
	}
}

// parser consumes the raw text in a single left-to-right pass.
type parser struct {
	s string

	scheme    types.Opt[string]
	authority types.Opt[string]
	userInfo  types.Opt[string]
	host      types.Opt[string]
	port      types.Opt[uint16]
	path      string
	query     types.Opt[string]
	fragment  types.Opt[string]
}

func (p *parser) run(s string) {
	p.s = s
	end := len(s)

	if i := grammar.IndexIn(s, '#', 0, end); i >= 0 {
		p.fragment = types.Some(s[i+1:])
		end = i
	}

	start := 0
	if i := grammar.IndexIn(s, ':', 0, end); i >= 0 && grammar.IsScheme(s[:i]) {
		p.scheme = types.Some(s[:i])
		start = i + 1
	}
	p.splitHierPart(start, end)
}

// splitHierPart splits s[start:end] into authority, path and query. It
// serves both the scheme and the scheme-less branch: the caller has already
// consumed the scheme separator when one was recognized.
func (p *parser) splitHierPart(start, end int) {
	s := p.s
	if start+1 < end && s[start] == '/' && s[start+1] == '/' {
		authStart := start + 2
		slash := grammar.IndexIn(s, '/', authStart, end)
		qmark := grammar.IndexIn(s, '?', authStart, end)
		split := grammar.MinIndex(slash, qmark, end)

		p.authority = types.Some(s[authStart:split])
		p.userInfo, p.host, p.port = splitAuthority(s[authStart:split])

		if split < end && s[split] == '?' {
			p.query = types.Some(s[split+1 : end])
			return
		}
		start = split
	}

	if q := grammar.IndexIn(s, '?', start, end); q >= 0 {
		p.path = s[start:q]
		p.query = types.Some(s[q+1 : end])
		return
	}
	p.path = s[start:end]
}
