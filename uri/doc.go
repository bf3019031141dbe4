// Package uri provides an immutable value type for hierarchical Uniform
// Resource Identifiers per RFC 3986, together with the operations defined on
// them: parsing, dot-segment normalization, reference resolution,
// relativization, rendering and percent-encoding of individual components.
//
// # Parsing
//
// [Parse] is total: it never rejects input. Malformed text degrades into a
// well-defined interpretation instead of an error, so a returned value must
// be treated as best-effort parsed rather than validated:
//
//	u := uri.Parse("http://user@[::1]:8080/path?q=1#f")
//	host, _ := u.Host() // "[::1]"
//	u.Port()            // 8080
//
// A leading component that does not match the scheme grammar makes the whole
// input scheme-less, an invalid or overflowing port degrades to -1, and an
// unmatched IPv6 bracket keeps the remaining text as the host verbatim.
//
// # Resolution and relativization
//
// [URI.Resolve] combines a base URI with a reference per RFC 3986 section
// 5.3, [URI.Relativize] is its inverse for targets sharing the base's scheme
// and authority, and [URI.Normalize] collapses "." and ".." path segments:
//
//	base := uri.Parse("http://a/b/c/d;p?q")
//	abs, _ := base.ResolveText("../g") // http://a/b/g
//	sib, _ := base.ResolveText("g?x")  // http://a/b/c/g?x
//	rel, _ := base.Relativize(sib)     // g?x
//	_, _ = abs, rel
//
// # Component codec
//
// [EncodeComponent] and [Decode] convert single components to and from their
// percent-encoded form against the RFC 3986 unreserved set. They operate on
// plain strings, independent of the URI value type.
//
// All types are immutable after construction: every transformation returns a
// new value and any value may be used from multiple goroutines without
// locking.
//
// Out of scope: opaque (non-slash-structured) URIs, IRI/punycode host
// normalization and query-string decomposition.
package uri
