package uri_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/uri"
)

func TestString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"http://user@host:80/p?q#f", "http://user@host:80/p?q#f"},
		{"//host", "//host"},
		{"?q", "?q"},
		{"#f", "#f"},
		{"mailto:x@y", "mailto:x@y"},
	}

	for _, c := range cases {
		u := uri.Parse(c.input)
		if got := u.String(); got != c.want {
			t.Errorf("uri.Parse(%q).String() = %q, want %q", c.input, got, c.want)
		}
		if got := u.ASCIIString(); got != c.want {
			t.Errorf("uri.Parse(%q).ASCIIString() = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := uri.Parse("http://host/p?q#f")
	b := uri.Parse("http://host/p?q#f")
	if !a.Equal(b) {
		t.Errorf("%q.Equal(%q) = false, want true", a, b)
	}
	if !a.Equal(*b) {
		t.Error("Equal rejected a value argument")
	}
	if a.Equal("http://host/p?q#f") {
		t.Error("Equal accepted a non-URI argument")
	}

	// the construction path does not matter: a resolved value equals a parsed one
	resolved, err := uri.Parse("http://host/a/").ResolveText("p?q#f")
	if err != nil {
		t.Fatalf("ResolveText failed: %v", err)
	}
	if parsed := uri.Parse("http://host/a/p?q#f"); !resolved.Equal(parsed) {
		t.Errorf("%q.Equal(%q) = false, want true", resolved, parsed)
	}

	// an empty component is distinct from an absent one
	if uri.Parse("http://h/p?").Equal(uri.Parse("http://h/p")) {
		t.Error("empty query compared equal to absent query")
	}
	if uri.Parse("http://h/p#").Equal(uri.Parse("http://h/p")) {
		t.Error("empty fragment compared equal to absent fragment")
	}

	var nilURI *uri.URI
	if nilURI.Equal(a) {
		t.Error("nil.Equal(non-nil) = true, want false")
	}
	if a.Equal(nilURI) {
		t.Error("non-nil.Equal(nil) = true, want false")
	}
	if !nilURI.Equal(nilURI) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	// already sorted: nil first, then absent components before present ones,
	// then lexicographic per component
	sorted := []*uri.URI{
		nil,
		uri.Parse(""),
		uri.Parse("?q"),
		uri.Parse("p"),
		uri.Parse("//host/p"),
		uri.Parse("a:x"),
		uri.Parse("http://host/a"),
		uri.Parse("http://host/a?q"),
		uri.Parse("http://host/a?q#f"),
		uri.Parse("http://host/b"),
		uri.Parse("https://host/a"),
	}

	for i, a := range sorted {
		for j, b := range sorted {
			got := a.Compare(b)
			switch {
			case i < j && got >= 0:
				t.Errorf("(%v).Compare(%v) = %d, want < 0", a, b, got)
			case i > j && got <= 0:
				t.Errorf("(%v).Compare(%v) = %d, want > 0", a, b, got)
			case i == j && got != 0:
				t.Errorf("(%v).Compare(%v) = %d, want 0", a, b, got)
			}
		}
	}

	shuffled := []*uri.URI{sorted[5], sorted[1], sorted[9], sorted[0], sorted[3]}
	slices.SortFunc(shuffled, (*uri.URI).Compare)
	want := []*uri.URI{sorted[0], sorted[1], sorted[3], sorted[5], sorted[9]}
	if diff := cmp.Diff(stringsOf(shuffled), stringsOf(want)); diff != "" {
		t.Errorf("slices.SortFunc mismatch (-got +want):\n%v", diff)
	}
}

func stringsOf(us []*uri.URI) []string {
	out := make([]string, len(us))
	for i, u := range us {
		out[i] = u.String()
	}
	return out
}

func TestCompareConsistentWithEqual(t *testing.T) {
	t.Parallel()

	us := []*uri.URI{
		nil,
		uri.Parse(""),
		uri.Parse("http://host/p?q#f"),
		uri.Parse("http://h:/p"),
		uri.Parse(uri.Parse("http://h:/p").String()),
	}
	for _, a := range us {
		for _, b := range us {
			if eq, c := a.Equal(b), a.Compare(b); eq != (c == 0) {
				t.Errorf("(%v).Equal(%v) = %v but Compare = %d", a, b, eq, c)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	u := uri.Parse("http://host/p?q")
	if got, want := fmt.Sprintf("%s", u), "http://host/p?q"; got != want {
		t.Errorf("%%s = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%+s", u), "http://host/p?q"; got != want {
		t.Errorf("%%+s = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", u), `"http://host/p?q"`; got != want {
		t.Errorf("%%q = %q, want %q", got, want)
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	u := uri.Parse("http://host/p?q#f")
	text, err := u.MarshalText()
	if err != nil {
		t.Fatalf("u.MarshalText() failed: %v", err)
	}
	if got, want := string(text), "http://host/p?q#f"; got != want {
		t.Errorf("u.MarshalText() = %q, want %q", got, want)
	}

	var u2 uri.URI
	if err := u2.UnmarshalText(text); err != nil {
		t.Fatalf("u2.UnmarshalText() failed: %v", err)
	}
	if !u2.Equal(u) {
		t.Errorf("u2.UnmarshalText() = %q, want %q", &u2, u)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	u := uri.Parse("http://user@host:80/p?q#f")
	c := u.Clone()
	if c == u {
		t.Error("u.Clone() returned the receiver")
	}
	if !c.Equal(u) || c.Raw() != u.Raw() {
		t.Errorf("u.Clone() = %q, want %q", c, u)
	}

	var nilURI *uri.URI
	if nilURI.Clone() != nil {
		t.Error("nil.Clone() != nil")
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var u uri.URI
	if got := u.String(); got != "" {
		t.Errorf("zero URI.String() = %q, want \"\"", got)
	}
	if u.IsAbsolute() {
		t.Error("zero URI.IsAbsolute() = true, want false")
	}
	if !u.Equal(uri.Parse("")) {
		t.Error(`zero URI not equal to uri.Parse("")`)
	}
}

func TestNilAccessors(t *testing.T) {
	t.Parallel()

	var u *uri.URI
	if _, ok := u.Scheme(); ok {
		t.Error("nil.Scheme() present")
	}
	if _, ok := u.Authority(); ok {
		t.Error("nil.Authority() present")
	}
	if _, ok := u.UserInfo(); ok {
		t.Error("nil.UserInfo() present")
	}
	if _, ok := u.Host(); ok {
		t.Error("nil.Host() present")
	}
	if got := u.Port(); got != -1 {
		t.Errorf("nil.Port() = %d, want -1", got)
	}
	if got := u.Path(); got != "" {
		t.Errorf("nil.Path() = %q, want \"\"", got)
	}
	if _, ok := u.Query(); ok {
		t.Error("nil.Query() present")
	}
	if _, ok := u.Fragment(); ok {
		t.Error("nil.Fragment() present")
	}
	if got := u.Raw(); got != "" {
		t.Errorf("nil.Raw() = %q, want \"\"", got)
	}
	if got := u.String(); got != "" {
		t.Errorf("nil.String() = %q, want \"\"", got)
	}
	if u.IsAbsolute() {
		t.Error("nil.IsAbsolute() = true, want false")
	}
	if u.IsOpaque() {
		t.Error("nil.IsOpaque() = true, want false")
	}
}

func TestIsOpaque(t *testing.T) {
	t.Parallel()

	// opaque URIs are not modeled: everything after the scheme is read
	// hierarchically
	u := uri.Parse("mailto:x@y")
	if u.IsOpaque() {
		t.Errorf("uri.Parse(%q).IsOpaque() = true, want false", u.Raw())
	}
	if got, want := u.Path(), "x@y"; got != want {
		t.Errorf("uri.Parse(%q).Path() = %q, want %q", u.Raw(), got, want)
	}
}

func BenchmarkString(b *testing.B) {
	u := uri.Parse("http://user@example.com:8080/a/b/c?q=1#f")
	for b.Loop() {
		if u.String() == "" {
			b.Error("u.String() is empty")
		}
	}
}
