// Package types holds small value types shared across the module.
package types

import "cmp"

// Opt is an explicit optional: a value of type T plus a presence flag.
// The zero value is the absent state.
type Opt[T comparable] struct {
	val T
	ok  bool
}

// Some returns an Opt holding v.
func Some[T comparable](v T) Opt[T] { return Opt[T]{val: v, ok: true} }

// None returns the absent Opt of type T.
func None[T comparable]() Opt[T] { return Opt[T]{} }

// Get returns the held value and a flag indicating whether it is set.
func (o Opt[T]) Get() (T, bool) { return o.val, o.ok }

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.ok }

// Or returns the held value when present, def otherwise.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// Compare orders two optionals. An absent value sorts before any present
// value, present values are ordered by [cmp.Compare].
func Compare[T cmp.Ordered](a, b Opt[T]) int {
	switch {
	case a.ok && b.ok:
		return cmp.Compare(a.val, b.val)
	case a.ok:
		return 1
	case b.ok:
		return -1
	}
	return 0
}
