// Package sets holds a minimal generic hash set used for the registry's
// ignore rules. Internal so the public API stays a plain map-free surface.
package sets

// Set is a hash set over comparable keys. Not safe for concurrent use;
// callers guard it with their own lock.
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with vals.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v. Adding an existing value is a no-op.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int { return len(s) }
