// Package ui holds the small interaction primitives shared by every page
// section: toggle sets (likes, favorites) and single selections (the open
// project, the active filter, the expanded timeline entry).
package ui

import (
	"cmp"
	"slices"
)

// Set tracks membership only. The zero value is not usable; call NewSet.
type Set[T cmp.Ordered] struct {
	members map[T]struct{}
}

// NewSet returns a set seeded with the given members.
func NewSet[T cmp.Ordered](initial ...T) *Set[T] {
	s := &Set[T]{members: make(map[T]struct{}, len(initial))}
	for _, m := range initial {
		s.members[m] = struct{}{}
	}
	return s
}

// Toggle adds x if absent and removes it if present. It reports whether x is
// a member afterwards.
func (s *Set[T]) Toggle(x T) bool {
	if _, ok := s.members[x]; ok {
		delete(s.members, x)
		return false
	}
	s.members[x] = struct{}{}
	return true
}

func (s *Set[T]) Has(x T) bool {
	_, ok := s.members[x]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.members)
}

// Members returns the members in ascending order.
func (s *Set[T]) Members() []T {
	out := make([]T, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
