package ui

// Selection holds at most one selected value. The zero value means nothing
// is selected.
type Selection[T comparable] struct {
	value T
	set   bool
}

// Toggle selects x, or clears the selection when x is already selected.
func (s *Selection[T]) Toggle(x T) {
	if s.set && s.value == x {
		s.Clear()
		return
	}
	s.value = x
	s.set = true
}

func (s *Selection[T]) Clear() {
	var zero T
	s.value = zero
	s.set = false
}

func (s *Selection[T]) Current() (T, bool) {
	return s.value, s.set
}

// Is reports whether x is the current selection.
func (s *Selection[T]) Is(x T) bool {
	return s.set && s.value == x
}
