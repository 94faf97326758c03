// Package timeline implements the experience section, an alternating list
// of positions where one entry at a time can be expanded.
package timeline

import (
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/ui"
)

var ErrIndex = errors.New("experience index out of range")

type Timeline struct {
	entries  []content.Experience
	expanded ui.Selection[int]
}

func New(entries []content.Experience) *Timeline {
	return &Timeline{entries: entries}
}

// Toggle expands entry i, collapsing any other, or collapses i if it is
// already expanded.
func (t *Timeline) Toggle(i int) error {
	if i < 0 || i >= len(t.entries) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	t.expanded.Toggle(i)
	return nil
}

// Expanded returns the expanded entry index, or -1.
func (t *Timeline) Expanded() int {
	if i, ok := t.expanded.Current(); ok {
		return i
	}
	return -1
}

type Entry struct {
	content.Experience
	Left     bool `json:"left"`
	Expanded bool `json:"expanded"`
}

func (t *Timeline) View() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for i, e := range t.entries {
		out = append(out, Entry{Experience: e, Left: i%2 == 0, Expanded: t.expanded.Is(i)})
	}
	return out
}
