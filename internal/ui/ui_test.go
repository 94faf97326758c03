package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetToggleIsItsOwnInverse(t *testing.T) {
	s := NewSet("bugpatrol")

	for _, id := range []string{"bugpatrol", "teamsync"} {
		before := s.Has(id)
		s.Toggle(id)
		assert.NotEqual(t, before, s.Has(id), "first toggle of %q", id)
		s.Toggle(id)
		assert.Equal(t, before, s.Has(id), "double toggle of %q", id)
	}
}

func TestSetMembersSorted(t *testing.T) {
	s := NewSet("Figma", "MongoDB")
	assert.True(t, s.Toggle("Git"))
	assert.False(t, s.Toggle("MongoDB"))

	assert.Equal(t, []string{"Figma", "Git"}, s.Members())
	assert.Equal(t, 2, s.Len())
}

func TestSelectionToggle(t *testing.T) {
	var sel Selection[string]
	_, ok := sel.Current()
	assert.False(t, ok, "zero value selects nothing")

	sel.Toggle("x")
	sel.Toggle("x")
	_, ok = sel.Current()
	assert.False(t, ok, "same item twice closes")

	sel.Toggle("x")
	sel.Toggle("y")
	got, ok := sel.Current()
	assert.True(t, ok)
	assert.Equal(t, "y", got)
	assert.True(t, sel.Is("y"))
	assert.False(t, sel.Is("x"))
}

func TestSelectionZeroValueIsSelectable(t *testing.T) {
	var sel Selection[int]
	sel.Toggle(0)
	assert.True(t, sel.Is(0))
	sel.Toggle(0)
	assert.False(t, sel.Is(0))
}
