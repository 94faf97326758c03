package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func TestToggle(t *testing.T) {
	tl := New([]content.Experience{{Company: "Edgroom"}, {Company: "Infosys"}, {Company: "WorkBees"}})
	assert.Equal(t, -1, tl.Expanded())

	require.NoError(t, tl.Toggle(1))
	assert.Equal(t, 1, tl.Expanded())

	require.NoError(t, tl.Toggle(2))
	assert.Equal(t, 2, tl.Expanded())

	require.NoError(t, tl.Toggle(2))
	assert.Equal(t, -1, tl.Expanded())

	assert.ErrorIs(t, tl.Toggle(3), ErrIndex)
	assert.ErrorIs(t, tl.Toggle(-1), ErrIndex)
}

func TestViewAlternatesSides(t *testing.T) {
	tl := New([]content.Experience{{Company: "a"}, {Company: "b"}, {Company: "c"}})
	require.NoError(t, tl.Toggle(0))

	v := tl.View()
	require.Len(t, v, 3)
	assert.True(t, v[0].Left)
	assert.False(t, v[1].Left)
	assert.True(t, v[2].Left)
	assert.True(t, v[0].Expanded)
	assert.False(t, v[1].Expanded)
}
