package gallery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceCyclesBackToStart(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		c := NewCarousel(map[string]int{"item": n})
		c.JumpTo("item", 1)
		start := c.Index("item")
		for range n {
			c.Advance("item")
		}
		assert.Equal(t, start, c.Index("item"), "n=%d", n)
	}
}

func TestRetreatInvertsAdvance(t *testing.T) {
	const n = 4
	c := NewCarousel(map[string]int{"item": n})
	for i := range n {
		c.JumpTo("item", i)
		c.Advance("item")
		c.Retreat("item")
		assert.Equal(t, i, c.Index("item"))
	}
}

func TestRetreatWrapsFromZero(t *testing.T) {
	c := NewCarousel(map[string]int{"item": 3})
	assert.Equal(t, 2, c.Retreat("item"))
	assert.Equal(t, 1, c.Retreat("item"))
}

func TestBugpatrolAdvanceSequence(t *testing.T) {
	c := NewCarousel(map[string]int{"bugpatrol": 3})
	assert.Equal(t, 0, c.Index("bugpatrol"))

	var got []int
	for range 3 {
		got = append(got, c.Advance("bugpatrol"))
	}
	assert.Equal(t, []int{1, 2, 0}, got)
}

func TestJumpToOutOfRangeIsNoop(t *testing.T) {
	c := NewCarousel(map[string]int{"item": 3})
	assert.True(t, c.JumpTo("item", 2))

	assert.False(t, c.JumpTo("item", 3))
	assert.False(t, c.JumpTo("item", -1))
	assert.False(t, c.JumpTo("other", 0))
	assert.Equal(t, 2, c.Index("item"))
}

func TestItemsWithoutImagesNeverMove(t *testing.T) {
	c := NewCarousel(map[string]int{"empty": 0})
	assert.Equal(t, 0, c.Advance("empty"))
	assert.Equal(t, 0, c.Retreat("empty"))
	assert.Equal(t, 0, c.Advance("unknown"))
}

func TestItemsAreIndependent(t *testing.T) {
	c := NewCarousel(map[string]int{"a": 3, "b": 3})
	c.Advance("a")
	c.Advance("a")
	assert.Equal(t, 2, c.Index("a"))
	assert.Equal(t, 0, c.Index("b"))
}

func TestAspectRatio(t *testing.T) {
	c := NewCarousel(map[string]int{"item": 2})
	assert.InDelta(t, DefaultAspectRatio, c.AspectRatio("item", 0), 1e-9)
	assert.False(t, c.Measured("item", 0))

	assert.True(t, c.RecordAspectRatio("item", 0, 16.0/9.0))
	assert.InDelta(t, 16.0/9.0, c.AspectRatio("item", 0), 1e-9)
	assert.InDelta(t, DefaultAspectRatio, c.AspectRatio("item", 1), 1e-9)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.False(t, c.RecordAspectRatio("item", 1, bad), "ratio %v", bad)
	}
	assert.False(t, c.RecordAspectRatio("item", 2, 1.5))
	assert.False(t, c.Measured("item", 1))
}

func TestRecordingRatioDoesNotMoveCarousel(t *testing.T) {
	c := NewCarousel(map[string]int{"item": 3})
	c.Advance("item")
	c.RecordAspectRatio("item", 2, 2)
	assert.Equal(t, 1, c.Index("item"))
}
