package gallery

import "math"

// DefaultAspectRatio is used for any image that has not been measured yet.
const DefaultAspectRatio = 4.0 / 3.0

type imageKey struct {
	item  string
	index int
}

// Carousel tracks the current image of every item and the aspect ratios
// measured so far. Items without a recorded index start at 0.
type Carousel struct {
	counts map[string]int
	index  map[string]int
	ratios map[imageKey]float64
}

// NewCarousel builds a carousel over items with the given image counts.
func NewCarousel(counts map[string]int) *Carousel {
	return &Carousel{
		counts: counts,
		index:  make(map[string]int),
		ratios: make(map[imageKey]float64),
	}
}

// Index returns the current image offset for id.
func (c *Carousel) Index(id string) int {
	return c.index[id]
}

// Advance moves to the next image, wrapping to the first.
func (c *Carousel) Advance(id string) int {
	n := c.counts[id]
	if n <= 0 {
		return 0
	}
	next := (c.index[id] + 1) % n
	c.index[id] = next
	return next
}

// Retreat moves to the previous image, wrapping to the last.
func (c *Carousel) Retreat(id string) int {
	n := c.counts[id]
	if n <= 0 {
		return 0
	}
	prev := (c.index[id] - 1 + n) % n
	c.index[id] = prev
	return prev
}

// JumpTo sets the current image. Out-of-range targets leave the index
// unchanged and report false.
func (c *Carousel) JumpTo(id string, target int) bool {
	if target < 0 || target >= c.counts[id] {
		return false
	}
	c.index[id] = target
	return true
}

// RecordAspectRatio stores a measured width/height ratio. Invalid ratios and
// offsets are dropped.
func (c *Carousel) RecordAspectRatio(id string, index int, ratio float64) bool {
	if index < 0 || index >= c.counts[id] {
		return false
	}
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return false
	}
	c.ratios[imageKey{id, index}] = ratio
	return true
}

// AspectRatio returns the measured ratio for an image, or DefaultAspectRatio.
func (c *Carousel) AspectRatio(id string, index int) float64 {
	if r, ok := c.ratios[imageKey{id, index}]; ok {
		return r
	}
	return DefaultAspectRatio
}

// Measured reports whether a ratio has been recorded for the image.
func (c *Carousel) Measured(id string, index int) bool {
	_, ok := c.ratios[imageKey{id, index}]
	return ok
}
