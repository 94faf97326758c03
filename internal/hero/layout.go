// Package hero computes the folder-card arc shown in the hero banner.
package hero

import "math"

const mobileBreakpoint = 640

// Placement positions one folder card relative to the row center.
type Placement struct {
	Width   float64 `json:"width"`
	X       float64 `json:"x"`
	OffsetY float64 `json:"offset_y"`
	Tilt    float64 `json:"tilt"`
}

// Arc lays count cards along a shallow sine arc, overlapping neighbours and
// fanning the tilt out from the middle card.
func Arc(count int, viewportWidth float64) []Placement {
	if count <= 0 {
		return nil
	}
	mobile := viewportWidth < mobileBreakpoint

	width, overlap, maxOffset, tiltStep := 160.0, 40.0, 20.0, 5.0
	if mobile {
		width = math.Max(90, viewportWidth/5-10)
		overlap = math.Max(10, width/4)
		maxOffset, tiltStep = 8, 2
	}

	step := width - overlap
	total := float64(count-1) * step
	mid := float64(count-1) / 2

	out := make([]Placement, count)
	for i := range out {
		p := Placement{Width: width, X: float64(i)*step - total/2, Tilt: (float64(i) - mid) * tiltStep}
		if count > 1 {
			p.OffsetY = maxOffset * math.Sin(float64(i)/float64(count-1)*math.Pi)
		}
		out[i] = p
	}
	return out
}
