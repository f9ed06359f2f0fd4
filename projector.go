package starfield

import (
	"fmt"
	"math"
)

// Projector maps star coordinates to screen coordinates by perspective
// division.
type Projector struct {
	Perspective      float64
	OriginX, OriginY float64
	// Debug makes Project panic on a non-positive depth instead of returning
	// infinite or NaN coordinates.
	Debug bool
}

// Project returns the screen position of s. The lateral products are
// truncated toward zero before the origin is added.
func (p Projector) Project(s *Star) (x, y float64) {
	if p.Debug && !(s.Z > 0) {
		debugCheckDepth(s)
	}
	factor := p.Perspective / s.Z
	x = math.Trunc(float64(s.X)*factor) + p.OriginX
	y = math.Trunc(float64(s.Y)*factor) + p.OriginY
	return x, y
}

// debugCheckDepth panics with a descriptive message. A star reaching the
// projector with z <= 0 means the simulator skipped a reset.
func debugCheckDepth(s *Star) {
	panic(fmt.Sprintf("starfield debug: projecting star with non-positive depth (x=%d y=%d z=%v index=%d)",
		s.X, s.Y, s.Z, s.TransformIndex))
}
