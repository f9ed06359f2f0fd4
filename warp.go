package starfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Warp eases the simulator's speed toward a target over a duration. It is
// advanced by Simulator.Advance with the same frame delta that moves the
// stars, so a paused clock also pauses the warp.
type Warp struct {
	tween *gween.Tween
	Done  bool
}

// update advances the tween by dt seconds and returns the eased speed.
func (w *Warp) update(dt float64) float64 {
	val, finished := w.tween.Update(float32(dt))
	w.Done = finished
	return float64(val)
}

// WarpTo starts easing the speed from its current value to target over
// duration seconds. A nil fn uses ease.Linear. A non-positive duration sets
// the speed immediately. Any warp already running is replaced.
func (s *Simulator) WarpTo(target float64, duration float32, fn ease.TweenFunc) *Warp {
	if duration <= 0 {
		s.SetSpeed(target)
		return &Warp{Done: true}
	}
	if fn == nil {
		fn = ease.Linear
	}
	s.warp = &Warp{tween: gween.New(float32(s.speed), float32(target), duration, fn)}
	return s.warp
}

// Warping reports whether a warp is in progress.
func (s *Simulator) Warping() bool {
	return s.warp != nil
}
