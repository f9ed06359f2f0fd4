package starfield

import "time"

// Host is the capability a FrameRenderer needs from its display system.
// H is the host's drawable handle type, opaque to the renderer.
type Host[H any] interface {
	// Emit places the drawable at screen position (x, y). Placement order
	// within a frame is unspecified.
	Emit(handle H, x, y float64)
	// RequestNextFrame asks the host to render again as soon as possible.
	RequestNextFrame()
}

// FrameStats counts what happened to the pool during one frame.
type FrameStats struct {
	Drawn  int // emitted to the host
	Hidden int // skipped because the transform has no opacity
	Culled int // projected outside the screen
}

// FrameRenderer runs simulate, project, cull and emit once per frame. It
// holds one precomputed handle per transform and no per-frame state.
type FrameRenderer[H any] struct {
	sim     *Simulator
	handles []H
	debug   bool
}

// NewFrameRenderer builds the renderer and asks the asset provider for one
// handle per transform table entry, in index order.
func NewFrameRenderer[H any](sim *Simulator, asset func(Transform) H) *FrameRenderer[H] {
	table := sim.Table()
	handles := make([]H, 0, table.Len())
	table.Each(func(_ int, tr Transform) {
		handles = append(handles, asset(tr))
	})
	return &FrameRenderer[H]{sim: sim, handles: handles}
}

// Simulator returns the simulator this renderer drives.
func (r *FrameRenderer[H]) Simulator() *Simulator {
	return r.sim
}

// Handles returns the precomputed drawables indexed like the transform
// table. The returned slice MUST NOT be mutated.
func (r *FrameRenderer[H]) Handles() []H {
	return r.handles
}

// SetDebugMode enables or disables debug mode. When enabled, projecting a
// star with non-positive depth panics and per-frame stats are logged to
// stderr.
func (r *FrameRenderer[H]) SetDebugMode(enabled bool) {
	r.debug = enabled
	r.sim.projector.Debug = enabled
}

// Render advances the simulation to st and emits every visible star that
// lands inside a width x height screen. It always requests another frame.
func (r *FrameRenderer[H]) Render(st float64, width, height int, host Host[H]) FrameStats {
	var stats FrameStats
	var dstats debugStats
	var t0 time.Time

	if r.debug {
		t0 = time.Now()
	}

	r.sim.Advance(st)

	if r.debug {
		dstats.advanceTime = time.Since(t0)
		t0 = time.Now()
	}

	table := r.sim.table
	proj := r.sim.projector
	w, h := float64(width), float64(height)

	stars := r.sim.stars
	for i := range stars {
		star := &stars[i]
		if table.entries[star.TransformIndex].Opacity <= 0 {
			stats.Hidden++
			continue
		}
		x, y := proj.Project(star)
		if x < 0 || x >= w || y < 0 || y >= h {
			stats.Culled++
			continue
		}
		host.Emit(r.handles[star.TransformIndex], x, y)
		stats.Drawn++
	}

	if r.debug {
		dstats.emitTime = time.Since(t0)
		dstats.frame = stats
		debugLog(dstats)
	}

	if r.sim.store != nil {
		r.sim.store.EmitEvent(StarEvent{
			Type:  EventFrameRendered,
			Frame: r.sim.frame,
			Stats: stats,
		})
	}

	host.RequestNextFrame()
	return stats
}
