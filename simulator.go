package starfield

import "math"

// Simulator owns the star pool and advances it once per frame.
type Simulator struct {
	config    Config
	table     TransformTable
	stars     []Star
	src       Source
	projector Projector
	store     EventStore

	// started is false until the first Advance, which only records lastST.
	started bool
	lastST  float64
	frame   uint64

	speed float64
	warp  *Warp
}

// NewSimulator validates cfg, builds the transform table and populates the
// pool with randomized stars. A nil src uses NewSource(cfg.Seed).
func NewSimulator(cfg Config, src Source) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(cfg.Seed)
	}
	s := &Simulator{
		config: cfg,
		table:  BuildTransforms(cfg.Depth),
		stars:  make([]Star, cfg.Amount),
		src:    src,
		projector: Projector{
			Perspective: cfg.Perspective,
			OriginX:     cfg.OriginX,
			OriginY:     cfg.OriginY,
		},
		speed: cfg.Speed,
	}
	// Initial indexes exclude the top entry, so no star starts fully grown.
	top := s.table.Last()
	for i := range s.stars {
		st := &s.stars[i]
		s.spawn(st)
		st.TransformIndex = s.src.IntN(top)
	}
	return s, nil
}

// spawn draws new lateral offsets and a new integer depth in [1, Depth).
func (s *Simulator) spawn(st *Star) {
	st.X = nonZeroSpread(s.src, s.config.Spread)
	st.Y = nonZeroSpread(s.src, s.config.Spread)
	st.Z = float64(intBetween(s.src, 1, s.config.Depth))
}

// reset moves the star at pool index i to the back of the field.
func (s *Simulator) reset(i int) {
	st := &s.stars[i]
	s.spawn(st)
	st.TransformIndex = 0
	if s.store != nil {
		s.store.EmitEvent(StarEvent{
			Type:  EventStarRecycled,
			Frame: s.frame,
			Index: i,
			X:     st.X,
			Y:     st.Y,
			Z:     st.Z,
		})
	}
}

// Advance moves every star toward the viewer by the distance covered since
// the previous call. st is the frame timestamp in seconds. The first call
// only records st. Stars whose depth drops to zero or below are respawned
// within the same call.
func (s *Simulator) Advance(st float64) {
	if !s.started {
		s.started = true
		s.lastST = st
	}
	delta := st - s.lastST
	s.lastST = st
	s.frame++

	if s.warp != nil {
		s.speed = s.warp.update(delta)
		if s.warp.Done {
			s.warp = nil
		}
	}

	move := math.Abs(delta * s.speed)
	top := s.table.Last()

	for i := range s.stars {
		star := &s.stars[i]
		star.Z -= move
		star.TransformIndex = min(star.TransformIndex+1, top)
		if star.Z <= 0 {
			s.reset(i)
		}
	}
}

// Stars returns the pool. The returned slice MUST NOT be appended to or
// retained across frames.
func (s *Simulator) Stars() []Star {
	return s.stars
}

// Len returns the pool size.
func (s *Simulator) Len() int {
	return len(s.stars)
}

// Table returns the shared transform table.
func (s *Simulator) Table() TransformTable {
	return s.table
}

// Projector returns the projector configured for this simulator.
func (s *Simulator) Projector() Projector {
	return s.projector
}

// SetOrigin moves the projection origin, e.g. to re-center after a resize.
func (s *Simulator) SetOrigin(x, y float64) {
	s.projector.OriginX = x
	s.projector.OriginY = y
}

// SetEventStore sets the optional event sink for recycle events.
func (s *Simulator) SetEventStore(store EventStore) {
	s.store = store
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config {
	return s.config
}

// Frame returns the number of Advance calls so far.
func (s *Simulator) Frame() uint64 {
	return s.frame
}

// Speed returns the current speed in depth units per second.
func (s *Simulator) Speed() float64 {
	return s.speed
}

// SetSpeed sets the speed immediately, cancelling any warp in progress.
func (s *Simulator) SetSpeed(speed float64) {
	s.warp = nil
	s.speed = speed
}
