package ecs

import (
	"testing"

	"github.com/phanxgames/starfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

type nullHost struct{}

func (nullHost) Emit(int, float64, float64) {}
func (nullHost) RequestNextFrame()          {}

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []starfield.StarEvent
	StarEventType.Subscribe(world, func(w donburi.World, e starfield.StarEvent) {
		received = append(received, e)
	})

	store.EmitEvent(starfield.StarEvent{
		Type:  starfield.EventStarRecycled,
		Frame: 7,
		Index: 3,
		X:     -4,
		Y:     9,
		Z:     12,
	})
	store.EmitEvent(starfield.StarEvent{
		Type:  starfield.EventFrameRendered,
		Stats: starfield.FrameStats{Drawn: 10, Culled: 2},
	})

	// Events are queued until processed.
	StarEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != starfield.EventStarRecycled || e0.Index != 3 || e0.Frame != 7 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != -4 || e0.Y != 9 || e0.Z != 12 {
		t.Errorf("event 0 position: (%v,%v,%v)", e0.X, e0.Y, e0.Z)
	}

	e1 := received[1]
	if e1.Type != starfield.EventFrameRendered || e1.Stats.Drawn != 10 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store starfield.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_FromRenderer(t *testing.T) {
	world := donburi.NewWorld()
	cfg := starfield.DefaultConfig().Centered(800, 600)
	cfg.Amount = 5
	sim, err := starfield.NewSimulator(cfg, maxSource{})
	if err != nil {
		t.Fatal(err)
	}
	sim.SetEventStore(NewDonburiStore(world))
	r := starfield.NewFrameRenderer(sim, func(starfield.Transform) int { return 0 })

	var recycled, frames int
	var order []starfield.EventType
	var last starfield.StarEvent
	StarEventType.Subscribe(world, func(w donburi.World, e starfield.StarEvent) {
		order = append(order, e.Type)
		last = e
		switch e.Type {
		case starfield.EventStarRecycled:
			recycled++
			if e.Z < 1 || e.X == 0 || e.Y == 0 {
				t.Errorf("recycled star %d respawned at (%d,%d,%v)", e.Index, e.X, e.Y, e.Z)
			}
		case starfield.EventFrameRendered:
			frames++
		}
	})

	r.Render(0, 800, 600, nullHost{})
	r.Render(100, 800, 600, nullHost{}) // every star overshoots and recycles
	events.ProcessAllEvents(world)

	if recycled != 5 {
		t.Errorf("recycled = %d, want 5", recycled)
	}
	if frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	// A frame's recycles are queued before its stats.
	if len(order) != 7 || order[1] != starfield.EventStarRecycled || order[6] != starfield.EventFrameRendered {
		t.Errorf("event order = %v", order)
	}
	if n := last.Stats.Drawn + last.Stats.Hidden + last.Stats.Culled; n != 5 {
		t.Errorf("frame stats cover %d stars, want 5", n)
	}
	if last.Frame != 2 {
		t.Errorf("frame = %d, want 2", last.Frame)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	StarEventType.Subscribe(world, func(w donburi.World, e starfield.StarEvent) {
		count1++
	})
	StarEventType.Subscribe(world, func(w donburi.World, e starfield.StarEvent) {
		count2++
	})

	store.EmitEvent(starfield.StarEvent{Type: starfield.EventFrameRendered})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
