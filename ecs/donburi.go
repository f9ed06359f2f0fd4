package ecs

import (
	"github.com/phanxgames/starfield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StarEventType carries starfield events through a Donburi world. A
// recycle event holds the pool index and the respawned X, Y and Z; a
// frame-rendered event holds that frame's drawn, hidden and culled counts.
// Both carry the simulator frame they fired on.
var StarEventType = events.NewEventType[starfield.StarEvent]()

// worldSink publishes into one world's event queue.
type worldSink struct {
	world donburi.World
}

// NewDonburiStore returns a starfield.EventStore that queues every star
// event on world. Systems see them after events.ProcessAllEvents or
// StarEventType.ProcessEvents, so a frame's recycles and its stats arrive
// together in emission order.
func NewDonburiStore(world donburi.World) starfield.EventStore {
	return &worldSink{world: world}
}

func (s *worldSink) EmitEvent(event starfield.StarEvent) {
	StarEventType.Publish(s.world, event)
}
