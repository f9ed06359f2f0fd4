// Package ecs provides ECS adapters for starfield's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges starfield events
// (star recycles and rendered frames) into a [Donburi] world as typed events.
// Subscribe to [StarEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sim.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
