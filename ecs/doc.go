// Package ecs provides ECS adapters for motion's trigger events.
//
// The primary adapter is [NewDonburiSink], which forwards trigger events
// (fired, asset-timeout, rearmed, reset) into a [Donburi] world as typed
// events. Subscribe to [TriggerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	player.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
