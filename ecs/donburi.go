package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for motion trigger events.
// Subscribe to this in your ECS systems to react to entrances firing,
// asset timeouts, scroll re-arms and resets.
var TriggerEventType = events.NewEventType[motion.TriggerEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTrigger(event motion.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}
