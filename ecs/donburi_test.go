package ecs

import (
	"testing"

	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitTrigger(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []motion.TriggerEvent
	TriggerEventType.Subscribe(world, func(w donburi.World, e motion.TriggerEvent) {
		received = append(received, e)
	})

	sink.EmitTrigger(motion.TriggerEvent{
		LayerID: "title",
		Kind:    motion.TriggerScroll,
		Reason:  motion.ReasonFired,
		At:      250,
	})
	sink.EmitTrigger(motion.TriggerEvent{
		LayerID: "photo",
		Kind:    motion.TriggerLoad,
		Reason:  motion.ReasonAssetTimeout,
		At:      3000,
	})

	// Events are queued; process them.
	TriggerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.LayerID != "title" || e0.Kind != motion.TriggerScroll || e0.At != 250 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Reason != motion.ReasonAssetTimeout || e1.LayerID != "photo" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink motion.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TriggerEventType.Subscribe(world, func(w donburi.World, e motion.TriggerEvent) {
		count1++
	})
	TriggerEventType.Subscribe(world, func(w donburi.World, e motion.TriggerEvent) {
		count2++
	})

	sink.EmitTrigger(motion.TriggerEvent{LayerID: "a", Reason: motion.ReasonReset})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_PlayerFires(t *testing.T) {
	world := donburi.NewWorld()
	var received []motion.TriggerEvent
	TriggerEventType.Subscribe(world, func(w donburi.World, e motion.TriggerEvent) {
		received = append(received, e)
	})

	p := motion.NewPlayer(motion.DefaultConfig(), nil, motion.NewViewport(400, 800))
	p.SetSink(NewDonburiSink(world))
	l := motion.NewLayer("hero", 10, 10, 100, 40)
	l.Entrance = &motion.Entrance{Type: motion.EntranceFadeIn}
	p.BindLayer(l, "cover", 0)
	p.SetSectionActive("cover", true)
	p.Update()
	events.ProcessAllEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].LayerID != "hero" || received[0].Reason != motion.ReasonFired {
		t.Errorf("event: %+v", received[0])
	}
}
