package ecs

import (
	"github.com/phanxgames/mathsketch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries drag start, drag and drag end of a sketch
// point into the world.
var InteractionEventType = events.NewEventType[mathsketch.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a sink for Dispatcher drag events. Nothing reaches
// subscribers until the world's systems call InteractionEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) mathsketch.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event mathsketch.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
