// Package ecs lets a [Donburi] world react to points being dragged on a
// sketch. Pass the sink from [NewDonburiSink] to the Dispatcher and
// subscribe to [InteractionEventType]:
//
//	sink := ecs.NewDonburiSink(world)
//	d := mathsketch.NewDispatcher(mathsketch.WithEventSink(sink))
//	ecs.InteractionEventType.Subscribe(world, onDrag)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
