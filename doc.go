// Package mathsketch provides shared helpers for interactive math and
// geometry sketches built on [Ebitengine]: a standard palette, point and
// segment rendering, a canvas/game-loop wrapper, and a pointer-interaction
// dispatcher.
//
// # Quick start
//
//	s, err := mathsketch.NewSketch(mathsketch.RunConfig{Title: "Midpoint"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	a, b := &mathsketch.Vec2{X: 100, Y: 100}, &mathsketch.Vec2{X: 300, Y: 200}
//	s.DragPoints([]*mathsketch.Vec2{a, b}, mathsketch.DragPointsOptions{})
//	s.OnDraw = func(screen *ebiten.Image) {
//		mathsketch.RenderSegment(screen, *a, *b, mathsketch.SegmentOptions{})
//		mathsketch.RenderPoint(screen, *a, mathsketch.PointOptions{Label: "A"})
//		mathsketch.RenderPoint(screen, *b, mathsketch.PointOptions{Label: "B"})
//	}
//	log.Fatal(mathsketch.Run(s))
//
// # Interaction
//
// A [Dispatcher] owns an ordered list of pointer-down handlers and at most
// one drag session. Handlers are registered with a priority; on pointer down
// they are offered the event from highest to lowest priority (registration
// order on ties) until one returns [Stop]. A handler that wants the pointer
// calls [Dispatcher.BeginDrag] before returning Stop; its move callback then
// receives every pointer move until pointer up or pointer leave. Leaving the
// canvas ends the drag exactly like releasing the button, so a drag can never
// get stuck.
//
// Input reaches the Dispatcher through an [InputAdapter], which samples a
// [PointerSource] once per tick and emits down, move, up and leave events.
// [Sketch] wires both to Ebitengine; tests and tools can drive a Dispatcher
// directly with [Dispatcher.Dispatch].
//
// Drag lifecycle events can be forwarded to an ECS through [EventSink]; see
// the mathsketch/ecs module for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package mathsketch
