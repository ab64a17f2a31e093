package mathsketch

// InjectDown queues a pointer-down event at (x, y). Injected events are
// consumed one per Poll, in order, in place of real input. They share the
// adapter's contact state with real input and are subject to the same bounds.
func (a *InputAdapter) InjectDown(x, y float64) {
	a.injectQueue = append(a.injectQueue, PointerEvent{Kind: PointerDown, X: x, Y: y})
}

// InjectMove queues a pointer-move event at (x, y).
func (a *InputAdapter) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, PointerEvent{Kind: PointerMove, X: x, Y: y})
}

// InjectUp queues a pointer-up event at (x, y).
func (a *InputAdapter) InjectUp(x, y float64) {
	a.injectQueue = append(a.injectQueue, PointerEvent{Kind: PointerUp, X: x, Y: y})
}

// InjectLeave queues a pointer-leave event at (x, y).
func (a *InputAdapter) InjectLeave(x, y float64) {
	a.injectQueue = append(a.injectQueue, PointerEvent{Kind: PointerLeave, X: x, Y: y})
}

// InjectClick queues a down followed by an up at the same position.
// Consumes two polls.
func (a *InputAdapter) InjectClick(x, y float64) {
	a.InjectDown(x, y)
	a.InjectUp(x, y)
}

// InjectDrag queues a full drag sequence: down at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate polls, then a final move and
// up at (toX, toY). Minimum frames is 2. The sequence consumes frames+1 polls
// because the final position is delivered as a move before the up.
func (a *InputAdapter) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectDown(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	a.InjectMove(toX, toY)
	a.InjectUp(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (a *InputAdapter) Pending() int {
	return len(a.injectQueue)
}

// processInjectedInput pops one injected event and runs it through the same
// edge detection as a real sample, so real input on later polls continues or
// ends the contact it started. Returns true if an event was consumed.
func (a *InputAdapter) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	a.apply(a.injectedSample(ev))
	return true
}

// injectedSample converts a queued event into the sample that produces it.
func (a *InputAdapter) injectedSample(ev PointerEvent) PointerSample {
	s := PointerSample{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case PointerDown:
		// An injected press is always a fresh contact.
		a.prevPressed = false
		s.Pressed = true
	case PointerMove:
		s.Pressed = a.down
	case PointerLeave:
		// Held stays set so real input needs a fresh press afterwards.
		s.Pressed = a.down
		s.Lost = true
	}
	return s
}
