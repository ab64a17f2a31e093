package mathsketch

import "log/slog"

// PointerEvent is a normalized pointer event in the sketch's logical
// coordinate space.
type PointerEvent struct {
	Kind EventKind
	X, Y float64
}

// PointerContext carries the pointer position to interaction callbacks.
type PointerContext struct {
	Kind EventKind
	X, Y float64
}

// Pos returns the pointer position as a Vec2.
func (c PointerContext) Pos() Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}

// DownFunc is offered a pointer-down event while the dispatcher is idle.
// Return Stop to claim the event; typically after calling BeginDrag.
type DownFunc func(ctx PointerContext) Signal

// MoveFunc receives every pointer move while its drag session is active.
type MoveFunc func(ctx PointerContext)

// EndFunc is called once when its drag session finishes.
type EndFunc func(ctx PointerContext, reason EndReason)

// EventSink is the interface for optional ECS integration.
// When set on a Dispatcher, drag lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries drag lifecycle data for an EventSink.
type InteractionEvent struct {
	Type EventType
	X, Y float64
	// Reason is valid for EventDragEnd.
	Reason EndReason
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for state transition diagnostics.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithEventSink forwards drag lifecycle events to sink.
func WithEventSink(sink EventSink) DispatcherOption {
	return func(d *Dispatcher) {
		d.sink = sink
	}
}

// Dispatcher arbitrates pointer input between registered handlers and owns
// the single exclusive drag session. Create one per sketch.
//
// A Dispatcher is not safe for concurrent use. All methods must be called
// from the goroutine that delivers input, normally Ebitengine's Update.
// No method reports an error: calls that do not apply to the current state
// are ignored.
type Dispatcher struct {
	handlers handlerRegistry
	session  dragSession
	pointer  Vec2
	logger   *slog.Logger
	sink     EventSink
}

// NewDispatcher creates an idle Dispatcher with no handlers.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a pointer-down handler. Handlers with higher priority are
// offered the event first; equal priorities keep registration order.
// Registering the same function twice is allowed and both registrations fire.
func (d *Dispatcher) Register(fn DownFunc, priority int) HandlerHandle {
	if fn == nil {
		return HandlerHandle{}
	}
	id := d.handlers.register(fn, priority)
	d.logger.Debug("handler registered", "id", id, "priority", priority)
	return HandlerHandle{id: id, d: d}
}

// HandlerCount returns the number of registered handlers.
func (d *Dispatcher) HandlerCount() int {
	return len(d.handlers.ordered())
}

// State returns the current interaction state.
func (d *Dispatcher) State() State {
	if d.session.active() {
		return StateDragging
	}
	return StateIdle
}

// Dragging reports whether a drag session is active.
func (d *Dispatcher) Dragging() bool {
	return d.session.active()
}

// Pointer returns the position of the most recently dispatched event.
func (d *Dispatcher) Pointer() Vec2 {
	return d.pointer
}

// BeginDrag claims the exclusive drag session. move is called for every
// subsequent pointer move until pointer up, pointer leave, or EndDrag.
// It reports whether the session started; when a session is already active
// the call is ignored and the active session keeps its callbacks.
func (d *Dispatcher) BeginDrag(move MoveFunc, opts ...DragOption) bool {
	var cfg dragConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !d.session.begin(move, cfg.end) {
		d.logger.Debug("drag begin ignored", "state", d.State())
		return false
	}
	d.logger.Debug("drag begin", "x", d.pointer.X, "y", d.pointer.Y)
	d.emit(InteractionEvent{Type: EventDragStart, X: d.pointer.X, Y: d.pointer.Y})
	return true
}

// EndDrag cancels the active drag session. Does nothing when idle.
func (d *Dispatcher) EndDrag() {
	d.endSession(PointerContext{Kind: PointerLeave, X: d.pointer.X, Y: d.pointer.Y}, EndCancelled)
}

// Dispatch applies one normalized pointer event.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	d.pointer = Vec2{X: ev.X, Y: ev.Y}
	ctx := PointerContext{Kind: ev.Kind, X: ev.X, Y: ev.Y}

	switch d.State() {
	case StateIdle:
		if ev.Kind == PointerDown {
			d.arbitrate(ctx)
		}
	case StateDragging:
		switch ev.Kind {
		case PointerMove:
			// Emitted first: the move callback may end the session.
			d.emit(InteractionEvent{Type: EventDrag, X: ev.X, Y: ev.Y})
			d.session.update(ctx)
		case PointerUp:
			d.endSession(ctx, EndReleased)
		case PointerLeave:
			d.endSession(ctx, EndCancelled)
		}
	}
}

// Down dispatches a pointer-down event at (x, y).
func (d *Dispatcher) Down(x, y float64) { d.Dispatch(PointerEvent{Kind: PointerDown, X: x, Y: y}) }

// Move dispatches a pointer-move event at (x, y).
func (d *Dispatcher) Move(x, y float64) { d.Dispatch(PointerEvent{Kind: PointerMove, X: x, Y: y}) }

// Up dispatches a pointer-up event at (x, y).
func (d *Dispatcher) Up(x, y float64) { d.Dispatch(PointerEvent{Kind: PointerUp, X: x, Y: y}) }

// Leave dispatches a pointer-leave event at (x, y).
func (d *Dispatcher) Leave(x, y float64) { d.Dispatch(PointerEvent{Kind: PointerLeave, X: x, Y: y}) }

// arbitrate offers a pointer-down to handlers in priority order until one
// returns Stop.
func (d *Dispatcher) arbitrate(ctx PointerContext) {
	for _, h := range d.handlers.ordered() {
		if h.fn(ctx) == Stop {
			d.logger.Debug("pointer down claimed", "id", h.id, "priority", h.priority,
				"dragging", d.session.active())
			return
		}
	}
}

func (d *Dispatcher) endSession(ctx PointerContext, reason EndReason) {
	end, ok := d.session.finish()
	if !ok {
		return
	}
	d.logger.Debug("drag end", "reason", reason.String(), "x", ctx.X, "y", ctx.Y)
	d.emit(InteractionEvent{Type: EventDragEnd, X: ctx.X, Y: ctx.Y, Reason: reason})
	if end != nil {
		end(ctx, reason)
	}
}

func (d *Dispatcher) emit(ev InteractionEvent) {
	if d.sink == nil {
		return
	}
	d.sink.EmitEvent(ev)
}
