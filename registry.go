package mathsketch

import "golang.org/x/exp/slices"

// --- Handler registry ---

type handler struct {
	id       uint32
	fn       DownFunc
	priority int
}

// handlerRegistry keeps pointer-down handlers sorted by descending priority,
// ties in registration order. The slice is replaced, never edited in place, so
// a dispatch holding the previous slice keeps a consistent view.
type handlerRegistry struct {
	handlers []handler
	nextID   uint32
}

func (r *handlerRegistry) register(fn DownFunc, priority int) uint32 {
	r.nextID++
	id := r.nextID

	next := make([]handler, len(r.handlers), len(r.handlers)+1)
	copy(next, r.handlers)
	next = append(next, handler{id: id, fn: fn, priority: priority})
	slices.SortStableFunc(next, func(a, b handler) bool {
		return a.priority > b.priority
	})
	r.handlers = next
	return id
}

func (r *handlerRegistry) remove(id uint32) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			next := make([]handler, 0, len(r.handlers)-1)
			next = append(next, r.handlers[:i]...)
			next = append(next, r.handlers[i+1:]...)
			r.handlers = next
			return true
		}
	}
	return false
}

// ordered returns the handlers in dispatch order. The returned slice MUST NOT
// be mutated.
func (r *handlerRegistry) ordered() []handler {
	return r.handlers
}

// HandlerHandle allows removing a registered pointer-down handler.
type HandlerHandle struct {
	id uint32
	d  *Dispatcher
}

// Remove unregisters the handler so it no longer sees pointer-down events.
// Calling Remove more than once, or on a zero HandlerHandle, does nothing.
// A dispatch already in progress still offers the event to the handler.
func (h HandlerHandle) Remove() {
	if h.d == nil {
		return
	}
	if h.d.handlers.remove(h.id) {
		h.d.logger.Debug("handler removed", "id", h.id)
	}
}
