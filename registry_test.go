package mathsketch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func registryPriorities(r *handlerRegistry) []int {
	var out []int
	for _, h := range r.ordered() {
		out = append(out, h.priority)
	}
	return out
}

func registryIDs(r *handlerRegistry) []uint32 {
	var out []uint32
	for _, h := range r.ordered() {
		out = append(out, h.id)
	}
	return out
}

func TestRegistrySortedDescending(t *testing.T) {
	var r handlerRegistry
	noop := func(PointerContext) Signal { return Continue }
	for _, p := range []int{0, 5, -2, 5, 3} {
		r.register(noop, p)
	}

	if diff := cmp.Diff([]int{5, 5, 3, 0, -2}, registryPriorities(&r)); diff != "" {
		t.Errorf("priorities mismatch (-want +got):\n%s", diff)
	}
	// IDs 2 and 4 share priority 5 and must keep registration order.
	if diff := cmp.Diff([]uint32{2, 4, 5, 1, 3}, registryIDs(&r)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRemove(t *testing.T) {
	var r handlerRegistry
	noop := func(PointerContext) Signal { return Continue }
	a := r.register(noop, 0)
	b := r.register(noop, 0)
	c := r.register(noop, 0)

	if !r.remove(b) {
		t.Fatal("remove(b) = false, want true")
	}
	if r.remove(b) {
		t.Error("second remove(b) = true, want false")
	}
	if diff := cmp.Diff([]uint32{a, c}, registryIDs(&r)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistrySnapshotSurvivesMutation(t *testing.T) {
	var r handlerRegistry
	noop := func(PointerContext) Signal { return Continue }
	id := r.register(noop, 0)
	r.register(noop, 0)

	snap := r.ordered()
	r.remove(id)
	r.register(noop, 10)

	if len(snap) != 2 || snap[0].id != id {
		t.Errorf("snapshot changed after mutation: %+v", snap)
	}
}

func TestHandlerHandleRemove(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	h := d.Register(func(PointerContext) Signal {
		calls = append(calls, "removed")
		return Continue
	}, 1)
	d.Register(func(PointerContext) Signal {
		calls = append(calls, "kept")
		return Continue
	}, 0)

	h.Remove()
	h.Remove()
	d.Down(0, 0)

	if diff := cmp.Diff([]string{"kept"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if d.HandlerCount() != 1 {
		t.Errorf("HandlerCount() = %d, want 1", d.HandlerCount())
	}
}

func TestHandlerHandleZeroValue(t *testing.T) {
	var h HandlerHandle
	h.Remove() // must not panic

	d := NewDispatcher()
	if got := d.Register(nil, 0); got != (HandlerHandle{}) {
		t.Errorf("Register(nil) = %+v, want zero handle", got)
	}
	if d.HandlerCount() != 0 {
		t.Errorf("HandlerCount() = %d, want 0", d.HandlerCount())
	}
}

func TestRemoveDuringDispatchFinishesEvent(t *testing.T) {
	d := NewDispatcher()
	var second HandlerHandle
	ran := false
	d.Register(func(PointerContext) Signal {
		second.Remove()
		return Continue
	}, 1)
	second = d.Register(func(PointerContext) Signal {
		ran = true
		return Continue
	}, 0)

	d.Down(0, 0)
	if !ran {
		t.Error("handler removed mid-dispatch should still see the in-flight event")
	}

	ran = false
	d.Down(0, 0)
	if ran {
		t.Error("removed handler ran on a later event")
	}
}
