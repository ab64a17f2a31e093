package mathsketch

import "testing"

func TestDragSessionBeginUpdateFinish(t *testing.T) {
	var s dragSession
	if s.active() {
		t.Fatal("zero session should be inactive")
	}
	if s.update(PointerContext{}) {
		t.Error("update on inactive session reported true")
	}
	if _, ok := s.finish(); ok {
		t.Error("finish on inactive session reported true")
	}

	var got []float64
	if !s.begin(func(ctx PointerContext) { got = append(got, ctx.X) }, nil) {
		t.Fatal("begin on inactive session failed")
	}
	if s.begin(func(PointerContext) {}, nil) {
		t.Error("begin on active session succeeded")
	}
	s.update(PointerContext{X: 7})
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("move callback got %v, want [7]", got)
	}

	end, ok := s.finish()
	if !ok || end != nil {
		t.Errorf("finish() = (%v, %v), want (nil, true)", end != nil, ok)
	}
	if s.active() {
		t.Error("session still active after finish")
	}
}

func TestDragSessionFinishReturnsEnd(t *testing.T) {
	var s dragSession
	called := false
	s.begin(func(PointerContext) {}, func(PointerContext, EndReason) { called = true })

	end, ok := s.finish()
	if !ok || end == nil {
		t.Fatal("finish should return the end callback")
	}
	if called {
		t.Error("finish must not run the end callback itself")
	}
	if s.end != nil || s.move != nil {
		t.Error("callbacks not cleared")
	}
}

func TestStateStrings(t *testing.T) {
	if StateIdle.String() != "Idle" || StateDragging.String() != "Dragging" {
		t.Errorf("state strings = %q, %q", StateIdle, StateDragging)
	}
	if EndReleased.String() != "released" || EndCancelled.String() != "cancelled" {
		t.Errorf("reason strings = %q, %q", EndReleased, EndCancelled)
	}
	kinds := map[EventKind]string{
		PointerDown: "down", PointerMove: "move", PointerUp: "up", PointerLeave: "leave", EventKind(99): "unknown",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
