package mathsketch

import (
	"math"
	"testing"
)

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{Center: Vec2{X: 50, Y: 50}, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNearestWithin(t *testing.T) {
	points := []*Vec2{{X: 0, Y: 0}, nil, {X: 10, Y: 0}, {X: 100, Y: 100}}

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"nearest of two in range", 7, 0, 2},
		{"tie goes to lower index", 5, 0, 0},
		{"nothing in range", 50, 50, -1},
		{"far point", 98, 101, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestWithin(points, tt.x, tt.y, 15); got != tt.want {
				t.Errorf("nearestWithin(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDragPointsScenario(t *testing.T) {
	d := NewDispatcher()
	a := &Vec2{X: 10, Y: 10}
	b := &Vec2{X: 100, Y: 100}

	var moved []int
	var released []EndReason
	DragPoints(d, []*Vec2{a, b}, DragPointsOptions{
		Radius:    15,
		OnMove:    func(i int, _ Vec2) { moved = append(moved, i) },
		OnRelease: func(_ int, _ Vec2, r EndReason) { released = append(released, r) },
	})

	// Distance from (12,12) to A is about 2.8.
	if dist := (Vec2{X: 12, Y: 12}).Sub(*a).Norm(); math.Abs(dist-2.83) > 0.01 {
		t.Fatalf("distance = %v", dist)
	}
	d.Down(12, 12)
	if d.State() != StateDragging {
		t.Fatalf("State() = %v, want Dragging", d.State())
	}
	d.Move(50, 50)
	if *a != (Vec2{X: 50, Y: 50}) || *b != (Vec2{X: 100, Y: 100}) {
		t.Errorf("a = %v, b = %v", *a, *b)
	}
	d.Up(50, 50)

	d.Down(100, 100)
	d.Move(110, 90)
	d.Leave(110, 90)

	if *b != (Vec2{X: 110, Y: 90}) {
		t.Errorf("b = %v, want (110, 90)", *b)
	}
	if len(moved) != 2 || moved[0] != 0 || moved[1] != 1 {
		t.Errorf("moved = %v, want [0 1]", moved)
	}
	if len(released) != 2 || released[0] != EndReleased || released[1] != EndCancelled {
		t.Errorf("released = %v, want [released cancelled]", released)
	}
}

func TestDragPointsMissContinues(t *testing.T) {
	d := NewDispatcher()
	DragPoints(d, []*Vec2{{X: 0, Y: 0}}, DragPointsOptions{Radius: 10})
	fallback := false
	d.Register(func(PointerContext) Signal {
		fallback = true
		return Continue
	}, -1)

	d.Down(50, 50)
	if !fallback {
		t.Error("a miss should let lower-priority handlers see the press")
	}
	if d.Dragging() {
		t.Error("a miss should not begin a drag")
	}
}

func TestDragPointsDefaultRadius(t *testing.T) {
	d := NewDispatcher()
	DragPoints(d, []*Vec2{{X: 0, Y: 0}}, DragPointsOptions{})

	d.Down(14, 0)
	if !d.Dragging() {
		t.Errorf("press at 14 should hit with default radius %v", DefaultHitRadius)
	}
}

func TestDragPointsPriorityOverlap(t *testing.T) {
	d := NewDispatcher()
	low := &Vec2{X: 0, Y: 0}
	high := &Vec2{X: 5, Y: 0}
	DragPoints(d, []*Vec2{low}, DragPointsOptions{Priority: 0})
	DragPoints(d, []*Vec2{high}, DragPointsOptions{Priority: 1})

	// Closer to low, but the high-priority group claims first.
	d.Down(1, 0)
	d.Move(30, 30)
	if *high != (Vec2{X: 30, Y: 30}) || *low != (Vec2{}) {
		t.Errorf("high = %v, low = %v", *high, *low)
	}
}
