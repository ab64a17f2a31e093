package mathsketch

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a premultiplied color.RGBA for submission to Ebitengine.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point in the sketch's logical coordinate space.
// It is an r2.Point, so Add, Sub, Mul and Norm are available.
type Vec2 = r2.Point

// Rect is an axis-aligned rectangle. The origin is the top-left corner and Y
// increases downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a normalized pointer event.
type EventKind uint8

const (
	PointerDown  EventKind = iota // contact started (button pressed, finger down)
	PointerMove                   // pointer moved, with or without contact
	PointerUp                     // contact released
	PointerLeave                  // pointer left the interaction surface or focus was lost
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// State is the dispatcher's interaction state.
type State uint8

const (
	StateIdle     State = iota // no drag session
	StateDragging              // exactly one drag session is active
)

func (s State) String() string {
	if s == StateDragging {
		return "Dragging"
	}
	return "Idle"
}

// Signal is returned by pointer-down handlers to control arbitration.
type Signal uint8

const (
	Continue Signal = iota // offer the event to the next handler
	Stop                   // claim the event; no further handlers see it
)

// EndReason tells an EndFunc why its drag session finished.
type EndReason uint8

const (
	EndReleased  EndReason = iota // pointer up
	EndCancelled                  // pointer leave or EndDrag
)

func (r EndReason) String() string {
	if r == EndCancelled {
		return "cancelled"
	}
	return "released"
}

// EventType identifies a kind of interaction event forwarded to an EventSink.
type EventType uint8

const (
	EventDragStart EventType = iota // a handler began a drag session
	EventDrag                       // the active session received a move
	EventDragEnd                    // the active session finished
)
