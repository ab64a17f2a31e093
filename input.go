package mathsketch

import "github.com/hajimehoshi/ebiten/v2"

// PointerSample is one reading of the host's primary pointer.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	// Lost is set when the host no longer delivers pointer input to the
	// sketch, e.g. the window lost focus.
	Lost bool
}

// PointerSource reads the host's primary pointer once per tick.
type PointerSource interface {
	Sample() PointerSample
}

// --- Ebitengine source ---

// ebitenSource reports the first active touch, or the mouse with its left
// button when no touch is active.
type ebitenSource struct {
	touchIDs  []ebiten.TouchID
	touching  bool
	lastTouch Vec2
}

// NewEbitenSource returns a PointerSource backed by Ebitengine's input state.
// Positions are in the game's logical (Layout) coordinates.
func NewEbitenSource() PointerSource {
	return &ebitenSource{}
}

func (s *ebitenSource) Sample() PointerSample {
	lost := !ebiten.IsFocused()

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		s.touching = true
		s.lastTouch = Vec2{X: float64(tx), Y: float64(ty)}
		return PointerSample{X: s.lastTouch.X, Y: s.lastTouch.Y, Pressed: true, Lost: lost}
	}
	if s.touching {
		// Finger lifted: report the release where the touch was last seen.
		s.touching = false
		return PointerSample{X: s.lastTouch.X, Y: s.lastTouch.Y, Lost: lost}
	}

	mx, my := ebiten.CursorPosition()
	return PointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Lost:    lost,
	}
}

// --- Input adapter ---

// InputAdapter turns per-tick pointer samples into normalized pointer events
// and feeds them to a Dispatcher. Call Poll once per Update.
type InputAdapter struct {
	source     PointerSource
	dispatcher *Dispatcher
	bounds     Rect

	down        bool
	prevPressed bool
	hasLast     bool
	lastX       float64
	lastY       float64

	injectQueue []PointerEvent
}

// NewInputAdapter creates an adapter reading src and dispatching to d.
// Events are only started inside bounds; a zero Rect accepts any position.
func NewInputAdapter(d *Dispatcher, src PointerSource, bounds Rect) *InputAdapter {
	return &InputAdapter{source: src, dispatcher: d, bounds: bounds}
}

// SetBounds changes the interaction surface, e.g. after a resize.
func (a *InputAdapter) SetBounds(r Rect) {
	a.bounds = r
}

func (a *InputAdapter) inside(s PointerSample) bool {
	if s.Lost {
		return false
	}
	if a.bounds == (Rect{}) {
		return true
	}
	return a.bounds.Contains(s.X, s.Y)
}

// Poll reads the source once and dispatches the events for what changed
// since the previous call. A queued injected event replaces real input for
// this call.
func (a *InputAdapter) Poll() {
	if a.processInjectedInput() {
		return
	}
	if a.source == nil {
		return
	}
	s := a.source.Sample()
	a.apply(s)
}

// apply runs the pointer edge detection for one sample.
func (a *InputAdapter) apply(s PointerSample) {
	inside := a.inside(s)
	moved := !a.hasLast || s.X != a.lastX || s.Y != a.lastY

	switch {
	case a.down && !inside:
		// Losing the pointer mid-contact cancels; a new contact needs a
		// fresh press because prevPressed stays set until release.
		a.down = false
		a.emit(PointerLeave, s.X, s.Y)
	case a.down && !s.Pressed:
		a.down = false
		a.emit(PointerUp, s.X, s.Y)
	case a.down:
		if moved {
			a.emit(PointerMove, s.X, s.Y)
		}
	case s.Pressed && !a.prevPressed && inside:
		a.down = true
		a.emit(PointerDown, s.X, s.Y)
	default:
		if moved && inside {
			a.emit(PointerMove, s.X, s.Y)
		}
	}

	a.prevPressed = s.Pressed
	a.hasLast = true
	a.lastX = s.X
	a.lastY = s.Y
}

func (a *InputAdapter) emit(kind EventKind, x, y float64) {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Dispatch(PointerEvent{Kind: kind, X: x, Y: y})
}
