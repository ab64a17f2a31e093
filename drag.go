package mathsketch

// dragSession is the single in-flight exclusive drag. It is active exactly
// when move is non-nil.
type dragSession struct {
	move MoveFunc
	end  EndFunc
}

func (s *dragSession) active() bool {
	return s.move != nil
}

// begin stores the callbacks. It reports false, leaving the current session
// untouched, when a session is already active or move is nil.
func (s *dragSession) begin(move MoveFunc, end EndFunc) bool {
	if s.active() || move == nil {
		return false
	}
	s.move = move
	s.end = end
	return true
}

// update forwards the pointer to the active session's move callback.
func (s *dragSession) update(ctx PointerContext) bool {
	if !s.active() {
		return false
	}
	s.move(ctx)
	return true
}

// finish clears the session and returns its end callback. The caller runs
// the callback after the session is cleared, so it may begin a new drag.
func (s *dragSession) finish() (EndFunc, bool) {
	if !s.active() {
		return nil, false
	}
	end := s.end
	s.move = nil
	s.end = nil
	return end, true
}

// DragOption configures a drag session started with Dispatcher.BeginDrag.
type DragOption func(*dragConfig)

type dragConfig struct {
	end EndFunc
}

// WithDragEnd registers a callback invoked once when the session finishes,
// either by pointer up (EndReleased) or by pointer leave or EndDrag
// (EndCancelled).
func WithDragEnd(fn EndFunc) DragOption {
	return func(c *dragConfig) {
		c.end = fn
	}
}
