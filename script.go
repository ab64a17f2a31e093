package mathsketch

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one line of a scripted demo. Coordinates are in canvas
// units; Frames counts Update calls.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"down": true, "move": true, "up": true, "leave": true,
	"click": true, "drag": true, "wait": true, "screenshot": true,
}

// ScriptRunner replays a recorded construction on a sketch: it feeds
// pointer gestures through the InputAdapter and captures the canvas at
// chosen moments. A step starts only after the previous step's gestures
// have been consumed.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script. Unknown actions are rejected up front.
//
//
//	{"steps": [
//		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 50, "toY": 50, "frames": 4},
//		{"action": "screenshot", "label": "moved"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript replaces the sketch's script. Each tick runs one script step
// before the pointer is polled; nil detaches it.
func (s *Sketch) SetScript(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether the last step has run and its gestures are consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) step(s *Sketch) {
	if r.done {
		return
	}
	// The previous gesture is still being replayed.
	if s.Input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	in := s.Input
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "down":
		in.InjectDown(st.X, st.Y)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "up":
		in.InjectUp(st.X, st.Y)
	case "leave":
		in.InjectLeave(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
