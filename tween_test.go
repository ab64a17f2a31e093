package mathsketch

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPoint(t *testing.T) {
	p := &Vec2{X: 0, Y: 100}
	g := TweenPoint(p, Vec2{X: 100, Y: 0}, 1.0, ease.Linear)

	g.Update(0.5)
	if math.Abs(p.X-50) > 0.01 || math.Abs(p.Y-50) > 0.01 {
		t.Errorf("midway = %v, want (50, 50)", *p)
	}
	if g.Done {
		t.Error("should not be done halfway")
	}

	g.Update(0.6)
	if !g.Done {
		t.Error("should be done after exceeding duration")
	}
	if p.X != 100 || p.Y != 0 {
		t.Errorf("final = %v, want (100, 0)", *p)
	}

	// Further updates are ignored.
	p.X = 7
	g.Update(1)
	if p.X != 7 {
		t.Error("finished group should not write")
	}
}

func TestTweenColor(t *testing.T) {
	c := &Color{R: 0, G: 0, B: 0, A: 1}
	to := Color{R: 1, G: 0.5, B: 0.25, A: 0}
	g := TweenColor(c, to, 0.2, ease.Linear)

	g.Update(0.3)
	if !g.Done {
		t.Fatal("should be done")
	}
	if *c != to {
		t.Errorf("color = %+v, want %+v", *c, to)
	}
}
