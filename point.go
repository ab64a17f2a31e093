package mathsketch

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	defaultPointWeight = 8
	defaultTextSize    = 15
	labelOffset        = 3
)

// PointOptions controls how RenderPoint draws a point.
// Zero values select the defaults. The default color is DefaultPalette's
// white; use Sketch.RenderPoint to default to a configured palette.
type PointOptions struct {
	Label    string
	Color    *Color  // nil = DefaultPalette white
	Weight   float64 // dot diameter; 0 = 8
	TextSize float64 // label size; 0 = 15
}

func (o PointOptions) color() Color {
	if o.Color != nil {
		return *o.Color
	}
	return DefaultPalette.At(White)
}

// labelFace is the bitmap face used for point labels, scaled to TextSize.
// Created on first use.
var labelFace *text.GoXFace

func pointLabelFace() *text.GoXFace {
	if labelFace == nil {
		labelFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return labelFace
}

// RenderPoint draws p as a filled dot. If a label is set it is drawn
// right-aligned with its baseline just above and to the left of the point.
func RenderPoint(dst *ebiten.Image, p Vec2, opts PointOptions) {
	c := opts.color()
	weight := opts.Weight
	if weight <= 0 {
		weight = defaultPointWeight
	}
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(weight/2), c.RGBA(), true)

	if opts.Label == "" {
		return
	}
	size := opts.TextSize
	if size <= 0 {
		size = defaultTextSize
	}
	drawLabel(dst, opts.Label, p.X-labelOffset, p.Y-labelOffset, size, c)
}

// drawLabel draws s right-aligned at x with its baseline on y.
func drawLabel(dst *ebiten.Image, s string, x, y, size float64, c Color) {
	face := pointLabelFace()
	m := face.Metrics()
	lineHeight := m.HAscent + m.HDescent
	scale := 1.0
	if lineHeight > 0 {
		scale = size / lineHeight
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-m.HAscent*scale)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(dst, s, face, op)
}

// SegmentOptions controls how RenderSegment draws a line. Sketch.RenderSegment
// takes the default color from the sketch palette instead.
type SegmentOptions struct {
	Color  *Color  // nil = DefaultPalette white
	Weight float64 // stroke width; 0 = 2
}

// RenderSegment draws the line segment from a to b.
func RenderSegment(dst *ebiten.Image, a, b Vec2, opts SegmentOptions) {
	c := DefaultPalette.At(White)
	if opts.Color != nil {
		c = *opts.Color
	}
	w := opts.Weight
	if w <= 0 {
		w = 2
	}
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(w), c.RGBA(), true)
}
