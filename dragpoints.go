package mathsketch

// DefaultHitRadius is the grab distance used by DragPoints when
// DragPointsOptions.Radius is zero.
const DefaultHitRadius = 15.0

// HitCircle is a circular hit area.
type HitCircle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	return Vec2{X: x, Y: y}.Sub(c.Center).Norm() <= c.Radius
}

// DragPointsOptions configures DragPoints.
type DragPointsOptions struct {
	Radius   float64 // grab distance; 0 = DefaultHitRadius
	Priority int

	// OnMove is called after points[i] moved to the pointer.
	OnMove func(i int, p Vec2)
	// OnRelease is called when the drag of points[i] finishes.
	OnRelease func(i int, p Vec2, reason EndReason)
}

// DragPoints makes every point in points draggable. A pointer-down within
// Radius of a point grabs the nearest one; while dragging, that point follows
// the pointer. Points are read through their pointers on every event, so the
// caller may move them between drags.
func DragPoints(d *Dispatcher, points []*Vec2, opts DragPointsOptions) HandlerHandle {
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	return d.Register(func(ctx PointerContext) Signal {
		i := nearestWithin(points, ctx.X, ctx.Y, radius)
		if i < 0 {
			return Continue
		}
		p := points[i]
		var dragOpts []DragOption
		if opts.OnRelease != nil {
			dragOpts = append(dragOpts, WithDragEnd(func(_ PointerContext, reason EndReason) {
				opts.OnRelease(i, *p, reason)
			}))
		}
		d.BeginDrag(func(move PointerContext) {
			*p = move.Pos()
			if opts.OnMove != nil {
				opts.OnMove(i, *p)
			}
		}, dragOpts...)
		return Stop
	}, opts.Priority)
}

// nearestWithin returns the index of the point closest to (x, y) within
// radius, or -1. Ties go to the lower index.
func nearestWithin(points []*Vec2, x, y, radius float64) int {
	best := -1
	bestDist := 0.0
	for i, p := range points {
		if p == nil {
			continue
		}
		hit := HitCircle{Center: *p, Radius: radius}
		if !hit.Contains(x, y) {
			continue
		}
		dist := Vec2{X: x, Y: y}.Sub(*p).Norm()
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
