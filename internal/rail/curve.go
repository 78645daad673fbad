package rail

import "math"

// CarriagePose is the render-facing placement of one car: tile-space
// state plus the fully resolved world position and facing vector, so a
// renderer can place a sprite without reimplementing interpolation.
type CarriagePose struct {
	Kind     CarriageKind
	TileX    int
	TileY    int
	Progress float64
	Heading  Dir
	OnCurve  bool

	X, Y       float64 // world units, lane offset applied
	DirX, DirY float64 // unit facing vector
}

// edgeMid returns the midpoint of a tile edge in tile-local [0,1] space.
func edgeMid(side Dir) (float64, float64) {
	switch side {
	case North:
		return 0.5, 0
	case East:
		return 1, 0.5
	case South:
		return 0.5, 1
	default:
		return 0, 0.5
	}
}

// curveSides lists each curve kind's two connected sides. The bezier
// runs from the first side's midpoint to the second's, through the
// tile center as control point.
func curveSides(k TrackKind) (Dir, Dir, bool) {
	switch k {
	case TrackCurveNE:
		return North, East, true
	case TrackCurveNW:
		return North, West, true
	case TrackCurveSE:
		return South, East, true
	case TrackCurveSW:
		return South, West, true
	}
	return North, North, false
}

// laneShift is the perpendicular lane offset vector for a heading.
// Right-hand traffic, with the sign flipped for north/south headings so
// the inner/outer lane stays consistent through quarter turns.
func laneShift(d Dir) (float64, float64) {
	switch d {
	case East:
		return 0, LaneOffset
	case West:
		return 0, -LaneOffset
	case South:
		return LaneOffset, 0
	default: // North
		return -LaneOffset, 0
	}
}

// bezier2 evaluates a quadratic bezier and its derivative at u.
func bezier2(x0, y0, x1, y1, x2, y2, u float64) (px, py, dx, dy float64) {
	iu := 1 - u
	px = iu*iu*x0 + 2*u*iu*x1 + u*u*x2
	py = iu*iu*y0 + 2*u*iu*y1 + u*u*y2
	dx = 2*iu*(x1-x0) + 2*u*(x2-x1)
	dy = 2*iu*(y1-y0) + 2*u*(y2-y1)
	return
}

// carriagePose resolves one car to world space. On curve cells the
// car's stored heading is its exit direction; position and facing come
// from the per-curve bezier, and the lane offset blends smoothly from
// the entry heading's lane to the exit heading's. Straight cells use
// plain linear interpolation with the single per-heading lane offset.
func carriagePose(w RailWorld, c Carriage) CarriagePose {
	pose := CarriagePose{
		Kind:     c.Kind,
		TileX:    c.X,
		TileY:    c.Y,
		Progress: c.Progress,
		Heading:  c.Heading,
	}

	kind := ClassifyTrack(w.Connections(c.X, c.Y))
	if a, b, ok := curveSides(kind); ok {
		pose.OnCurve = true
		ax, ay := edgeMid(a)
		bx, by := edgeMid(b)

		// Exit side is the side the stored heading points at. When the
		// car runs from the b edge toward a, the bezier parameter runs
		// high to low and the tangent flips.
		u := c.Progress
		reversed := c.Heading != b
		if reversed {
			u = 1 - c.Progress
		}
		px, py, dx, dy := bezier2(ax, ay, 0.5, 0.5, bx, by, u)
		if reversed {
			dx, dy = -dx, -dy
		}

		// Entry heading points inward from the entry edge.
		entry := a.Opposite()
		if reversed {
			entry = b.Opposite()
		}
		ex, ey := laneShift(entry)
		xx, xy := laneShift(c.Heading)
		t := smoothstep(c.Progress)
		ox := lerp(ex, xx, t)
		oy := lerp(ey, xy, t)

		n := normalize(&dx, &dy)
		if n {
			pose.DirX, pose.DirY = dx, dy
		} else {
			ddx, ddy := c.Heading.Delta()
			pose.DirX, pose.DirY = float64(ddx), float64(ddy)
		}
		pose.X = float64(c.X) + px + ox
		pose.Y = float64(c.Y) + py + oy
		return pose
	}

	px, py := worldPos(c.X, c.Y, c.Heading, c.Progress)
	ox, oy := laneShift(c.Heading)
	dx, dy := c.Heading.Delta()
	pose.X = px + ox
	pose.Y = py + oy
	pose.DirX, pose.DirY = float64(dx), float64(dy)
	return pose
}

// normalize scales the vector to unit length in place; false for a
// zero vector.
func normalize(x, y *float64) bool {
	d := *x**x + *y**y
	if d <= 0 {
		return false
	}
	inv := 1 / math.Sqrt(d)
	*x *= inv
	*y *= inv
	return true
}
