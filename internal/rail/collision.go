package rail

// worldPos returns the continuous position of a train's lead point: the
// entry edge of its tile plus progress along its heading, centered on
// the track axis.
func worldPos(x, y int, heading Dir, progress float64) (float64, float64) {
	switch heading {
	case East:
		return float64(x) + progress, float64(y) + 0.5
	case West:
		return float64(x) + 1 - progress, float64(y) + 0.5
	case South:
		return float64(x) + 0.5, float64(y) + progress
	default: // North
		return float64(x) + 0.5, float64(y) + 1 - progress
	}
}

// axisPos projects a continuous position onto a heading: larger values
// are further along the direction of travel.
func axisPos(px, py float64, heading Dir) float64 {
	dx, dy := heading.Delta()
	return px*float64(dx) + py*float64(dy)
}

// perpPos is the coordinate perpendicular to a heading, used to tell
// parallel lanes apart.
func perpPos(px, py float64, heading Dir) float64 {
	dx, dy := heading.Delta()
	return px*float64(-dy) + py*float64(dx)
}

// rearAxis returns the projected position of a train's rear, one
// carriage spacing behind its last car anchor.
func rearAxis(t *Train) float64 {
	px, py := worldPos(t.X, t.Y, t.Heading, t.Progress)
	return axisPos(px, py, t.Heading) - float64(len(t.Cars)-1)*CarriageSpacing
}

// followMultiplier is the car-following governor: the speed factor for
// train t given every other active train. Only same-heading trains
// interact (opposite headings run on the visually separate parallel
// track); the result is the minimum over all leaders found, linearly
// easing from 1.0 at the safe following distance down to a strictly
// positive floor at zero gap, so queues compress but never deadlock.
func followMultiplier(t *Train, others []*Train) float64 {
	mult := 1.0
	px, py := worldPos(t.X, t.Y, t.Heading, t.Progress)
	front := axisPos(px, py, t.Heading)
	lane := perpPos(px, py, t.Heading)

	for _, o := range others {
		if o == t || !o.Alive || o.Heading != t.Heading {
			continue
		}
		if abs(o.X-t.X)+abs(o.Y-t.Y) > FollowMaxManhattan {
			continue
		}
		opx, opy := worldPos(o.X, o.Y, o.Heading, o.Progress)
		if d := perpPos(opx, opy, o.Heading) - lane; d > FollowLaneTolerance || d < -FollowLaneTolerance {
			continue
		}
		if axisPos(opx, opy, o.Heading) <= front {
			continue // o is behind t, not a leader
		}
		gap := rearAxis(o) - front
		if gap < 0 {
			gap = 0 // consists overlap; hold the floor until it clears
		}
		m := 1.0
		if gap < FollowSafeDistance {
			m = FollowFloor + (1-FollowFloor)*(gap/FollowSafeDistance)
		}
		if m < mult {
			mult = m
		}
	}
	return mult
}
