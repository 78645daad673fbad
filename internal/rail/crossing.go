package rail

// CrossingState is the signal state of a grade crossing.
type CrossingState int

const (
	CrossingOpen CrossingState = iota
	CrossingWarning
	CrossingClosed
)

var crossingStateNames = [3]string{"open", "warning", "closed"}

func (s CrossingState) String() string { return crossingStateNames[s] }

// CrossingOrient is the axis the rail runs through the crossing.
type CrossingOrient int

const (
	OrientNS CrossingOrient = iota
	OrientEW
	OrientCross
)

// CrossingInfo is the pull-based output driving external signal/gate
// animation and road traffic. Never persisted; recomputed on query from
// the cell's adjacency and the live train positions.
type CrossingInfo struct {
	Orient      CrossingOrient
	State       CrossingState
	NearestDist float64 // effective distance of the closest approaching train
}

// MustStop reports whether road traffic has to hold at the crossing.
func (c CrossingInfo) MustStop() bool { return c.State != CrossingOpen }

// crossingOrient derives the rail axis from the cell's connections.
func crossingOrient(conn Connection) CrossingOrient {
	ns := conn.North || conn.South
	ew := conn.East || conn.West
	switch {
	case ns && ew:
		return OrientCross
	case ew:
		return OrientEW
	default:
		return OrientNS
	}
}

// crossingInfo evaluates the signal state of the cell at (x,y). A train
// counts only while it is moving toward the crossing (positive
// projection of the displacement onto its heading); its effective
// distance is the hop distance less the fraction of the current tile
// already covered. Occupying the cell, or being within the close
// radius, shuts the gates; within the warning radius arms them.
func crossingInfo(w RailWorld, x, y int, trains []*Train) CrossingInfo {
	info := CrossingInfo{
		Orient:      crossingOrient(w.Connections(x, y)),
		State:       CrossingOpen,
		NearestDist: -1,
	}

	for _, t := range trains {
		if !t.Alive {
			continue
		}
		if t.X == x && t.Y == y {
			info.State = CrossingClosed
			info.NearestDist = 0
			return info
		}
		hops := abs(x-t.X) + abs(y-t.Y)
		if float64(hops) > CrossingWarnRadius+1 {
			continue
		}
		dx, dy := t.Heading.Delta()
		// Displacement toward the crossing must project forward.
		if (x-t.X)*dx+(y-t.Y)*dy <= 0 {
			continue
		}
		dist := float64(hops) - clampF(t.Progress, 0, 1)
		if dist < 0 {
			dist = 0
		}
		if info.NearestDist < 0 || dist < info.NearestDist {
			info.NearestDist = dist
		}
	}

	switch {
	case info.NearestDist < 0:
		// no approaching train
	case info.NearestDist <= CrossingCloseRadius:
		info.State = CrossingClosed
	case info.NearestDist <= CrossingWarnRadius:
		info.State = CrossingWarning
	}
	return info
}
