package rail

// Dir is one of the four compass headings.
type Dir int

const (
	North Dir = iota
	East
	South
	West
)

var dirNames = [4]string{"north", "east", "south", "west"}

func (d Dir) String() string { return dirNames[d&3] }

// Delta returns the tile step for the heading.
func (d Dir) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reverse heading.
func (d Dir) Opposite() Dir { return (d + 2) & 3 }

// Clockwise returns the next heading turning right.
func (d Dir) Clockwise() Dir { return (d + 1) & 3 }

// Connection records which of a cell's four sides connect to rail.
// It is recomputed from neighbor queries on demand, never stored.
type Connection struct {
	North, East, South, West bool
}

func (c Connection) Has(d Dir) bool {
	switch d {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	default:
		return c.West
	}
}

// Count returns the number of connected sides.
func (c Connection) Count() int {
	n := 0
	if c.North {
		n++
	}
	if c.East {
		n++
	}
	if c.South {
		n++
	}
	if c.West {
		n++
	}
	return n
}

// TrackKind is the shape of the track on a cell, derived purely from
// its connection record.
type TrackKind int

const (
	TrackSingle TrackKind = iota // no connections
	TrackStraightNS
	TrackStraightEW
	TrackCurveNE // connects the north and east sides
	TrackCurveNW
	TrackCurveSE
	TrackCurveSW
	TrackTeeN // T-junction missing its north side
	TrackTeeE
	TrackTeeS
	TrackTeeW
	TrackCross
	TrackTerminusN // stub facing north (single live connection to the south)
	TrackTerminusE
	TrackTerminusS
	TrackTerminusW
)

var trackNames = map[TrackKind]string{
	TrackSingle:     "single",
	TrackStraightNS: "straight_ns",
	TrackStraightEW: "straight_ew",
	TrackCurveNE:    "curve_ne",
	TrackCurveNW:    "curve_nw",
	TrackCurveSE:    "curve_se",
	TrackCurveSW:    "curve_sw",
	TrackTeeN:       "junction_t_n",
	TrackTeeE:       "junction_t_e",
	TrackTeeS:       "junction_t_s",
	TrackTeeW:       "junction_t_w",
	TrackCross:      "junction_cross",
	TrackTerminusN:  "terminus_n",
	TrackTerminusE:  "terminus_e",
	TrackTerminusS:  "terminus_s",
	TrackTerminusW:  "terminus_w",
}

func (k TrackKind) String() string { return trackNames[k] }

// IsCurve reports whether the cell bends the track a quarter turn.
func (k TrackKind) IsCurve() bool {
	return k >= TrackCurveNE && k <= TrackCurveSW
}

// IsJunction reports whether the cell offers a routing choice.
func (k TrackKind) IsJunction() bool {
	return k >= TrackTeeN && k <= TrackCross
}

// ClassifyTrack maps a connection record to its track shape. Total and
// deterministic: every one of the 16 combinations has exactly one shape.
func ClassifyTrack(c Connection) TrackKind {
	switch c.Count() {
	case 4:
		return TrackCross
	case 3:
		// Named by the missing side.
		switch {
		case !c.North:
			return TrackTeeN
		case !c.East:
			return TrackTeeE
		case !c.South:
			return TrackTeeS
		default:
			return TrackTeeW
		}
	case 2:
		if c.North && c.South {
			return TrackStraightNS
		}
		if c.East && c.West {
			return TrackStraightEW
		}
		switch {
		case c.North && c.East:
			return TrackCurveNE
		case c.North && c.West:
			return TrackCurveNW
		case c.South && c.East:
			return TrackCurveSE
		default:
			return TrackCurveSW
		}
	case 1:
		// Stub faces away from its single live connection.
		switch {
		case c.South:
			return TrackTerminusN
		case c.West:
			return TrackTerminusE
		case c.North:
			return TrackTerminusS
		default:
			return TrackTerminusW
		}
	default:
		return TrackSingle
	}
}

// TrackConnections is the inverse of ClassifyTrack: the adjacency shape
// each kind stands for.
func TrackConnections(k TrackKind) Connection {
	switch k {
	case TrackStraightNS:
		return Connection{North: true, South: true}
	case TrackStraightEW:
		return Connection{East: true, West: true}
	case TrackCurveNE:
		return Connection{North: true, East: true}
	case TrackCurveNW:
		return Connection{North: true, West: true}
	case TrackCurveSE:
		return Connection{South: true, East: true}
	case TrackCurveSW:
		return Connection{South: true, West: true}
	case TrackTeeN:
		return Connection{East: true, South: true, West: true}
	case TrackTeeE:
		return Connection{North: true, South: true, West: true}
	case TrackTeeS:
		return Connection{North: true, East: true, West: true}
	case TrackTeeW:
		return Connection{North: true, East: true, South: true}
	case TrackCross:
		return Connection{North: true, East: true, South: true, West: true}
	case TrackTerminusN:
		return Connection{South: true}
	case TrackTerminusE:
		return Connection{West: true}
	case TrackTerminusS:
		return Connection{North: true}
	case TrackTerminusW:
		return Connection{East: true}
	default:
		return Connection{}
	}
}
