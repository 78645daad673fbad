package rail

// TrainKind separates the two consist families.
type TrainKind int

const (
	TrainPassenger TrainKind = iota
	TrainFreight
)

// CarriageKind identifies the sprite/body class of one car.
type CarriageKind int

const (
	CarLocomotive CarriageKind = iota
	CarPassenger
	CarFreightBox
	CarFreightTank
	CarFreightFlat
	CarCaboose
)

// Carriage is one car of a train. Carriage 0 is always the locomotive
// and mirrors the train's own tile/progress/heading each tick; trailing
// carriages are resolved against the train's movement history.
type Carriage struct {
	Kind     CarriageKind
	X, Y     int
	Progress float64
	Heading  Dir
}

// Train is the aggregate the simulation owns and mutates, exactly once
// per tick, in the order move -> collision -> carriages.
type Train struct {
	ID       int
	Kind     TrainKind
	Cars     []Carriage
	X, Y     int // lead tile
	Heading  Dir
	Progress float64 // fraction of the current tile, transiently >= 1 mid-tick
	Speed    float64 // tiles per second
	Age      float64
	MaxAge   float64
	Alive    bool

	// Station dwell.
	AtStation  bool
	DwellTimer float64

	// Bounded ring of visited cells, newest at historyHead. Owned by the
	// train itself so destruction cannot leave aliased state behind.
	history     [HistoryCapacity]Point
	historyHead int // index of the newest entry
	historyLen  int
}

// pushHistory appends the train's new lead cell, evicting the oldest
// entry once the ring is full.
func (t *Train) pushHistory(p Point) {
	if t.historyLen == 0 {
		t.historyHead = 0
		t.history[0] = p
		t.historyLen = 1
		return
	}
	t.historyHead = (t.historyHead + 1) % HistoryCapacity
	t.history[t.historyHead] = p
	if t.historyLen < HistoryCapacity {
		t.historyLen++
	}
}

// HistoryLen returns the number of recorded cells.
func (t *Train) HistoryLen() int { return t.historyLen }

// HistoryAt returns the cell visited `back` steps ago; back=0 is the
// current lead cell. ok=false past the end of the recorded ring.
func (t *Train) HistoryAt(back int) (Point, bool) {
	if back < 0 || back >= t.historyLen {
		return Point{}, false
	}
	i := (t.historyHead - back + HistoryCapacity) % HistoryCapacity
	return t.history[i], true
}

// headingBetween infers the travel heading from one cell to an adjacent
// one. Falls back to the train's own heading for non-adjacent pairs
// (a teleport would be a bug elsewhere, not here).
func (t *Train) headingBetween(from, to Point) Dir {
	switch {
	case to.X > from.X:
		return East
	case to.X < from.X:
		return West
	case to.Y > from.Y:
		return South
	case to.Y < from.Y:
		return North
	default:
		return t.Heading
	}
}

// buildConsist returns the car list for a kind: locomotive first, then
// the body cars, with freight trains trailing a caboose.
func buildConsist(kind TrainKind, n int, r *Rand) []Carriage {
	if n < 1 {
		n = 1
	}
	cars := make([]Carriage, 0, n)
	cars = append(cars, Carriage{Kind: CarLocomotive})
	for i := 1; i < n; i++ {
		ck := CarPassenger
		if kind == TrainFreight {
			if i == n-1 {
				ck = CarCaboose
			} else {
				switch r.Intn(3) {
				case 0:
					ck = CarFreightBox
				case 1:
					ck = CarFreightTank
				default:
					ck = CarFreightFlat
				}
			}
		}
		cars = append(cars, Carriage{Kind: ck})
	}
	return cars
}
