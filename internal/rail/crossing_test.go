package rail

import (
	"testing"
)

// crossingWorld lays an east-west road with a north-south rail line
// cutting through it at (8,6) as a level crossing.
func crossingWorld() *TileWorld {
	w := testWorld(20, 14)
	for x := 2; x <= 17; x++ {
		w.SetKind(x, 6, BuildingRoad)
	}
	layRail(w, 8, 1, 8, 12)
	w.Set(8, 6, Cell{Kind: BuildingRoad, RailOverlay: true})
	return w
}

func TestCrossingOrientation(t *testing.T) {
	w := crossingWorld()
	info := crossingInfo(w, 8, 6, nil)
	if info.Orient != OrientNS {
		t.Errorf("orientation %v, want ns for a north-south line", info.Orient)
	}
	if info.State != CrossingOpen || info.MustStop() {
		t.Errorf("empty network: state %v, want open", info.State)
	}
	if info.NearestDist >= 0 {
		t.Errorf("nearest distance %v, want negative sentinel with no trains", info.NearestDist)
	}
}

func TestCrossingOccupiedIsClosed(t *testing.T) {
	w := crossingWorld()
	tr := newTestTrain(1, 8, 6, South, 1.0, 1)
	info := crossingInfo(w, 8, 6, []*Train{tr})
	if info.State != CrossingClosed {
		t.Errorf("state %v, want closed while a train occupies the cell", info.State)
	}
	if info.NearestDist != 0 {
		t.Errorf("nearest distance %v, want 0", info.NearestDist)
	}
}

func TestCrossingApproachStates(t *testing.T) {
	w := crossingWorld()
	cases := []struct {
		name string
		y    int
		head Dir
		want CrossingState
	}{
		{"just outside warning radius", 1, South, CrossingOpen}, // 5 hops
		{"inside warning radius", 3, South, CrossingWarning},
		{"one cell out", 5, South, CrossingClosed},
		{"moving away", 5, North, CrossingOpen},
		{"beyond radius", 0, South, CrossingOpen},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := newTestTrain(1, 8, c.y, c.head, 1.0, 1)
			info := crossingInfo(w, 8, 6, []*Train{tr})
			if info.State != c.want {
				t.Errorf("train at y=%d heading %v: state %v, want %v", c.y, c.head, info.State, c.want)
			}
		})
	}
}

func TestCrossingDistanceMonotonic(t *testing.T) {
	// Walking a train toward the crossing never increases the derived
	// severity: open -> warning -> closed.
	w := crossingWorld()
	rank := func(s CrossingState) int { return int(s) }

	prev := -1
	for y := 0; y <= 6; y++ {
		tr := newTestTrain(1, 8, y, South, 1.0, 1)
		info := crossingInfo(w, 8, 6, []*Train{tr})
		if r := rank(info.State); r < prev {
			t.Fatalf("state regressed to %v as the train closed in (y=%d)", info.State, y)
		} else {
			prev = r
		}
	}
}

func TestCrossingFractionalProgress(t *testing.T) {
	// Progress across the current tile counts toward the crossing.
	w := crossingWorld()
	tr := newTestTrain(1, 8, 4, South, 1.0, 1)
	tr.Progress = 0.8
	info := crossingInfo(w, 8, 6, []*Train{tr})
	if info.NearestDist != 2-0.8 {
		t.Errorf("effective distance %v, want %v", info.NearestDist, 2-0.8)
	}
}

func TestCrossingOrientEW(t *testing.T) {
	w := testWorld(20, 14)
	layRail(w, 2, 6, 17, 6)
	for y := 1; y <= 12; y++ {
		w.SetKind(8, y, BuildingRoad)
	}
	w.Set(8, 6, Cell{Kind: BuildingRoad, RailOverlay: true})

	info := crossingInfo(w, 8, 6, nil)
	if info.Orient != OrientEW {
		t.Errorf("orientation %v, want ew", info.Orient)
	}
}
