package rail

import (
	"testing"
)

// spawnWorld is a loop of track with a station on its east side.
func spawnWorld() *TileWorld {
	w := testWorld(24, 18)
	layRail(w, 3, 3, 18, 3)
	layRail(w, 3, 12, 18, 12)
	layRail(w, 3, 3, 3, 12)
	layRail(w, 18, 3, 18, 12)
	layStation(w, 19, 7) // 2x2 footprint beside the east leg
	return w
}

func TestSpawnPreconditions(t *testing.T) {
	rs := NewRailSystem(1)

	tiny := testWorld(24, 18)
	layRail(tiny, 3, 3, 3+MinRailTiles-2, 3) // one short of the minimum
	if tr := rs.TrySpawn(tiny); tr != nil {
		t.Error("spawned on a network below the rail-tile minimum")
	}

	w := spawnWorld()
	for i := 0; i < MaxTrains; i++ {
		if tr := rs.TrySpawn(w); tr == nil {
			t.Fatalf("spawn %d failed under the cap", i)
		}
	}
	if tr := rs.TrySpawn(w); tr != nil {
		t.Error("spawned past the train cap")
	}

	rs2 := NewRailSystem(2)
	rs2.LowSpec = true
	for i := 0; i < MaxTrainsLowSpec; i++ {
		if tr := rs2.TrySpawn(w); tr == nil {
			t.Fatalf("low-spec spawn %d failed under the cap", i)
		}
	}
	if tr := rs2.TrySpawn(w); tr != nil {
		t.Error("low-spec profile spawned past the reduced cap")
	}
}

func TestSpawnPlacement(t *testing.T) {
	w := spawnWorld()
	rs := NewRailSystem(42)

	for i := 0; i < MaxTrains; i++ {
		tr := rs.TrySpawn(w)
		if tr == nil {
			t.Fatalf("spawn %d failed", i)
		}
		if !w.IsRail(tr.X, tr.Y) {
			t.Errorf("train %d spawned off rail at (%d,%d)", tr.ID, tr.X, tr.Y)
		}
		switch tr.Kind {
		case TrainPassenger:
			if n := len(tr.Cars); n < PassengerCarsMin || n > PassengerCarsMax {
				t.Errorf("passenger consist of %d cars outside [%d,%d]", n, PassengerCarsMin, PassengerCarsMax)
			}
		case TrainFreight:
			if n := len(tr.Cars); n < FreightCarsMin || n > FreightCarsMax {
				t.Errorf("freight consist of %d cars outside [%d,%d]", n, FreightCarsMin, FreightCarsMax)
			}
		}
		if tr.Cars[0].Kind != CarLocomotive {
			t.Errorf("train %d: carriage 0 is %v, want the locomotive", tr.ID, tr.Cars[0].Kind)
		}
		if tr.Speed <= 0 {
			t.Errorf("train %d: speed %v", tr.ID, tr.Speed)
		}
		if tr.MaxAge < TrainMaxAgeMin || tr.MaxAge > TrainMaxAgeMax {
			t.Errorf("train %d: max age %v outside range", tr.ID, tr.MaxAge)
		}
		for k, c := range tr.Cars {
			if want := -float64(k) * CarriageSpacing; c.Progress != want {
				t.Errorf("train %d car %d progress %v, want %v", tr.ID, k, c.Progress, want)
			}
		}
	}

	// IDs are unique and monotonic.
	for i := 1; i < len(rs.Trains); i++ {
		if rs.Trains[i].ID <= rs.Trains[i-1].ID {
			t.Fatalf("ids not monotonic: %d then %d", rs.Trains[i-1].ID, rs.Trains[i].ID)
		}
	}
}

func TestSpawnAvoidsDeadEnds(t *testing.T) {
	// A line with stub ends: random (non-station) sites must prefer
	// cells with two or more connections.
	w := testWorld(24, 18)
	layRail(w, 3, 9, 20, 9)

	rs := NewRailSystem(7)
	for i := 0; i < MaxTrains; i++ {
		tr := rs.TrySpawn(w)
		if tr == nil {
			t.Fatalf("spawn %d failed", i)
		}
		if tr.X == 3 || tr.X == 20 {
			t.Errorf("train %d spawned on a stub end at (%d,%d)", tr.ID, tr.X, tr.Y)
		}
	}
}

func TestStationAdjacentSite(t *testing.T) {
	w := spawnWorld()
	site, heading, ok := stationAdjacentSite(w, Point{19, 7})
	if !ok {
		t.Fatal("expected a rail cell beside the station")
	}
	if site != (Point{18, 7}) {
		t.Errorf("site %v, want the east-leg cell (18,7)", site)
	}
	if heading != West {
		t.Errorf("heading %v, want west (the side that was hit)", heading)
	}
}
