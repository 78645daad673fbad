package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"railsim/internal/rail"
)

func TestGenerateTownIsDeterministic(t *testing.T) {
	a := GenerateTown(42)
	b := GenerateTown(42)
	if diff := cmp.Diff(a.Cells, b.Cells); diff != "" {
		t.Errorf("same seed produced different worlds (-a +b):\n%s", diff)
	}
}

func TestGenerateTownRailNetwork(t *testing.T) {
	w := GenerateTown(7)
	ww, wh := w.Size()

	railTiles := 0
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			if !w.IsRail(x, y) {
				continue
			}
			railTiles++
			if rail.ClassifyTrack(w.Connections(x, y)) == rail.TrackSingle {
				t.Errorf("isolated rail tile at (%d,%d)", x, y)
			}
		}
	}
	if railTiles < rail.MinRailTiles {
		t.Fatalf("only %d rail tiles, need at least %d", railTiles, rail.MinRailTiles)
	}

	// The branch terminus must be reachable from the loop.
	if _, ok := rail.FindPath(w, rail.Point{X: 6, Y: 6}, rail.Point{X: 58, Y: 20}); !ok {
		t.Error("branch terminus not reachable from the main loop")
	}
}

func TestGenerateTownCrossings(t *testing.T) {
	w := GenerateTown(123)
	pts := Crossings(w)

	// The fixed road grid meets the fixed track plan 11 times: the loop
	// top and bottom each cross two vertical roads, each loop side
	// crosses three horizontal roads, and the branch crosses one
	// vertical road.
	if len(pts) != 11 {
		t.Fatalf("got %d crossings, want 11", len(pts))
	}
	for _, p := range pts {
		if !w.IsRoad(p.X, p.Y) || !w.IsRail(p.X, p.Y) {
			t.Errorf("crossing at (%d,%d) is not both road and rail", p.X, p.Y)
		}
	}
}

func TestGenerateTownBridges(t *testing.T) {
	w := GenerateTown(9)
	ww, _ := w.Size()

	railBridges := 0
	roadBridges := 0
	for x := 0; x < ww; x++ {
		if c := w.At(x, 20); c.Kind == rail.BuildingBridge && c.Deck == rail.DeckRail {
			railBridges++
		}
		if c := w.At(x, 10); c.Kind == rail.BuildingBridge && c.Deck == rail.DeckRoad {
			roadBridges++
		}
	}
	if railBridges != 2 {
		t.Errorf("branch line crosses the river on %d bridge cells, want 2", railBridges)
	}
	if roadBridges != 2 {
		t.Errorf("road at y=10 crosses the river on %d bridge cells, want 2", roadBridges)
	}
}

func TestGenerateTownStations(t *testing.T) {
	w := GenerateTown(3)
	origins := stationOrigins(w)
	if len(origins) != 3 {
		t.Fatalf("got %d stations, want 3", len(origins))
	}
	for _, o := range origins {
		// All four footprint cells answer the station predicate.
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				if !w.IsRailStation(o.X+dx, o.Y+dy) {
					t.Errorf("station at (%d,%d): footprint cell (+%d,+%d) not recognized", o.X, o.Y, dx, dy)
				}
			}
		}
	}
}

func TestGenerateTownSpawnsTrains(t *testing.T) {
	w := GenerateTown(11)
	rs := rail.NewRailSystem(11)

	spawned := 0
	for i := 0; i < rail.MaxTrains; i++ {
		if tr := rs.TrySpawn(w); tr != nil {
			spawned++
			if !w.IsRail(tr.X, tr.Y) && !w.IsRailStation(tr.X, tr.Y) {
				t.Errorf("train %d spawned off-track at (%d,%d)", tr.ID, tr.X, tr.Y)
			}
		}
	}
	if spawned == 0 {
		t.Fatal("no trains spawned on the generated town")
	}

	// A few hundred ticks must run without trains falling off the map.
	for i := 0; i < 600; i++ {
		rs.Update(1.0/30, w, 1.0)
		rs.RemoveDead()
	}
	for _, tr := range rs.Trains {
		if !w.IsRail(tr.X, tr.Y) && !w.IsRailStation(tr.X, tr.Y) {
			t.Errorf("train %d left the track at (%d,%d)", tr.ID, tr.X, tr.Y)
		}
	}
}

func TestScatterHousesNextToRoads(t *testing.T) {
	w := GenerateTown(21)
	ww, wh := w.Size()
	houses := 0
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			if w.At(x, y).Kind != rail.BuildingHouse {
				continue
			}
			houses++
			nearRoad := w.IsRoad(x-1, y) || w.IsRoad(x+1, y) ||
				w.IsRoad(x, y-1) || w.IsRoad(x, y+1)
			if !nearRoad {
				t.Errorf("house at (%d,%d) has no adjacent road", x, y)
			}
		}
	}
	if houses == 0 {
		t.Error("town has no houses")
	}
}
