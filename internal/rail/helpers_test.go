package rail

// Shared builders for the simulation tests.

func testWorld(w, h int) *TileWorld {
	return NewTileWorld(w, h)
}

// layRail marks a straight run of rail cells (inclusive). Horizontal or
// vertical only.
func layRail(w *TileWorld, x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w.SetKind(x, y, BuildingRail)
		}
	}
}

// layStation places a 2x2 station with its origin at (x,y).
func layStation(w *TileWorld, x, y int) {
	w.SetKind(x, y, BuildingStation)
}

func newTestTrain(id int, x, y int, heading Dir, speed float64, cars int) *Train {
	t := &Train{
		ID:      id,
		Kind:    TrainFreight,
		Cars:    buildConsist(TrainFreight, cars, NewRand(uint64(id)*0x9E37+1)),
		X:       x,
		Y:       y,
		Heading: heading,
		Speed:   speed,
		MaxAge:  1e9,
		Alive:   true,
	}
	t.pushHistory(Point{X: x, Y: y})
	for i := range t.Cars {
		t.Cars[i].X, t.Cars[i].Y = x, y
		t.Cars[i].Heading = heading
		t.Cars[i].Progress = -float64(i) * CarriageSpacing
	}
	return t
}

// tick runs the system for n fixed steps of dt at full global speed.
func tick(rs *RailSystem, w RailWorld, n int, dt float64) {
	for i := 0; i < n; i++ {
		rs.Update(dt, w, 1.0)
	}
}
