package rail

// scanRail collects every rail cell, the subset with two or more
// connections, and every station footprint cell.
func scanRail(w RailWorld) (railPts, throughPts, stationPts []Point) {
	ww, wh := w.Size()
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			if w.IsRail(x, y) {
				p := Point{X: x, Y: y}
				railPts = append(railPts, p)
				if w.Connections(x, y).Count() >= 2 {
					throughPts = append(throughPts, p)
				}
			}
			if w.IsRailStation(x, y) {
				stationPts = append(stationPts, Point{X: x, Y: y})
			}
		}
	}
	return
}

// stationAdjacentSite looks for a rail cell next to the station cell:
// the four cardinal neighbors first, then the diagonal ring so the
// whole 2x2 footprint is covered. The initial heading points from the
// station onto the side that was hit.
func stationAdjacentSite(w RailWorld, st Point) (Point, Dir, bool) {
	for d := North; d <= West; d++ {
		dx, dy := d.Delta()
		nx, ny := st.X+dx, st.Y+dy
		if w.IsRail(nx, ny) {
			return Point{X: nx, Y: ny}, d, true
		}
	}
	ext := [8][3]int{
		{1, -1, int(East)}, {2, 0, int(East)}, {2, 1, int(East)},
		{1, 2, int(South)}, {0, 2, int(South)},
		{-1, 1, int(West)}, {-1, -1, int(West)},
		{0, -2, int(North)},
	}
	for _, e := range ext {
		nx, ny := st.X+e[0], st.Y+e[1]
		if w.IsRail(nx, ny) {
			return Point{X: nx, Y: ny}, Dir(e[2]), true
		}
	}
	return Point{}, North, false
}

// legalEgress picks a random heading out of a cell among its live
// connections; with no connections any heading will bounce, so the
// random one stands.
func legalEgress(w RailWorld, p Point, r *Rand) Dir {
	conn := w.Connections(p.X, p.Y)
	opts := make([]Dir, 0, 4)
	for d := North; d <= West; d++ {
		if conn.Has(d) {
			opts = append(opts, d)
		}
	}
	if len(opts) == 0 {
		return Dir(r.Intn(4))
	}
	return opts[r.Intn(len(opts))]
}

// TrySpawn creates one train when the network and capacity allow it,
// or returns nil ("no train created" is routine, not an error). 70% of
// spawns prefer a station-adjacent site; the rest pick a through cell
// (two or more connections) to avoid starting inside a dead end.
func (rs *RailSystem) TrySpawn(w RailWorld) *Train {
	railPts, throughPts, stationPts := scanRail(w)
	if len(railPts) < MinRailTiles {
		return nil
	}
	limit := MaxTrains
	if rs.LowSpec {
		limit = MaxTrainsLowSpec
	}
	if rs.AliveCount() >= limit {
		return nil
	}

	r := rs.rng
	var site Point
	var heading Dir
	found := false
	if len(stationPts) > 0 && r.Float64() < StationSpawnBias {
		st := stationPts[r.Intn(len(stationPts))]
		site, heading, found = stationAdjacentSite(w, st)
	}
	if !found {
		pool := throughPts
		if len(pool) == 0 {
			pool = railPts
		}
		site = pool[r.Intn(len(pool))]
		heading = legalEgress(w, site, r)
	}

	kind := TrainPassenger
	speed := PassengerSpeed
	n := r.Range(PassengerCarsMin, PassengerCarsMax)
	if r.Intn(2) == 1 {
		kind = TrainFreight
		speed = FreightSpeed
		n = r.Range(FreightCarsMin, FreightCarsMax)
	}

	rs.nextID++
	t := &Train{
		ID:      rs.nextID,
		Kind:    kind,
		Cars:    buildConsist(kind, n, r),
		X:       site.X,
		Y:       site.Y,
		Heading: heading,
		Speed:   speed * (1 + r.RangeF(-SpeedJitter, SpeedJitter)),
		MaxAge:  r.RangeF(TrainMaxAgeMin, TrainMaxAgeMax),
		Alive:   true,
	}
	t.pushHistory(Point{X: t.X, Y: t.Y})
	// Cars start stacked behind the spawn instant and emerge as the
	// train lays down history.
	for i := range t.Cars {
		t.Cars[i].X, t.Cars[i].Y = t.X, t.Y
		t.Cars[i].Heading = heading
		t.Cars[i].Progress = -float64(i) * CarriageSpacing
	}
	rs.Trains = append(rs.Trains, t)
	return t
}
