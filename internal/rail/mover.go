package rail

// transitHeading picks the heading a train leaves a cell with, given
// the heading it arrived on. Reversing onto the incoming direction is
// never chosen unless it is the only legal option (terminus). On a
// straight the train continues; on a curve it takes the forced turn;
// at junctions it prefers straight-through, breaking remaining ties by
// scanning clockwise from the incoming heading (right-hand traffic).
// ok=false when the cell has no connections at all.
func transitHeading(w RailWorld, x, y int, incoming Dir) (Dir, bool) {
	conn := w.Connections(x, y)
	if conn.Count() == 0 {
		return incoming, false
	}
	reverse := incoming.Opposite()

	if conn.Has(incoming) {
		return incoming, true
	}
	d := incoming.Clockwise()
	for i := 0; i < 3; i++ {
		if d != reverse && conn.Has(d) {
			return d, true
		}
		d = d.Clockwise()
	}
	if conn.Has(reverse) {
		return reverse, true
	}
	return incoming, false
}

// advanceTrain moves one train's lead position by step progress units,
// committing tile transitions as progress crosses 1. Station dwell and
// the dead-end bounce happen here; expiry is the caller's job.
func advanceTrain(w RailWorld, t *Train, step float64) {
	if t.AtStation {
		return
	}
	t.Progress += step

	// A fast train on a slow tick may cross several cells.
	for guard := 0; t.Progress >= 1 && guard < 8; guard++ {
		dx, dy := t.Heading.Delta()
		nx, ny := t.X+dx, t.Y+dy

		if !railCellAt(w, nx, ny) {
			// Try to turn out of the current cell instead. A plain
			// reversal is not a turn; that case is the bounce below.
			if alt, ok := transitHeading(w, t.X, t.Y, t.Heading); ok &&
				alt != t.Heading && alt != t.Heading.Opposite() {
				t.Heading = alt
				continue
			}
			// Dead end: reverse in place, mid-tile.
			t.Heading = t.Heading.Opposite()
			t.Progress = 0.5
			return
		}

		t.X, t.Y = nx, ny
		t.Progress -= 1
		t.pushHistory(Point{X: t.X, Y: t.Y})

		if t.Kind == TrainPassenger && w.IsRailStation(t.X, t.Y) {
			t.AtStation = true
			t.DwellTimer = StationDwell
			return
		}
		if next, ok := transitHeading(w, t.X, t.Y, t.Heading); ok {
			t.Heading = next
		}
	}
}

// tickDwell counts a station stop down and releases the train when the
// timer runs out. The train does not move during the same tick.
func tickDwell(t *Train, dt float64) {
	if !t.AtStation {
		return
	}
	t.DwellTimer -= dt
	if t.DwellTimer <= 0 {
		t.DwellTimer = 0
		t.AtStation = false
	}
}

// expired reports whether a train should be destroyed: past its
// lifetime, or the track under it was removed.
func expired(w RailWorld, t *Train) bool {
	if t.Age > t.MaxAge {
		return true
	}
	return !railCellAt(w, t.X, t.Y)
}
