package rail

// updateCarriages resolves every car's tile/progress/heading from the
// lead position and the train's movement history. Carriage 0 mirrors
// the train exactly; car k trails by k carriage spacings, walking back
// through history one cell (one progress unit) at a time when its
// target progress goes negative. A just-spawned train has less history
// than consist, so tail cars clamp to the spawn cell and emerge as the
// train accumulates cells.
func updateCarriages(t *Train) {
	for k := range t.Cars {
		c := &t.Cars[k]
		if k == 0 {
			c.X, c.Y = t.X, t.Y
			c.Progress = clampF(t.Progress, 0, 0.99)
			c.Heading = t.Heading
			continue
		}

		target := t.Progress - float64(k)*CarriageSpacing
		back := 0
		for target < 0 && back+1 < t.historyLen {
			back++
			target += 1
		}
		cell, ok := t.HistoryAt(back)
		if !ok {
			// No history at all: hold the lead cell.
			cell = Point{X: t.X, Y: t.Y}
		}
		c.X, c.Y = cell.X, cell.Y
		c.Progress = clampF(target, 0, 0.99)
		if back == 0 {
			c.Heading = t.Heading
		} else if newer, ok := t.HistoryAt(back - 1); ok {
			c.Heading = t.headingBetween(cell, newer)
		}
	}
}
