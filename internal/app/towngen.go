package app

import (
	"railsim/internal/rail"
)

// GenerateTown builds the demo map: a river, a small road grid with
// houses, a main rail loop with a branch line over the river, three
// stations and level crossings wherever track meets a road.
func GenerateTown(seed uint64) *rail.TileWorld {
	rng := rail.NewRand(seed | 1)
	w := rail.NewTileWorld(0, 0)
	ww, wh := w.Size()

	// River: two columns on the east side, clear of the main loop.
	riverX := 44 + rng.Intn(3)
	for y := 0; y < wh; y++ {
		w.SetKind(riverX, y, rail.BuildingWater)
		w.SetKind(riverX+1, y, rail.BuildingWater)
	}

	roadsY := [3]int{10, 24, 38}
	roadsX := [3]int{16, 32, 52}
	for _, y := range roadsY {
		for x := 0; x < ww; x++ {
			layRoad(w, x, y)
		}
	}
	for _, x := range roadsX {
		for y := 0; y < wh; y++ {
			layRoad(w, x, y)
		}
	}

	// Main loop.
	for x := 6; x <= 38; x++ {
		layTrack(w, x, 6)
		layTrack(w, x, 42)
	}
	for y := 7; y < 42; y++ {
		layTrack(w, 6, y)
		layTrack(w, 38, y)
	}

	// Branch line east over the river to a terminus.
	for x := 39; x <= 58; x++ {
		layTrack(w, x, 20)
	}

	// Stations: 2x2 footprints beside the loop and the branch end.
	placeStation(w, 12, 4)
	placeStation(w, 4, 22)
	placeStation(w, 56, 18)

	scatterHouses(w, rng, 140)

	return w
}

// layRoad paints one road cell, bridging water.
func layRoad(w *rail.TileWorld, x, y int) {
	switch w.At(x, y).Kind {
	case rail.BuildingWater:
		w.Set(x, y, rail.Cell{Kind: rail.BuildingBridge, Deck: rail.DeckRoad})
	case rail.BuildingNone:
		w.SetKind(x, y, rail.BuildingRoad)
	}
}

// layTrack paints one track cell: plain rail on open ground, an overlay
// on roads (a level crossing) and a rail bridge over water.
func layTrack(w *rail.TileWorld, x, y int) {
	c := w.At(x, y)
	switch c.Kind {
	case rail.BuildingNone:
		w.SetKind(x, y, rail.BuildingRail)
	case rail.BuildingRoad:
		c.RailOverlay = true
		w.Set(x, y, c)
	case rail.BuildingWater:
		w.Set(x, y, rail.Cell{Kind: rail.BuildingBridge, Deck: rail.DeckRail})
	}
}

// placeStation marks the 2x2 footprint origin. Only the origin carries
// the building kind; the other three cells derive from it.
func placeStation(w *rail.TileWorld, x, y int) {
	if w.At(x, y).Kind != rail.BuildingNone {
		return
	}
	w.SetKind(x, y, rail.BuildingStation)
}

// scatterHouses drops houses on open ground next to roads.
func scatterHouses(w *rail.TileWorld, rng *rail.Rand, n int) {
	ww, wh := w.Size()
	for i := 0; i < n; i++ {
		x := rng.Intn(ww)
		y := rng.Intn(wh)
		if w.At(x, y).Kind != rail.BuildingNone {
			continue
		}
		if w.IsRailStation(x, y) || w.IsRail(x, y) {
			continue
		}
		nearRoad := w.IsRoad(x-1, y) || w.IsRoad(x+1, y) ||
			w.IsRoad(x, y-1) || w.IsRoad(x, y+1)
		if !nearRoad {
			continue
		}
		w.SetKind(x, y, rail.BuildingHouse)
	}
}

// Crossings lists every road cell that carries track.
func Crossings(w *rail.TileWorld) []rail.Point {
	ww, wh := w.Size()
	var pts []rail.Point
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			c := w.At(x, y)
			if c.Kind == rail.BuildingRoad && c.RailOverlay {
				pts = append(pts, rail.Point{X: x, Y: y})
			}
		}
	}
	return pts
}
