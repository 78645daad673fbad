package app

import (
	"railsim/internal/rail"
)

// Board is the static map raster: every tile painted as a TilePx block
// into one RGBA texture covering the whole world. Trains, lamps and
// signals are drawn as sprites on top.
type Board struct {
	W, H     int // tiles
	PxW, PxH int

	Pixels []uint8 // RGBA8
	Tex    uint32  // OpenGL texture id (created lazily)

	NeedsUpload bool
}

func NewBoard(w *rail.TileWorld) *Board {
	ww, wh := w.Size()
	b := &Board{
		W: ww, H: wh,
		PxW: ww * TilePx, PxH: wh * TilePx,
	}
	b.Pixels = make([]uint8, b.PxW*b.PxH*4)
	b.Rasterize(w)
	return b
}

func (b *Board) set(px, py int, col RGB) {
	if px < 0 || py < 0 || px >= b.PxW || py >= b.PxH {
		return
	}
	o := (py*b.PxW + px) * 4
	b.Pixels[o+0] = col.R
	b.Pixels[o+1] = col.G
	b.Pixels[o+2] = col.B
	b.Pixels[o+3] = 255
}

// At returns the painted colour at a board pixel.
func (b *Board) At(px, py int) RGB {
	o := (py*b.PxW + px) * 4
	return RGB{R: b.Pixels[o], G: b.Pixels[o+1], B: b.Pixels[o+2]}
}

func (b *Board) fillTile(tx, ty int, col RGB) {
	x0 := tx * TilePx
	y0 := ty * TilePx
	for y := 0; y < TilePx; y++ {
		for x := 0; x < TilePx; x++ {
			b.set(x0+x, y0+y, col)
		}
	}
}

// tileHash gives a stable per-tile variation value.
func tileHash(x, y int) uint64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29
	return h
}

// Rasterize repaints the whole board from the world. Called once after
// generation and again whenever the map changes.
func (b *Board) Rasterize(w *rail.TileWorld) {
	for ty := 0; ty < b.H; ty++ {
		for tx := 0; tx < b.W; tx++ {
			b.paintTile(w, tx, ty)
		}
	}
	b.NeedsUpload = true
}

func (b *Board) paintTile(w *rail.TileWorld, tx, ty int) {
	c := w.At(tx, ty)

	switch c.Kind {
	case rail.BuildingWater:
		base := Palette.Water
		if tileHash(tx, ty)&3 == 0 {
			base = Palette.WaterDeep
		}
		b.fillTile(tx, ty, base)
		return

	case rail.BuildingHouse:
		b.paintHouse(tx, ty)
		return

	case rail.BuildingStation:
		b.paintStation(tx, ty)
		return

	case rail.BuildingRoad:
		b.paintRoad(w, tx, ty)
		if c.RailOverlay {
			b.paintCrossing(w, tx, ty)
		}
		return

	case rail.BuildingBridge:
		b.paintBridge(w, tx, ty, c.Deck)
		return

	case rail.BuildingRail:
		b.fillTile(tx, ty, Palette.Ballast)
		b.paintTrack(w, tx, ty)
		return
	}

	// Open ground, with occasional worn patches. Station footprint
	// cells carry no building kind of their own but still read as
	// platform.
	if w.IsRailStation(tx, ty) {
		b.paintStation(tx, ty)
		return
	}
	base := Palette.Grass
	if tileHash(tx, ty)%7 == 0 {
		base = Palette.GrassPatch
	}
	b.fillTile(tx, ty, base)
}

func (b *Board) paintHouse(tx, ty int) {
	variants := [3]RGB{Palette.HouseA, Palette.HouseB, Palette.HouseC}
	body := variants[tileHash(tx, ty)%3]
	b.fillTile(tx, ty, Palette.HouseRoof)
	x0 := tx * TilePx
	y0 := ty * TilePx
	for y := 2; y < TilePx-2; y++ {
		for x := 2; x < TilePx-2; x++ {
			b.set(x0+x, y0+y, body)
		}
	}
}

func (b *Board) paintStation(tx, ty int) {
	b.fillTile(tx, ty, Palette.Platform)
	x0 := tx * TilePx
	y0 := ty * TilePx
	for y := 1; y < TilePx-1; y++ {
		for x := 1; x < TilePx-1; x++ {
			b.set(x0+x, y0+y, Palette.StationRf)
		}
	}
}

func (b *Board) paintRoad(w *rail.TileWorld, tx, ty int) {
	b.fillTile(tx, ty, Palette.Road)

	ew := w.IsRoad(tx-1, ty) || w.IsRoad(tx+1, ty)
	ns := w.IsRoad(tx, ty-1) || w.IsRoad(tx, ty+1)
	x0 := tx * TilePx
	y0 := ty * TilePx
	mid := TilePx / 2
	// Dashed centre line along the dominant direction.
	if ew && !ns {
		for x := 0; x < TilePx; x += 4 {
			b.set(x0+x, y0+mid, Palette.RoadMark)
			b.set(x0+x+1, y0+mid, Palette.RoadMark)
		}
	} else if ns && !ew {
		for y := 0; y < TilePx; y += 4 {
			b.set(x0+mid, y0+y, Palette.RoadMark)
			b.set(x0+mid, y0+y+1, Palette.RoadMark)
		}
	}
}

func (b *Board) paintBridge(w *rail.TileWorld, tx, ty int, deck rail.BridgeDeck) {
	b.fillTile(tx, ty, Palette.BridgeDeck)
	x0 := tx * TilePx
	y0 := ty * TilePx
	edge := Palette.BridgeDeck.Mul(160)
	for i := 0; i < TilePx; i++ {
		b.set(x0+i, y0, edge)
		b.set(x0+i, y0+TilePx-1, edge)
	}
	if deck == rail.DeckRail {
		b.paintTrack(w, tx, ty)
	}
}

// paintTrack draws two steel rails from the tile centre towards every
// connected edge, with sleepers under straight sections.
func (b *Board) paintTrack(w *rail.TileWorld, tx, ty int) {
	conn := w.Connections(tx, ty)
	kind := rail.ClassifyTrack(conn)

	x0 := tx * TilePx
	y0 := ty * TilePx
	mid := TilePx / 2
	gauge := 2 // half distance between the two rails

	// Sleepers first so rails paint over them.
	switch kind {
	case rail.TrackStraightEW:
		for x := 1; x < TilePx; x += 3 {
			for dy := -gauge - 1; dy <= gauge+1; dy++ {
				b.set(x0+x, y0+mid+dy, Palette.Sleeper)
			}
		}
	case rail.TrackStraightNS:
		for y := 1; y < TilePx; y += 3 {
			for dx := -gauge - 1; dx <= gauge+1; dx++ {
				b.set(x0+mid+dx, y0+y, Palette.Sleeper)
			}
		}
	}

	if conn.Has(rail.East) || kind == rail.TrackSingle {
		for x := mid; x < TilePx; x++ {
			b.set(x0+x, y0+mid-gauge, Palette.RailSteel)
			b.set(x0+x, y0+mid+gauge, Palette.RailSteel)
		}
	}
	if conn.Has(rail.West) || kind == rail.TrackSingle {
		for x := 0; x <= mid; x++ {
			b.set(x0+x, y0+mid-gauge, Palette.RailSteel)
			b.set(x0+x, y0+mid+gauge, Palette.RailSteel)
		}
	}
	if conn.Has(rail.North) {
		for y := 0; y <= mid; y++ {
			b.set(x0+mid-gauge, y0+y, Palette.RailSteel)
			b.set(x0+mid+gauge, y0+y, Palette.RailSteel)
		}
	}
	if conn.Has(rail.South) {
		for y := mid; y < TilePx; y++ {
			b.set(x0+mid-gauge, y0+y, Palette.RailSteel)
			b.set(x0+mid+gauge, y0+y, Palette.RailSteel)
		}
	}
}

// paintCrossing overlays rails, warning paint and signal posts on a
// road tile carrying a rail overlay.
func (b *Board) paintCrossing(w *rail.TileWorld, tx, ty int) {
	b.paintTrack(w, tx, ty)

	x0 := tx * TilePx
	y0 := ty * TilePx
	for i := 0; i < 3; i++ {
		b.set(x0+1+i, y0+1, Palette.CrossPaint)
		b.set(x0+TilePx-2-i, y0+1, Palette.CrossPaint)
		b.set(x0+1+i, y0+TilePx-2, Palette.CrossPaint)
		b.set(x0+TilePx-2-i, y0+TilePx-2, Palette.CrossPaint)
	}
	// Two signal posts on opposite corners; the lamp glow is a sprite.
	b.set(x0+1, y0+2, Palette.SignalPost)
	b.set(x0+1, y0+3, Palette.SignalPost)
	b.set(x0+TilePx-2, y0+TilePx-3, Palette.SignalPost)
	b.set(x0+TilePx-2, y0+TilePx-4, Palette.SignalPost)
}
