package rail

// BuildingKind is the coarse per-cell building classification the
// simulation cares about. The host's full zoning palette collapses to
// this closed set at the boundary.
type BuildingKind int

const (
	BuildingNone BuildingKind = iota
	BuildingHouse
	BuildingRoad
	BuildingRail
	BuildingStation // origin (north-west) cell of a 2x2 station footprint
	BuildingWater
	BuildingBridge
)

// BridgeDeck is the track type carried by a bridge cell.
type BridgeDeck int

const (
	DeckNone BridgeDeck = iota
	DeckRoad
	DeckRail
)

// RailWorld is the read-only capability query the simulation consumes.
// All methods return false outside the grid bounds.
type RailWorld interface {
	Size() (int, int)
	IsRail(x, y int) bool
	IsRoad(x, y int) bool
	IsRailStation(x, y int) bool
	Connections(x, y int) Connection
}

// Cell is one grid tile of the demo world.
type Cell struct {
	Kind        BuildingKind
	RailOverlay bool       // road cell also carrying track (level crossing)
	Deck        BridgeDeck // bridge cells only
}

// TileWorld is a fixed-size tile grid implementing RailWorld. The host
// owns and edits it; the simulation only reads it.
type TileWorld struct {
	W, H  int
	Cells []Cell
}

func NewTileWorld(w, h int) *TileWorld {
	if w <= 0 {
		w = WorldWidth
	}
	if h <= 0 {
		h = WorldHeight
	}
	return &TileWorld{W: w, H: h, Cells: make([]Cell, w*h)}
}

func (w *TileWorld) Size() (int, int) { return w.W, w.H }

func (w *TileWorld) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.W && y < w.H
}

func (w *TileWorld) At(x, y int) Cell {
	if !w.InBounds(x, y) {
		return Cell{}
	}
	return w.Cells[y*w.W+x]
}

func (w *TileWorld) Set(x, y int, c Cell) {
	if !w.InBounds(x, y) {
		return
	}
	w.Cells[y*w.W+x] = c
}

// SetKind overwrites only the building kind, keeping overlay and deck.
func (w *TileWorld) SetKind(x, y int, k BuildingKind) {
	if !w.InBounds(x, y) {
		return
	}
	w.Cells[y*w.W+x].Kind = k
}

// hasRail is the uniform track predicate: a pure rail cell, a road cell
// carrying the rail overlay, or a bridge cell with a rail deck.
func (w *TileWorld) hasRail(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	c := w.Cells[y*w.W+x]
	switch c.Kind {
	case BuildingRail:
		return true
	case BuildingRoad:
		return c.RailOverlay
	case BuildingBridge:
		return c.Deck == DeckRail
	}
	return false
}

func (w *TileWorld) IsRail(x, y int) bool { return w.hasRail(x, y) }

func (w *TileWorld) IsRoad(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	c := w.Cells[y*w.W+x]
	return c.Kind == BuildingRoad || (c.Kind == BuildingBridge && c.Deck == DeckRoad)
}

// IsRailStation reports whether (x,y) lies anywhere on a 2x2 station
// footprint: the origin cell itself, or a cell whose west, north, or
// north-west neighbor is the origin.
func (w *TileWorld) IsRailStation(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	if w.At(x, y).Kind == BuildingStation {
		return true
	}
	return w.At(x-1, y).Kind == BuildingStation ||
		w.At(x, y-1).Kind == BuildingStation ||
		w.At(x-1, y-1).Kind == BuildingStation
}

// Connections builds the four-sided connection record from the uniform
// rail predicate. Out-of-bounds neighbors are never connected.
func (w *TileWorld) Connections(x, y int) Connection {
	return Connection{
		North: w.hasRail(x, y-1),
		East:  w.hasRail(x+1, y),
		South: w.hasRail(x, y+1),
		West:  w.hasRail(x-1, y),
	}
}

// railCellAt reports whether a train may stand on (x,y): track or any
// cell of a station footprint.
func railCellAt(w RailWorld, x, y int) bool {
	return w.IsRail(x, y) || w.IsRailStation(x, y)
}
