package rail

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestScenarioCurveNEEastbound(t *testing.T) {
	// curve_ne traversed with exit heading east: the bezier starts at
	// the north edge midpoint and ends at the east edge midpoint, with
	// the heading following the tangent.
	ax, ay := edgeMid(North)
	bx, by := edgeMid(East)

	px, py, dx, dy := bezier2(ax, ay, 0.5, 0.5, bx, by, 0)
	if math.Abs(px-0.5) > eps || math.Abs(py-0) > eps {
		t.Errorf("progress 0 position (%v,%v), want north edge midpoint (0.5,0)", px, py)
	}
	if !(dy > 0 && math.Abs(dx) < eps) {
		t.Errorf("progress 0 tangent (%v,%v), want pointing south into the tile", dx, dy)
	}

	px, py, dx, dy = bezier2(ax, ay, 0.5, 0.5, bx, by, 1)
	if math.Abs(px-1) > eps || math.Abs(py-0.5) > eps {
		t.Errorf("progress 1 position (%v,%v), want east edge midpoint (1,0.5)", px, py)
	}
	if !(dx > 0 && math.Abs(dy) < eps) {
		t.Errorf("progress 1 tangent (%v,%v), want pointing east out of the tile", dx, dy)
	}
}

func TestCarriagePoseOnCurve(t *testing.T) {
	w := testWorld(16, 12)
	layRail(w, 3, 5, 7, 5) // west arm
	layRail(w, 7, 2, 7, 5) // north arm; (7,5) classifies as curve_nw

	c := Carriage{Kind: CarLocomotive, X: 7, Y: 5, Heading: North, Progress: 1}
	pose := carriagePose(w, c)
	if !pose.OnCurve {
		t.Fatal("cell should classify as a curve")
	}
	// Exit heading north: at progress 1 the car is at the north edge
	// midpoint, facing north, with the northbound lane offset.
	wantX := 7 + 0.5 - LaneOffset
	wantY := 5 + 0.0
	if math.Abs(pose.X-wantX) > eps || math.Abs(pose.Y-wantY) > eps {
		t.Errorf("pose (%v,%v), want (%v,%v)", pose.X, pose.Y, wantX, wantY)
	}
	if !(pose.DirY < 0 && math.Abs(pose.DirX) < eps) {
		t.Errorf("facing (%v,%v), want due north", pose.DirX, pose.DirY)
	}
}

func TestCarriagePoseReversedTraversal(t *testing.T) {
	// Same curve_nw cell, traversed the other way: exit heading west.
	w := testWorld(16, 12)
	layRail(w, 3, 5, 7, 5)
	layRail(w, 7, 2, 7, 5)

	c := Carriage{Kind: CarLocomotive, X: 7, Y: 5, Heading: West, Progress: 0}
	pose := carriagePose(w, c)
	if !pose.OnCurve {
		t.Fatal("cell should classify as a curve")
	}
	// Entry from the north edge heading south; position starts at the
	// north edge midpoint with the entry heading's lane offset.
	ex, _ := laneShift(South)
	if math.Abs(pose.X-(7+0.5+ex)) > eps || math.Abs(pose.Y-5) > eps {
		t.Errorf("pose (%v,%v), want north edge midpoint with entry lane", pose.X, pose.Y)
	}
	if !(pose.DirY > 0) {
		t.Errorf("facing (%v,%v), want heading into the tile (south component)", pose.DirX, pose.DirY)
	}
}

func TestStraightPoseLaneOffsets(t *testing.T) {
	w := testWorld(16, 12)
	layRail(w, 3, 5, 9, 5)
	layRail(w, 6, 2, 6, 8)

	east := carriagePose(w, Carriage{X: 4, Y: 5, Heading: East, Progress: 0.5})
	west := carriagePose(w, Carriage{X: 4, Y: 5, Heading: West, Progress: 0.5})
	if east.OnCurve || west.OnCurve {
		t.Fatal("straight cells must not flag as curves")
	}
	if east.Y <= west.Y {
		t.Errorf("eastbound lane (y=%v) must sit south of westbound (y=%v)", east.Y, west.Y)
	}
	if math.Abs(east.X-west.X) > eps {
		t.Errorf("longitudinal positions diverged: %v vs %v", east.X, west.X)
	}

	south := carriagePose(w, Carriage{X: 6, Y: 3, Heading: South, Progress: 0.5})
	north := carriagePose(w, Carriage{X: 6, Y: 3, Heading: North, Progress: 0.5})
	if south.X <= north.X {
		t.Errorf("southbound lane (x=%v) must sit east of northbound (x=%v)", south.X, north.X)
	}
}

func TestCurveLaneBlendIsSeamless(t *testing.T) {
	// Entering and leaving a curve must match the adjoining straight
	// tiles' lane positions exactly at the boundary.
	w := testWorld(16, 12)
	layRail(w, 3, 5, 7, 5)
	layRail(w, 7, 2, 7, 5)

	// Westbound straight at (6,5) meets the curve cell (7,5)... the
	// traversal of interest runs east along y=5 then north up x=7.
	straight := carriagePose(w, Carriage{X: 6, Y: 5, Heading: East, Progress: 1})
	curveEntry := carriagePose(w, Carriage{X: 7, Y: 5, Heading: North, Progress: 0})
	if math.Abs(straight.X-curveEntry.X) > eps || math.Abs(straight.Y-curveEntry.Y) > eps {
		t.Errorf("seam at curve entry: straight (%v,%v) vs curve (%v,%v)",
			straight.X, straight.Y, curveEntry.X, curveEntry.Y)
	}

	curveExit := carriagePose(w, Carriage{X: 7, Y: 5, Heading: North, Progress: 1})
	straightUp := carriagePose(w, Carriage{X: 7, Y: 4, Heading: North, Progress: 0})
	if math.Abs(curveExit.X-straightUp.X) > eps || math.Abs(curveExit.Y-straightUp.Y) > eps {
		t.Errorf("seam at curve exit: curve (%v,%v) vs straight (%v,%v)",
			curveExit.X, curveExit.Y, straightUp.X, straightUp.Y)
	}
}
