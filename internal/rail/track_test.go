package rail

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyTrackAllCombinations(t *testing.T) {
	cases := []struct {
		conn Connection
		want TrackKind
	}{
		{Connection{}, TrackSingle},
		{Connection{North: true}, TrackTerminusS},
		{Connection{East: true}, TrackTerminusW},
		{Connection{South: true}, TrackTerminusN},
		{Connection{West: true}, TrackTerminusE},
		{Connection{North: true, South: true}, TrackStraightNS},
		{Connection{East: true, West: true}, TrackStraightEW},
		{Connection{North: true, East: true}, TrackCurveNE},
		{Connection{North: true, West: true}, TrackCurveNW},
		{Connection{South: true, East: true}, TrackCurveSE},
		{Connection{South: true, West: true}, TrackCurveSW},
		{Connection{East: true, South: true, West: true}, TrackTeeN},
		{Connection{North: true, South: true, West: true}, TrackTeeE},
		{Connection{North: true, East: true, West: true}, TrackTeeS},
		{Connection{North: true, East: true, South: true}, TrackTeeW},
		{Connection{North: true, East: true, South: true, West: true}, TrackCross},
	}
	if len(cases) != 16 {
		t.Fatalf("expected all 16 combinations, have %d", len(cases))
	}
	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			got := ClassifyTrack(c.conn)
			if got != c.want {
				t.Errorf("ClassifyTrack(%+v) = %v, want %v", c.conn, got, c.want)
			}
			// Pure: repeat call agrees.
			if again := ClassifyTrack(c.conn); again != got {
				t.Errorf("ClassifyTrack not repeatable: %v then %v", got, again)
			}
		})
	}
}

func TestTrackConnectionsRoundTrip(t *testing.T) {
	for k := TrackSingle; k <= TrackTerminusW; k++ {
		conn := TrackConnections(k)
		if got := ClassifyTrack(conn); got != k {
			t.Errorf("round trip %v: connections %+v classified as %v", k, conn, got)
		}
		if diff := cmp.Diff(conn, TrackConnections(k)); diff != "" {
			t.Errorf("TrackConnections(%v) not stable (-first +second):\n%s", k, diff)
		}
	}
}

func TestDirHelpers(t *testing.T) {
	for d := North; d <= West; d++ {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double reverse is not identity", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v: opposite delta does not cancel", d)
		}
	}
	if North.Clockwise() != East || West.Clockwise() != North {
		t.Errorf("clockwise order broken")
	}
}
