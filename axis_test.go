package seismic

import (
	"math"
	"testing"
)

func TestExtrapolateZTWTBracketsInput(t *testing.T) {
	twt := []float64{500, 1000, 1500}
	z := []float64{1000, 2000, 3000}
	zBot := 4000.0
	constVp := 2000.0

	zExtrap, twtExtrap := ExtrapolateZTWT(twt, z, zBot, constVp)

	if len(zExtrap) != len(twt)+2 || len(twtExtrap) != len(twt)+2 {
		t.Fatalf("got lengths %d/%d, want %d", len(zExtrap), len(twtExtrap), len(twt)+2)
	}
	if zExtrap[0] != 0 || twtExtrap[0] != 0 {
		t.Errorf("synthetic top entry = (%v,%v), want (0,0)", zExtrap[0], twtExtrap[0])
	}
	if zExtrap[len(zExtrap)-1] != zBot {
		t.Errorf("bottom z = %v, want %v", zExtrap[len(zExtrap)-1], zBot)
	}
	wantTwtBot := twt[len(twt)-1] + 2000.0*(zBot-z[len(z)-1])/constVp
	if got := twtExtrap[len(twtExtrap)-1]; got != wantTwtBot {
		t.Errorf("bottom twt = %v, want %v", got, wantTwtBot)
	}
}

func TestFindTFromZMonotonic(t *testing.T) {
	zVec := []float64{0, 1000, 2000, 3000}
	tVec := []float64{0, 500, 1000, 1500}

	for _, z := range []float64{0, 500, 1000, 1500, 2500, 3000} {
		got := FindTFromZ(z, zVec, tVec)
		if got < 0 || got > 1500+1e-9 {
			t.Errorf("FindTFromZ(%v) = %v, out of expected range", z, got)
		}
	}

	// exact knot values should round-trip.
	if got := FindTFromZ(1000, zVec, tVec); math.Abs(got-500) > 1e-9 {
		t.Errorf("FindTFromZ(1000) = %v, want 500", got)
	}
}

func TestFindTFromZBelowFirstSample(t *testing.T) {
	zVec := []float64{1000, 2000}
	tVec := []float64{100, 200}
	if got := FindTFromZ(0, zVec, tVec); got != 100 {
		t.Errorf("FindTFromZ below range = %v, want extrapolated first value 100", got)
	}
}
