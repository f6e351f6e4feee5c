package seismic

import (
	"math"
	"testing"
)

func TestVrmsConstantVelocityEqualsInterval(t *testing.T) {
	v := []float64{2000, 2000, 2000}
	twt := []float64{500, 1000, 1500}

	vrms := Vrms(v, twt)
	for k, got := range vrms {
		if math.Abs(got-2000) > 1e-6 {
			t.Errorf("vrms[%d] = %v, want 2000 (constant velocity)", k, got)
		}
	}
}

func TestIncidenceAngleZeroOffset(t *testing.T) {
	if got := IncidenceAngle(2000, 1000, 0); got != 0 {
		t.Errorf("IncidenceAngle with offset=0 = %v, want 0", got)
	}
}

func TestSlantTravelTimeZeroOffsetIsTwt(t *testing.T) {
	got := SlantTravelTime(1000, 2000, 0)
	if math.Abs(got-1000) > 1e-9 {
		t.Errorf("SlantTravelTime with offset=0 = %v, want 1000 (= twt)", got)
	}
}

func TestSlantTravelTimeIncreasesWithOffset(t *testing.T) {
	near := SlantTravelTime(1000, 2000, 100)
	far := SlantTravelTime(1000, 2000, 1000)
	if far <= near {
		t.Errorf("twtx(far)=%v should exceed twtx(near)=%v", far, near)
	}
}

func TestSeisLimitsOrdered(t *testing.T) {
	t0 := make([]float64, 200)
	for k := range t0 {
		t0[k] = float64(k) * 2
	}
	twt := []float64{500, 1000}
	vrms := []float64{2000, 2200}
	offsets := []float64{0, 500, 1000}

	nMin, nMax := SeisLimits(t0, twt, vrms, offsets)
	for o := range offsets {
		if nMin[o] > nMax[o] {
			t.Errorf("offset %d: nMin=%d > nMax=%d", o, nMin[o], nMax[o])
		}
	}
}
