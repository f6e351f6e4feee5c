package seismic

import "testing"

// property 2: for all (i,j,o), seis(k,o) = 0 whenever k <= n_min(o) or
// k >= n_max(o).
func TestConvolveOffsetNMOWindowProperty(t *testing.T) {
	nt := 20
	refl := [][]float64{{1.0}, {1.0}, {1.0}}
	twtx := [][]float64{{300}, {500}, {700}}
	w := NewRickerWavelet(25)

	nMin := []int{5}
	nMax := []int{12}

	out := ConvolveOffsetNMO(refl, twtx, w, 1.0, nt, 0, 50, nMin, nMax, false)

	for k := 0; k < nt; k++ {
		if k <= nMin[0] || k >= nMax[0] {
			if out[k][0] != 0 {
				t.Errorf("k=%d outside [%d,%d]: seis = %v, want 0", k, nMin[0], nMax[0], out[k][0])
			}
		}
	}
}

func TestConvolveOffsetNMOMaskedIsZero(t *testing.T) {
	refl := [][]float64{{1.0}}
	twtx := [][]float64{{300}}
	w := NewRickerWavelet(25)
	out := ConvolveOffsetNMO(refl, twtx, w, 1.0, 10, 0, 50, []int{0}, []int{9}, true)
	for k, row := range out {
		for o, v := range row {
			if v != 0 {
				t.Errorf("masked trace out[%d][%d] = %v, want 0", k, o, v)
			}
		}
	}
}

// S1-flavored: a single reflector should peak near its arrival time.
func TestConvolveAngleStackSingleReflectorPeak(t *testing.T) {
	nt := 512
	dt := 2.0
	twt := []float64{1000.0}
	refl := [][]float64{{1.0}}
	w := NewRickerWavelet(25)

	out := ConvolveAngleStack(refl, twt, w, 1.0, nt, 0, dt, false)

	peakK, peakAbs := 0, 0.0
	for k := range out {
		if v := out[k][0]; v*v > peakAbs*peakAbs {
			peakAbs = v
			peakK = k
		}
	}

	wantK := int(1000.0 / dt)
	if diff := peakK - wantK; diff < -1 || diff > 1 {
		t.Errorf("peak sample = %d, want near %d", peakK, wantK)
	}
}
