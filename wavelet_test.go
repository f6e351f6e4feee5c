package seismic

import (
	"math"
	"testing"
)

// property 3: for all t with |t| > L, |w(t)| <= 0.01*w(0).
func TestRickerWaveletSupport(t *testing.T) {
	for _, fp := range []float64{10, 25, 40, 60} {
		w := NewRickerWavelet(fp)
		w0 := w.Evaluate(0)
		L := w.DepthAdjustmentFactor()

		for _, mult := range []float64{1.01, 1.5, 3.0} {
			tt := L * mult
			if got := math.Abs(w.Evaluate(tt)); got > 0.01*math.Abs(w0) {
				t.Errorf("fp=%v: |w(%v)| = %v, want <= %v", fp, tt, got, 0.01*math.Abs(w0))
			}
		}
	}
}

func TestRickerWaveletPeakAtZero(t *testing.T) {
	w := NewRickerWavelet(25)
	if got := w.Evaluate(0); got != 1 {
		t.Errorf("w(0) = %v, want 1", got)
	}
}

// S6: dt_w=4ms sampled wavelet upsamples by s=4.
func TestSampledWaveletUpsampling(t *testing.T) {
	n := 16
	samples := make([]float64, n+1)
	for i := range samples {
		samples[i] = math.Sin(float64(i))
	}
	i0 := 8

	w := NewSampledWavelet(samples, i0, 4.0)

	if w.dtW != 1.0 {
		t.Errorf("dtW = %v, want 1.0", w.dtW)
	}
	if w.i0 != i0*4 {
		t.Errorf("i0 = %v, want %v", w.i0, i0*4)
	}
	if got, want := len(w.samples), len(samples)*4; got != want {
		t.Errorf("len(samples) = %v, want %v", got, want)
	}
}

func TestNewSampledWaveletIsNotRicker(t *testing.T) {
	w := NewSampledWavelet([]float64{0, 1, 0, -1, 0}, 2, 2.0)
	if w.IsRicker() {
		t.Error("sampled wavelet reported as Ricker")
	}
}
