package seismic

import "math"

// ConvolveOffsetNMO implements §4.4's convolution sum on the slant-time
// axis, one offset column at a time:
//
//	seis(k,o) = Σ_{kk : |twtx(kk,o) − t| < L} refl(kk,o)·scale·w(twtx(kk,o) − t)
//
// t walks the regular axis t0 + (½+k)·dt. Samples with k outside
// (nMin[o], nMax[o]) are forced to zero, mirroring the source's
// seisConvolutionNMO. masked forces the whole trace to zero regardless
// of window, matching the toptime-missing branch.
func ConvolveOffsetNMO(refl, twtx [][]float64, w *Wavelet, scale float64, nt int, t0, dt float64, nMin, nMax []int, masked bool) [][]float64 {
	nOffsets := len(nMin)
	out := make([][]float64, nt)
	for k := range out {
		out[k] = make([]float64, nOffsets)
	}
	if masked {
		return out
	}

	limit := w.DepthAdjustmentFactor()
	nc := len(refl)

	for off := 0; off < nOffsets; off++ {
		t := t0 + 0.5*dt
		for k := 0; k < nt; k++ {
			if k > nMin[off] && k < nMax[off] {
				var seis float64
				for kk := 0; kk < nc; kk++ {
					d := twtx[kk][off] - t
					if math.Abs(d) < limit {
						seis += refl[kk][off] * scale * w.Evaluate(d)
					}
				}
				out[k][off] = seis
			}
			t += dt
		}
	}
	return out
}

// ConvolveAngleStack implements the supplemented non-NMO path: the
// same convolution sum but driven directly by the vertical two-way
// time to each reflector (twt), with no slant-time geometry and no
// n_min/n_max window — every sample on the regular axis is evaluated,
// matching the source's generateSeismic time-output branch.
func ConvolveAngleStack(refl [][]float64, twt []float64, w *Wavelet, scale float64, nt int, t0, dt float64, masked bool) [][]float64 {
	nAngles := 0
	if len(refl) > 0 {
		nAngles = len(refl[0])
	}
	out := make([][]float64, nt)
	for k := range out {
		out[k] = make([]float64, nAngles)
	}
	if masked {
		return out
	}

	limit := w.DepthAdjustmentFactor()
	nc := len(twt)

	t := t0 + 0.5*dt
	for k := 0; k < nt; k++ {
		seis := make([]float64, nAngles)
		for kk := 0; kk < nc; kk++ {
			d := twt[kk] - t
			if math.Abs(d) < limit {
				amp := scale * w.Evaluate(d)
				for l := 0; l < nAngles; l++ {
					seis[l] += refl[kk][l] * amp
				}
			}
		}
		out[k] = seis
		t += dt
	}
	return out
}

// ConvolveOnAxis implements the depth/timeshift-axis convolution
// branch of the source's generateSeismic: instead of resampling a
// time-domain trace after the fact, it converts the output sample
// index k directly to an equivalent two-way time via axisTime, then
// evaluates the same reflectivity sum at that time. axisTime is
// typically a FindTFromZ-style piecewise-linear lookup (see axis.go).
func ConvolveOnAxis(refl [][]float64, twt []float64, w *Wavelet, scale float64, n int, x0, dx float64, axisTime func(x float64) float64, masked bool) [][]float64 {
	nAngles := 0
	if len(refl) > 0 {
		nAngles = len(refl[0])
	}
	out := make([][]float64, n)
	for k := range out {
		out[k] = make([]float64, nAngles)
	}
	if masked {
		return out
	}

	limit := w.DepthAdjustmentFactor()
	nc := len(twt)

	x := x0 + 0.5*dx
	for k := 0; k < n; k++ {
		t := axisTime(x)
		seis := make([]float64, nAngles)
		for kk := 0; kk < nc; kk++ {
			d := twt[kk] - t
			if math.Abs(d) < limit {
				amp := scale * w.Evaluate(d)
				for l := 0; l < nAngles; l++ {
					seis[l] += refl[kk][l] * amp
				}
			}
		}
		out[k] = seis
		x += dx
	}
	return out
}
