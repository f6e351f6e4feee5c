package seismic

import "math"

// Vrms computes the RMS velocity down to each reflector of a vertical
// pillar (§4.3): vrms²(k) = (Σ_{m≤k} vₘ²·Δtwtₘ) / twt(k). v is the
// interval velocity per layer and twt is the cumulative two-way time
// to each reflector, both indexed 0..nzrefl.
func Vrms(v, twt []float64) []float64 {
	n := len(twt)
	out := make([]float64, n)

	var sum float64
	prevTwt := 0.0
	for k := 0; k < n; k++ {
		dtwt := twt[k] - prevTwt
		sum += v[k] * v[k] * dtwt
		if twt[k] != 0 {
			out[k] = math.Sqrt(sum / twt[k])
		} else {
			out[k] = v[k]
		}
		prevTwt = twt[k]
	}
	return out
}

// VrmsRegular resamples vrms (defined on the irregular per-reflector
// twt axis) onto the regular t0 axis by piecewise-linear interpolation
// of the same cumulative sum, per §4.3's "vrms_reg ... interpolated
// onto t0". Outside (twt[0], twt[last]) vrms is clamped to its end
// values.
func VrmsRegular(vrms, twt, t0 []float64) []float64 {
	sum := make([]float64, len(twt))
	for k := range twt {
		sum[k] = vrms[k] * vrms[k] * twt[k]
	}
	out := make([]float64, len(t0))
	for i, t := range t0 {
		out[i] = linearLookup(twt, vrms, t)
		if n := len(twt); n > 0 && t > 0 && t > twt[0] && t < twt[n-1] {
			out[i] = math.Sqrt(linearLookup(twt, sum, t) / t)
		}
	}
	return out
}

// linearLookup evaluates the piecewise-linear function defined by
// (xs[i], ys[i]) at x, clamping to the end values outside [xs[0],
// xs[last]]. xs must be sorted ascending.
func linearLookup(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			a := (xs[i] - x) / (xs[i] - xs[i-1])
			return a*ys[i-1] + (1-a)*ys[i]
		}
	}
	return ys[n-1]
}

// IncidenceAngle computes θ(k,o) = atan(h[o] / (vrms(k)·twt(k)/1000))
// per §4.3.
func IncidenceAngle(vrmsK, twtK, offset float64) float64 {
	return math.Atan(offset / (vrmsK * twtK / 1000.0))
}

// SlantTravelTime computes twtx(k,o) = sqrt(twt(k)^2 +
// 1e6*h[o]^2/vrms(k)^2) per §4.3. twt and the result are in ms, offset
// in m, vrms in m/s.
func SlantTravelTime(twtK, vrmsK, offset float64) float64 {
	return math.Sqrt(twtK*twtK + 1e6*offset*offset/(vrmsK*vrmsK))
}

// ThetaGrid fills thetaGrid[k][o] = IncidenceAngle(vrms[k], twt[k],
// offsets[o]) for every reflector/offset pair, mirroring the source's
// findNMOTheta loop shape.
func ThetaGrid(twt, vrms, offsets []float64) [][]float64 {
	out := make([][]float64, len(twt))
	for k := range twt {
		row := make([]float64, len(offsets))
		for o, h := range offsets {
			row[o] = IncidenceAngle(vrms[k], twt[k], h)
		}
		out[k] = row
	}
	return out
}

// TWTXGrid fills twtxGrid[k][o] = SlantTravelTime(twt[k], vrms[k],
// offsets[o]) for every reflector/offset pair, mirroring the source's
// findTWTx loop shape.
func TWTXGrid(twt, vrms, offsets []float64) [][]float64 {
	out := make([][]float64, len(twt))
	for k := range twt {
		row := make([]float64, len(offsets))
		for o, h := range offsets {
			row[o] = SlantTravelTime(twt[k], vrms[k], h)
		}
		out[k] = row
	}
	return out
}

// SeisLimits computes, for each offset, the [nMin, nMax] bracket of t0
// indices where a nonzero sample is possible (§4.4): the minimum and
// maximum over k of twtx(k,o), located on the regular t0 axis. Samples
// outside this window are forced to zero by the convolution engine.
func SeisLimits(t0 []float64, twt, vrms, offsets []float64) (nMin, nMax []int) {
	nOffsets := len(offsets)
	nMin = make([]int, nOffsets)
	nMax = make([]int, nOffsets)

	twtx := TWTXGrid(twt, vrms, offsets)

	for o := range offsets {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for k := range twt {
			v := twtx[k][o]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		nMin[o] = clampIndex(searchSorted(t0, lo), len(t0))
		nMax[o] = clampIndex(searchSorted(t0, hi), len(t0))
		if nMin[o] > nMax[o] {
			nMin[o], nMax[o] = nMax[o], nMin[o]
		}
	}
	return nMin, nMax
}

// searchSorted returns the index of the first t0 entry >= x, or
// len(t0)-1 if x exceeds every entry.
func searchSorted(t0 []float64, x float64) int {
	for i, t := range t0 {
		if t >= x {
			return i
		}
	}
	return len(t0) - 1
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
