package seismic

import "gonum.org/v1/gonum/interp"

// NMOCorrect implements §4.6: resampling slant-time traces back onto
// the vertical t0 axis, one offset column at a time. For each offset,
// data is only trustworthy inside [nMin[o], nMax[o]] on the input
// axis; the output axis tOut is not itself monotonic in general (it is
// twtx_reg, which can fold back on itself at far offsets), so the
// "inside" guard walks tOut only until it first enters, then leaves,
// the trustworthy span of tIn — matching the source's NMOCorrect
// index-truncation behaviour. maxSample is the largest such span found
// across all offsets and becomes the valid-sample count callers must
// respect downstream (axis conversion, output writers).
func NMOCorrect(tIn []float64, dataIn [][]float64, tOut [][]float64, nMin, nMax []int) (dataOut [][]float64, maxSample int) {
	nt := len(tIn)
	nOffsets := len(nMin)

	dataOut = make([][]float64, nt)
	for k := range dataOut {
		dataOut[k] = make([]float64, nOffsets)
	}

	for off := 0; off < nOffsets; off++ {
		lo, hi := nMin[off], nMax[off]
		span := hi - lo + 1
		if span <= 1 {
			continue
		}

		tVecIn := make([]float64, span)
		dataVecIn := make([]float64, span)
		for k := lo; k <= hi; k++ {
			tVecIn[k-lo] = tIn[k]
			dataVecIn[k-lo] = dataIn[k][off]
		}

		tVecOut := make([]float64, 0, nt)
		inside := false
		for k := 0; k < nt; k++ {
			tv := tOut[k][off]
			if !inside && tv > tVecIn[0] && tv < tVecIn[span-1] {
				inside = true
			}
			tVecOut = append(tVecOut, tv)
			if inside && tv > tVecIn[span-1] {
				break
			}
		}

		dataVecOut := splineInterp1D(tVecIn, dataVecIn, tVecOut, 0)
		for k := range tVecOut {
			dataOut[k][off] = dataVecOut[k]
		}
		if len(tVecOut) > maxSample {
			maxSample = len(tVecOut)
		}
	}
	return dataOut, maxSample
}

// dedupXs drops any x_in[i] equal to its predecessor, carrying y_in
// along, matching linInterp1D/splineInterp1D's defensive copy: gonum's
// fittable predictors require strictly increasing x.
func dedupXs(xIn, yIn []float64) (xs, ys []float64) {
	if len(xIn) == 0 {
		return nil, nil
	}
	xs = make([]float64, 0, len(xIn))
	ys = make([]float64, 0, len(xIn))
	xs = append(xs, xIn[0])
	ys = append(ys, yIn[0])
	for i := 1; i < len(xIn); i++ {
		if xIn[i] != xIn[i-1] {
			xs = append(xs, xIn[i])
			ys = append(ys, yIn[i])
		}
	}
	return xs, ys
}

// linInterp1D reproduces the source's linInterp1D: deduplicate
// repeated x values, then piecewise-linear interpolate onto xOut,
// clamping outside the input range.
func linInterp1D(xIn, yIn, xOut []float64) []float64 {
	xs, ys := dedupXs(xIn, yIn)
	out := make([]float64, len(xOut))
	if len(xs) < 2 {
		for i := range out {
			if len(ys) > 0 {
				out[i] = ys[0]
			}
		}
		return out
	}

	var p interp.Linear
	if err := p.Fit(xs, ys); err != nil {
		for i, x := range xOut {
			out[i] = linearLookup(xs, ys, x)
		}
		return out
	}
	for i, x := range xOut {
		out[i] = evalClamped(&p, xs, ys, x)
	}
	return out
}

// splineInterp1D reproduces the source's splineInterp1D: deduplicate
// repeated x values, then fit an Akima spline (gonum's closest
// analogue to the source's NRLib spline) and evaluate at xOut,
// returning extrapValue for points outside the fitted domain.
func splineInterp1D(xIn, yIn, xOut []float64, extrapValue float64) []float64 {
	xs, ys := dedupXs(xIn, yIn)
	out := make([]float64, len(xOut))
	if len(xs) < 3 {
		return linInterp1D(xIn, yIn, xOut)
	}

	var p interp.AkimaSpline
	if err := p.Fit(xs, ys); err != nil {
		return linInterp1D(xIn, yIn, xOut)
	}
	for i, x := range xOut {
		if x < xs[0] || x > xs[len(xs)-1] {
			out[i] = extrapValue
			continue
		}
		out[i] = p.Predict(x)
	}
	return out
}

func evalClamped(p *interp.Linear, xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	return p.Predict(x)
}
