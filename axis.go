package seismic

// ExtrapolateZTWT implements the supplemented extrapolZandTwtVec
// feature: it extends a reflector depth/twt pair list with a synthetic
// top entry at (z=0, twt=0) and a synthetic bottom entry at the
// eclipse/bottom-depth surface, using a constant bottom-layer velocity
// to extrapolate the extra two-way time. This gives the depth-axis
// converter full top-to-bottom coverage instead of stopping at the
// last reflector.
func ExtrapolateZTWT(twt []float64, z []float64, zBot, constVpBottom float64) (zExtrap, twtExtrap []float64) {
	n := len(twt)
	zExtrap = make([]float64, n+2)
	twtExtrap = make([]float64, n+2)

	for k := 0; k < n; k++ {
		zExtrap[k+1] = z[k]
		twtExtrap[k+1] = twt[k]
	}
	zExtrap[n+1] = zBot
	twtExtrap[n+1] = twtExtrap[n] + 2000.0*(zExtrap[n+1]-zExtrap[n])/constVpBottom
	return zExtrap, twtExtrap
}

// FindTFromZ inverts a monotonic (z,t) pair list to find the time at
// depth z by piecewise-linear interpolation, with the list's first
// value used as extrapolation below the first sample. This is the
// per-sample lookup the source's generateSeismic depth/timeshift
// branches call directly inside the convolution loop (see
// ConvolveOnAxis), rather than resampling a finished trace.
func FindTFromZ(z float64, zVec, tVec []float64) float64 {
	n := len(zVec)
	if n == 0 {
		return 0
	}
	i := 0
	for i < n-1 && z > zVec[i] {
		i++
	}
	if i > 0 {
		a := (zVec[i] - z) / (zVec[i] - zVec[i-1])
		return a*tVec[i-1] + (1-a)*tVec[i]
	}
	return tVec[0]
}

// ConvertSeis implements §4.7's axis converter for the resample-after
// style used by the NMO/offset path: given a time-domain trace indexed
// on twtVec (the per-reflector time axis carried by twt0's regular
// sampling) and a target depth/shifted-time axis, interpolate the
// time→target mapping linearly onto twt0, then spline-interpolate the
// already-generated trace from that mapping onto the target axis.
//
// data is indexed [sample][offset]; only the first maxSample rows are
// considered valid input (the rest is NMO padding).
func ConvertSeis(twtVec, twt0, targetVec, target0 []float64, data [][]float64, maxSample int) [][]float64 {
	nk := len(target0)
	noff := 0
	if len(data) > 0 {
		noff = len(data[0])
	}

	ztReg := linInterp1D(twtVec, targetVec, twt0)
	if len(ztReg) > maxSample {
		ztReg = ztReg[:maxSample]
	}

	out := make([][]float64, nk)
	for k := range out {
		out[k] = make([]float64, noff)
	}

	seismicVec := make([]float64, maxSample)
	for off := 0; off < noff; off++ {
		for k := 0; k < maxSample && k < len(data); k++ {
			seismicVec[k] = data[k][off]
		}
		convVec := splineInterp1D(ztReg, seismicVec, target0, 0)
		for k := 0; k < nk && k < len(convVec); k++ {
			out[k][off] = convVec[k]
		}
	}
	return out
}
