package seismic

// GenerateTraceOk implements the generate-trace predicate of §4.8: a
// pillar is eligible for trace generation when its TWT sentinel is not
// set, and at least one elastic parameter differs from its constant
// filler value somewhere in the interior of the stack.
//
// Ported from the original's generateTraceOk, which breaks out of the
// scan as soon as any interior layer deviates.
func GenerateTraceOk(m *EarthModel, i, j int) bool {
	if m.Twt.At(i, j, 0) == MaskSentinel {
		return false
	}

	nk := m.Vp.NK
	for k := 1; k < nk-1; k++ {
		if m.Vp.At(i, j, k) != m.ConstVp {
			return true
		}
		if m.Vs.At(i, j, k) != m.ConstVs {
			return true
		}
		if m.Rho.At(i, j, k) != m.ConstRho {
			return true
		}
	}
	return false
}
