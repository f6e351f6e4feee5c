package seismic

import "testing"

func newTestEarthModel(ni, nj, nk int) *EarthModel {
	vp := NewGrid3D(ni, nj, nk)
	vs := NewGrid3D(ni, nj, nk)
	rho := NewGrid3D(ni, nj, nk)
	twt := NewGrid3D(ni, nj, nk)
	z := NewGrid3D(ni, nj, nk)

	const constVp, constVs, constRho = 2000.0, 1000.0, 2200.0
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			for k := 0; k < nk; k++ {
				vp.Set(i, j, k, constVp)
				vs.Set(i, j, k, constVs)
				rho.Set(i, j, k, constRho)
				twt.Set(i, j, k, float64(k)*500)
				z.Set(i, j, k, float64(k)*1000)
			}
		}
	}

	return &EarthModel{
		Vp: vp, Vs: vs, Rho: rho, Twt: twt, Z: z,
		ConstVp: constVp, ConstVs: constVs, ConstRho: constRho,
	}
}

// property 1 (masked-pillar predicate half): an all-constant pillar is
// not eligible for generation.
func TestGenerateTraceOkAllConstant(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	if GenerateTraceOk(m, 0, 0) {
		t.Error("all-constant pillar reported eligible for generation")
	}
}

func TestGenerateTraceOkDeviatingInterior(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	m.Vp.Set(0, 0, 1, 2500)
	if !GenerateTraceOk(m, 0, 0) {
		t.Error("pillar with a deviating interior layer reported ineligible")
	}
}

func TestGenerateTraceOkMaskSentinel(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	m.Vp.Set(0, 0, 1, 2500)
	m.Twt.Set(0, 0, 0, MaskSentinel)
	if GenerateTraceOk(m, 0, 0) {
		t.Error("pillar with twt(i,j,0) sentinel reported eligible")
	}
}
