package seismic

import "math"

// ReflectionMode selects which linearized reflection-coefficient model
// a ReflectionModel evaluates (§4.2).
type ReflectionMode int

const (
	ModePP ReflectionMode = iota
	ModePS
)

// reflectionConstants holds the angle-dependent weights precomputed
// once per θ by ComputeConstants, then combined with the six
// contrast/mean layer inputs by GetReflection. Both PP and PS variants
// populate the two weights differently; unused weights are left zero.
type reflectionConstants struct {
	w0, w1 float64
}

// ReflectionModel is the abstract reflection model of §4.2: a tagged
// PP/PS variant producing one reflection coefficient per call, given a
// layer contrast and an incidence angle. The source's two Zoeppritz
// subclasses are reimplemented as one function pair rather than a
// class hierarchy.
type ReflectionModel struct {
	Mode ReflectionMode
}

// NewReflectionModel constructs a ReflectionModel for the given mode.
func NewReflectionModel(psSeismic bool) *ReflectionModel {
	if psSeismic {
		return &ReflectionModel{Mode: ModePS}
	}
	return &ReflectionModel{Mode: ModePP}
}

// ComputeConstants computes the θ-dependent weights for this mode, to
// be passed to GetReflection, mirroring the original's
// zoeppritz->ComputeConstants(theta) call shape. The driver's
// reflectivity loop calls it once per (layer, angle) entry; the
// result is not cached across layers.
func (r *ReflectionModel) ComputeConstants(theta float64) reflectionConstants {
	s := math.Sin(theta)
	s2 := s * s
	switch r.Mode {
	case ModePS:
		// Converted-wave coefficient vanishes at normal incidence;
		// weighted by sinθ and sin³θ.
		return reflectionConstants{w0: s, w1: s * s2}
	default:
		// PP: standard Aki-Richards/Wiggins two-term weights.
		return reflectionConstants{w0: 1, w1: s2}
	}
}

// GetReflection combines the precomputed θ-weights with the layer
// contrast (Δvp, v̄p, Δvs, v̄s, Δρ, ρ̄) to produce one reflection
// coefficient, per §4.2.
func (r *ReflectionModel) GetReflection(c reflectionConstants, diffVp, meanVp, diffRho, meanRho, diffVs, meanVs float64) float64 {
	switch r.Mode {
	case ModePS:
		cTerm := -(diffVs/meanVs + 0.5*diffRho/meanRho)
		dTerm := 0.5 * (diffVs / meanVs)
		return c.w0*cTerm + c.w1*dTerm

	default:
		vsVpRatio := meanVs / meanVp
		a := 0.5 * (diffVp/meanVp + diffRho/meanRho)
		b := 0.5*(diffVp/meanVp) - 2*vsVpRatio*vsVpRatio*(2*diffVs/meanVs+diffRho/meanRho)
		return c.w0*a + c.w1*b
	}
}
