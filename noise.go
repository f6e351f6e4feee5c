package seismic

import "math/rand"

// CellSeed derives the per-cell PRNG seed from the user seed and
// lateral position (user_seed + i + nx*j), per §5: this keeps a
// parallel (i,j) schedule independent of thread ordering, since every
// cell always draws from its own seed regardless of which worker
// processes it or when.
func CellSeed(userSeed int64, i, j, nx int) int64 {
	return userSeed + int64(i) + int64(nx)*int64(j)
}

// AddNoiseToReflections perturbs refl in place, adding Gaussian noise
// with standard deviation stdDev to every (reflector, offset) entry.
// The PRNG is freshly seeded for this call so results depend only on
// seed, never on call order (§4.8, §5).
func AddNoiseToReflections(refl [][]float64, seed int64, stdDev float64) {
	if stdDev == 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	for k := range refl {
		for o := range refl[k] {
			refl[k][o] += rng.NormFloat64() * stdDev
		}
	}
}

// ZeroOffsetSnapshot copies the zero-offset (first offset/angle
// column) reflectivity out of refl. The generation driver does not
// call it: no pre-noise or post-noise zero-offset reflectivity grid is
// retained or written, whatever OutputFlags.ReflectionsOutput says.
func ZeroOffsetSnapshot(refl [][]float64) []float64 {
	out := make([]float64, len(refl))
	for k := range refl {
		if len(refl[k]) > 0 {
			out[k] = refl[k][0]
		}
	}
	return out
}
