package seismic

// StackCubes implements §4.8/§9's "Stack": the arithmetic mean across
// the angle or offset dimension of a set of already-computed cubes
// sharing the same (NI, NJ, NK). Used for the optional angle/offset
// stack output, both in the in-memory and file-backed assembly paths.
func StackCubes(cubes []*Grid3D) *Grid3D {
	if len(cubes) == 0 {
		return nil
	}
	ni, nj, nk := cubes[0].NI, cubes[0].NJ, cubes[0].NK
	out := NewGrid3D(ni, nj, nk)

	n := float64(len(cubes))
	for _, c := range cubes {
		vals := c.Values()
		sum := out.Values()
		for idx, v := range vals {
			sum[idx] += v
		}
	}
	sum := out.Values()
	for idx := range sum {
		sum[idx] /= n
	}
	return out
}
