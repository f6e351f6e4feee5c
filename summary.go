package seismic

import "github.com/samber/lo"

// CubeSummary is a 4-dimensional extent description (x, y, z-or-t, amplitude)
// over a generated output cube, conceptually the same summary role as
// a swath-extent record: geometric bounds plus a cheap data-quality
// signal a caller can print or log after a run completes.
type CubeSummary struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinAxis, MaxAxis float64

	MinAmplitude, MaxAmplitude float64
	SampleCount                int
}

// SummarizeCube scans a generated Grid3D cube and the lateral geometry
// it was generated over to produce a CubeSummary.
func SummarizeCube(cube *Grid3D, geom *LateralGeometry, axisValues []float64) CubeSummary {
	x0, y0 := geom.XY(0, 0)
	x1, y1 := geom.XY(geom.NX-1, geom.NY-1)

	amps := make([]float64, 0, len(cube.data))
	for i := 0; i < cube.NI; i++ {
		for j := 0; j < cube.NJ; j++ {
			amps = append(amps, cube.Pillar(i, j)...)
		}
	}

	s := CubeSummary{
		MinX: minF(x0, x1), MaxX: maxF(x0, x1),
		MinY: minF(y0, y1), MaxY: maxF(y0, y1),
		SampleCount: len(amps),
	}
	if len(axisValues) > 0 {
		s.MinAxis = lo.Min(axisValues)
		s.MaxAxis = lo.Max(axisValues)
	}
	if len(amps) > 0 {
		s.MinAmplitude = lo.Min(amps)
		s.MaxAmplitude = lo.Max(amps)
	}
	return s
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
