package seismic

import "testing"

// driverTestModel builds a single-reflector earth model over a small
// lateral grid, with top-time/bottom-depth surfaces present so
// GenerateCell's mask test can run without a nil surface.
func driverTestModel(ni, nj int) (*EarthModel, *LateralGeometry) {
	// nk must be at least 3: GenerateTraceOk only scans interior layers
	// 1..nk-2, which is empty for nk<3.
	nk := 3
	vp := NewGrid3D(ni, nj, nk)
	vs := NewGrid3D(ni, nj, nk)
	rho := NewGrid3D(ni, nj, nk)
	twt := NewGrid3D(ni, nj, nk)
	z := NewGrid3D(ni, nj, nk)

	const constVp, constVs, constRho = 2000.0, 1000.0, 2200.0
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			vp.Set(i, j, 0, constVp)
			vp.Set(i, j, 1, constVp+400)
			vp.Set(i, j, 2, constVp+400)
			vs.Set(i, j, 0, constVs)
			vs.Set(i, j, 1, constVs+200)
			vs.Set(i, j, 2, constVs+200)
			rho.Set(i, j, 0, constRho)
			rho.Set(i, j, 1, constRho+150)
			rho.Set(i, j, 2, constRho+150)
			twt.Set(i, j, 0, 0)
			twt.Set(i, j, 1, 1000)
			twt.Set(i, j, 2, 2000)
			z.Set(i, j, 0, 0)
			z.Set(i, j, 1, 2000)
			z.Set(i, j, 2, 4000)
		}
	}

	topTime := NewSurface2D(ni, nj, 0, 0, 1, 1)
	botDepth := NewSurface2D(ni, nj, 0, 0, 1, 1)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			topTime.Set(i, j, 0)
			botDepth.Set(i, j, 3000)
		}
	}

	m := &EarthModel{
		Vp: vp, Vs: vs, Rho: rho, Twt: twt, Z: z,
		TopTime: topTime, BottomDepth: botDepth,
		ConstVp: constVp, ConstVs: constVs, ConstRho: constRho,
	}
	geom := NewLateralGeometry(ni, nj, 0, 0, 1, 1)
	return m, geom
}

func testRuntime(nt int) *Runtime {
	cfg := &Config{
		NMOCorrect:    false,
		Angles:        []float64{0.0},
		T0:            0,
		Dt:            2,
		Nt:            nt,
		Output:        OutputFlags{Time: true},
		WaveletScale:  1.0,
		PeakFrequency: 25.0,
	}
	return &Runtime{
		Model:   NewReflectionModel(false),
		Wavelet: NewRickerWavelet(cfg.PeakFrequency),
		Config:  cfg,
		Sink:    NewMemorySink(1, 1, nt),
	}
}

// property 1 / S2: a masked pillar (twt sentinel) produces an
// all-zero trace on every configured axis.
func TestGenerateCellMaskedPillarIsZero(t *testing.T) {
	m, geom := driverTestModel(1, 1)
	m.Twt.Set(0, 0, 0, MaskSentinel)

	rt := testRuntime(256)
	x, y := geom.XY(0, 0)
	GenerateCell(m, 0, 0, x, y, rt)

	cube := rt.Sink.(*MemorySink).Cube(AxisTime, 0)
	if cube == nil {
		t.Fatal("expected a zero cube to be written for a masked pillar")
	}
	for k := 0; k < cube.NK; k++ {
		if got := cube.At(0, 0, k); got != 0 {
			t.Errorf("masked pillar sample k=%d = %v, want 0", k, got)
		}
	}
}

func TestGenerateCellMaskedByMissingTopTime(t *testing.T) {
	m, geom := driverTestModel(1, 1)
	m.TopTime.Set(0, 0, MissingValue)

	rt := testRuntime(256)
	x, y := geom.XY(0, 0)
	GenerateCell(m, 0, 0, x, y, rt)

	cube := rt.Sink.(*MemorySink).Cube(AxisTime, 0)
	for k := 0; k < cube.NK; k++ {
		if got := cube.At(0, 0, k); got != 0 {
			t.Errorf("trace masked by missing top-time sample k=%d = %v, want 0", k, got)
		}
	}
}

// S1-flavored: an eligible pillar produces a nonzero trace near the
// reflector's arrival time.
func TestGenerateCellEligiblePillarProducesSignal(t *testing.T) {
	m, geom := driverTestModel(1, 1)

	rt := testRuntime(512)
	x, y := geom.XY(0, 0)
	GenerateCell(m, 0, 0, x, y, rt)

	cube := rt.Sink.(*MemorySink).Cube(AxisTime, 0)
	if cube == nil {
		t.Fatal("expected a cube to be written")
	}

	var maxAbs float64
	for k := 0; k < cube.NK; k++ {
		if v := cube.At(0, 0, k); v*v > maxAbs*maxAbs {
			maxAbs = v
		}
	}
	if maxAbs == 0 {
		t.Error("expected a nonzero trace for an eligible pillar with a real reflector")
	}
}

func TestGenerateAllVisitsEveryCell(t *testing.T) {
	m, geom := driverTestModel(2, 2)
	rt := testRuntime(64)
	rt.Sink = NewMemorySink(2, 2, 64)

	GenerateAll(m, geom, rt)

	cube := rt.Sink.(*MemorySink).Cube(AxisTime, 0)
	if cube == nil {
		t.Fatal("expected a cube after GenerateAll")
	}
	if cube.NI != 2 || cube.NJ != 2 {
		t.Errorf("cube dims = (%d,%d), want (2,2)", cube.NI, cube.NJ)
	}
}
