package seismic

// Pillar bundles the per-(i,j) column vectors the generation pipeline
// needs: interval velocities/density and cumulative two-way time to
// each reflector, plus reflector depth for the depth-axis converter.
type Pillar struct {
	Vp, Vs, Rho []float64
	Twt         []float64
	Z           []float64
	TwtShift    []float64 // optional, empty unless Config.TwtFile is set
}

// PillarAt extracts the Pillar for lateral cell (i,j) from an
// EarthModel.
func PillarAt(m *EarthModel, i, j int) Pillar {
	nk := m.NZRefl()
	p := Pillar{
		Vp:  append([]float64(nil), m.Vp.Pillar(i, j)...),
		Vs:  append([]float64(nil), m.Vs.Pillar(i, j)...),
		Rho: append([]float64(nil), m.Rho.Pillar(i, j)...),
		Twt: append([]float64(nil), m.Twt.Pillar(i, j)...),
		Z:   append([]float64(nil), m.Z.Pillar(i, j)...),
	}
	if m.TwtShift != nil {
		p.TwtShift = append([]float64(nil), m.TwtShift.Pillar(i, j)...)
	}
	_ = nk
	return p
}

// reflectivity computes refl[k][o] for every layer contrast k and
// every entry o of theta[k], using the layer-boundary contrasts
// (vp[k+1]-vp[k], etc.) between consecutive reflectors, matching the
// source's findNMOReflections loop shape.
func reflectivity(model *ReflectionModel, vp, vs, rho []float64, theta [][]float64) [][]float64 {
	n := len(theta)
	if m := len(vp) - 1; m < n {
		n = m
	}
	if n < 0 {
		n = 0
	}
	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		row := make([]float64, len(theta[k]))
		diffVp := vp[k+1] - vp[k]
		meanVp := 0.5 * (vp[k+1] + vp[k])
		diffVs := vs[k+1] - vs[k]
		meanVs := 0.5 * (vs[k+1] + vs[k])
		diffRho := rho[k+1] - rho[k]
		meanRho := 0.5 * (rho[k+1] + rho[k])
		for o, th := range theta[k] {
			c := model.ComputeConstants(th)
			row[o] = model.GetReflection(c, diffVp, meanVp, diffRho, meanRho, diffVs, meanVs)
		}
		out[k] = row
	}
	return out
}

// AxisGrids carries the regular sampling axes the driver walks when
// producing time/depth/shifted-time output (§4.7).
type AxisGrids struct {
	T0 []float64 // regular vertical-time axis, t0 + k*dt centers handled by convolution
	Z0 []float64 // regular depth axis
}

// Runtime bundles everything the driver needs that does not vary
// per-cell: the reflection model, wavelet, configuration, and output
// sink/monitor.
type Runtime struct {
	Model    *ReflectionModel
	Wavelet  *Wavelet
	Config   *Config
	Sink     TraceSink
	Monitor  *Monitor
	ConstVpBottom float64
}

// GenerateAll drives the full pipeline of §4.8 over every lateral
// cell visited by geom, in the traversal order geom selects (index or
// inline/crossline mode).
func GenerateAll(m *EarthModel, geom *LateralGeometry, rt *Runtime) {
	done := 0
	geom.Traverse(func(i, j int, x, y float64) {
		GenerateCell(m, i, j, x, y, rt)
		done++
		if rt.Monitor != nil {
			rt.Monitor.Tick(done)
		}
	})
	if rt.Monitor != nil {
		rt.Monitor.Done()
	}
}

// GenerateCell implements §4.8's per-cell orchestration: the mask
// test, the offset/NMO or angle-stack pipeline, and hand-off to the
// configured sink.
func GenerateCell(m *EarthModel, i, j int, x, y float64, rt *Runtime) {
	masked := !GenerateTraceOk(m, i, j) || m.TopTime.IsMissing(m.TopTime.Z(x, y))

	cfg := rt.Config
	if masked {
		writeZeroTraces(cfg, rt.Sink, i, j)
		return
	}

	p := PillarAt(m, i, j)

	if cfg.NMOCorrect {
		generateNMOCell(m, p, i, j, x, y, rt)
	} else {
		generateAngleStackCell(m, p, i, j, x, y, rt)
	}
}

func writeZeroTraces(cfg *Config, sink TraceSink, i, j int) {
	angleCount := len(cfg.Offsets)
	if !cfg.NMOCorrect {
		angleCount = len(cfg.Angles)
	}
	zeroTime := make([]float64, cfg.Nt)
	zeroDepth := make([]float64, cfg.Nz)

	for a := 0; a < angleCount; a++ {
		if cfg.Output.Time {
			sink.WriteTrace(AxisTime, a, i, j, zeroTime)
		}
		if cfg.Output.Depth {
			sink.WriteTrace(AxisDepth, a, i, j, zeroDepth)
		}
		if cfg.Output.ShiftedTime {
			sink.WriteTrace(AxisShiftedTime, a, i, j, zeroTime)
		}
	}
}

// generateNMOCell drives the offset-indexed NMO path: §4.3 (vrms,
// theta, twtx) → §4.2 (reflectivity) → optional noise → §4.4/§4.5
// (limits, convolution) → §4.6 (NMO correction) → §4.7 (axis
// conversion), one offset column per trace.
func generateNMOCell(m *EarthModel, p Pillar, i, j int, x, y float64, rt *Runtime) {
	cfg := rt.Config
	offsets := cfg.Offsets

	vrms := Vrms(p.Vp, p.Twt)
	theta := ThetaGrid(p.Twt, vrms, offsets)
	refl := reflectivityForOffsets(rt.Model, p, theta)

	if cfg.WhiteNoise {
		seed := CellSeed(cfg.Seed, i, j, m.NX())
		AddNoiseToReflections(refl, seed, cfg.StdDev)
	}

	twtx := TWTXGrid(p.Twt, vrms, offsets)
	nMin, nMax := SeisLimits(rt.axisT0(), p.Twt, vrms, offsets)

	timegridPos := ConvolveOffsetNMO(refl, twtx, rt.Wavelet, cfg.WaveletScale, cfg.Nt, cfg.T0, cfg.Dt, nMin, nMax, false)

	vrmsReg := VrmsRegular(vrms, p.Twt, rt.axisT0())
	twtxReg := TWTXGrid(rt.axisT0(), vrmsReg, offsets)

	nmoTime, maxSample := NMOCorrect(rt.axisT0(), timegridPos, twtxReg, nMin, nMax)

	if cfg.Output.Time {
		for o := range offsets {
			trace := columnOf(nmoTime, o)
			rt.Sink.WriteTrace(AxisTime, o, i, j, trace)
		}
	}

	if cfg.Output.Depth {
		zBot := m.BottomDepth.Z(x, y)
		zExtrap, twtExtrap := ExtrapolateZTWT(p.Twt, p.Z, zBot, rt.ConstVpBottom)
		depthTrace := ConvertSeis(twtExtrap, rt.axisT0(), zExtrap, rt.axisZ0(), nmoTime, maxSample)
		for o := range offsets {
			rt.Sink.WriteTrace(AxisDepth, o, i, j, columnOf(depthTrace, o))
		}
	}

	if cfg.Output.ShiftedTime && len(p.TwtShift) > 0 {
		shiftTrace := ConvertSeis(p.Twt, rt.axisT0(), p.TwtShift, rt.axisT0(), nmoTime, maxSample)
		for o := range offsets {
			rt.Sink.WriteTrace(AxisShiftedTime, o, i, j, columnOf(shiftTrace, o))
		}
	}
}

// generateAngleStackCell drives the supplemented non-NMO angle path:
// reflectivity is computed once per fixed angle (no offset geometry),
// and each output axis is produced by convolving directly against
// that axis's own time mapping (ConvolveOnAxis), matching the
// source's generateSeismic time/depth/timeshift branches.
func generateAngleStackCell(m *EarthModel, p Pillar, i, j int, x, y float64, rt *Runtime) {
	cfg := rt.Config
	angles := cfg.Angles

	theta := make([][]float64, len(p.Twt)-1)
	for k := range theta {
		row := make([]float64, len(angles))
		copy(row, angles)
		theta[k] = row
	}
	refl := reflectivity(rt.Model, p.Vp, p.Vs, p.Rho, theta)
	// one reflectivity row per contrast, placed at the upper reflector's
	// time, as on the NMO path.
	twtRefl := p.Twt[:len(refl)]

	if cfg.WhiteNoise {
		seed := CellSeed(cfg.Seed, i, j, m.NX())
		AddNoiseToReflections(refl, seed, cfg.StdDev)
	}

	if cfg.Output.Time {
		out := ConvolveAngleStack(refl, twtRefl, rt.Wavelet, cfg.WaveletScale, cfg.Nt, cfg.T0, cfg.Dt, false)
		for a := range angles {
			rt.Sink.WriteTrace(AxisTime, a, i, j, columnOf(out, a))
		}
	}

	if cfg.Output.Depth {
		zBot := m.BottomDepth.Z(x, y)
		zExtrap, twtExtrap := ExtrapolateZTWT(p.Twt, p.Z, zBot, rt.ConstVpBottom)
		axisTime := func(z float64) float64 { return FindTFromZ(z, zExtrap, twtExtrap) }
		out := ConvolveOnAxis(refl, twtRefl, rt.Wavelet, cfg.WaveletScale, cfg.Nz, cfg.Z0, cfg.Dz, axisTime, false)
		for a := range angles {
			rt.Sink.WriteTrace(AxisDepth, a, i, j, columnOf(out, a))
		}
	}

	if cfg.Output.ShiftedTime && len(p.TwtShift) > 0 {
		axisTime := func(t float64) float64 { return FindTFromZ(t, p.TwtShift, p.Twt) }
		out := ConvolveOnAxis(refl, twtRefl, rt.Wavelet, cfg.WaveletScale, cfg.Nt, cfg.T0, cfg.Dt, axisTime, false)
		for a := range angles {
			rt.Sink.WriteTrace(AxisShiftedTime, a, i, j, columnOf(out, a))
		}
	}
}

func reflectivityForOffsets(model *ReflectionModel, p Pillar, theta [][]float64) [][]float64 {
	return reflectivity(model, p.Vp, p.Vs, p.Rho, theta)
}

func columnOf(grid [][]float64, col int) []float64 {
	out := make([]float64, len(grid))
	for k := range grid {
		if col < len(grid[k]) {
			out[k] = grid[k][col]
		}
	}
	return out
}

func (rt *Runtime) axisT0() []float64 {
	cfg := rt.Config
	t0 := make([]float64, cfg.Nt)
	for k := range t0 {
		t0[k] = cfg.T0 + float64(k)*cfg.Dt
	}
	return t0
}

func (rt *Runtime) axisZ0() []float64 {
	cfg := rt.Config
	z0 := make([]float64, cfg.Nz)
	for k := range z0 {
		z0[k] = cfg.Z0 + float64(k)*cfg.Dz
	}
	return z0
}
