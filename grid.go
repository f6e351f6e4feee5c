package seismic

// MissingValue is the sentinel used by regular surfaces (§6) to mark a
// cell outside the surveyed area.
const MissingValue = -999.0

// MaskSentinel is the twt(i,j,0) sentinel (§3) marking a pillar that
// falls outside the earth model: the whole lateral cell is masked.
const MaskSentinel = -999.0

// Grid3D is an abstract 3D array addressable by (i,j,k), NI=nx, NJ=ny,
// NK=nzrefl or nz (§6). Storage is a single flat slice in k-fastest
// order so that a lateral pillar (i,j,·) is contiguous.
type Grid3D struct {
	NI, NJ, NK int
	data       []float64
}

// NewGrid3D allocates a zeroed Grid3D of the given dimensions.
func NewGrid3D(ni, nj, nk int) *Grid3D {
	return &Grid3D{NI: ni, NJ: nj, NK: nk, data: make([]float64, ni*nj*nk)}
}

func (g *Grid3D) index(i, j, k int) int {
	return (i*g.NJ+j)*g.NK + k
}

// At returns the value at (i,j,k).
func (g *Grid3D) At(i, j, k int) float64 {
	return g.data[g.index(i, j, k)]
}

// Set stores the value at (i,j,k).
func (g *Grid3D) Set(i, j, k int, v float64) {
	g.data[g.index(i, j, k)] = v
}

// Values returns the grid's backing storage in (i,j,k) row-major
// order, for bulk I/O such as a single dense TileDB write query.
func (g *Grid3D) Values() []float64 {
	return g.data
}

// Pillar returns the k-indexed slice of values at lateral cell (i,j).
// The returned slice aliases the grid's storage; callers must not
// retain it across a Set on the same pillar if they need a stable copy.
func (g *Grid3D) Pillar(i, j int) []float64 {
	start := g.index(i, j, 0)
	return g.data[start : start+g.NK]
}

// Surface2D is a regular 2D surface addressable by (x,y), with a
// missing-value sentinel (§6). Used for the top-time and bottom-depth
// surfaces.
type Surface2D struct {
	NX, NY           int
	X0, Y0           float64
	DX, DY           float64
	values           []float64
}

// NewSurface2D allocates a zeroed Surface2D.
func NewSurface2D(nx, ny int, x0, y0, dx, dy float64) *Surface2D {
	return &Surface2D{NX: nx, NY: ny, X0: x0, Y0: y0, DX: dx, DY: dy, values: make([]float64, nx*ny)}
}

// IsMissing reports whether v is the surface's missing-value sentinel.
func (s *Surface2D) IsMissing(v float64) bool {
	return v == MissingValue
}

// Z returns the surface value nearest to world coordinate (x,y). Out of
// range coordinates are clamped to the nearest valid cell.
func (s *Surface2D) Z(x, y float64) float64 {
	ix := int((x - s.X0) / s.DX)
	iy := int((y - s.Y0) / s.DY)
	if ix < 0 {
		ix = 0
	}
	if ix >= s.NX {
		ix = s.NX - 1
	}
	if iy < 0 {
		iy = 0
	}
	if iy >= s.NY {
		iy = s.NY - 1
	}
	return s.values[ix*s.NY+iy]
}

// Set stores the value at grid index (ix,iy).
func (s *Surface2D) Set(ix, iy int, v float64) {
	s.values[ix*s.NY+iy] = v
}

// At returns the value at grid index (ix, iy) without coordinate lookup.
func (s *Surface2D) At(ix, iy int) float64 {
	return s.values[ix*s.NY+iy]
}

// EarthModel bundles the read-only grids that drive trace generation
// for one survey: compressional and shear velocity, density, two-way
// time to each reflector, and reflector depth. All grids share
// dimensions (NI=nx, NJ=ny, NK=nzrefl) per §3.
//
// The scheduler owns this value for the duration of a run; per-cell
// temporaries are transient and computed from it (see §9 "cyclic
// references").
type EarthModel struct {
	Vp, Vs, Rho *Grid3D
	Twt         *Grid3D
	Z           *Grid3D
	TwtShift    *Grid3D // optional, nil unless Config.TwtFile is set

	TopTime      *Surface2D
	BottomDepth  *Surface2D

	// ConstVp/ConstVs/ConstRho are the constant-filler values a masked
	// pillar's interior layers hold (§4.8 mask test), one scalar per
	// parameter for the whole model.
	ConstVp, ConstVs, ConstRho float64

	// TraceStatus is an optional per-lateral-cell status byte, NX*NY
	// long in (i outer, j inner) order, non-zero meaning the ingest
	// pipeline considers that trace usable. Nil unless the earth model
	// was read with an accompanying trace-status stream.
	TraceStatus []uint8
}

// NX, NY, NZRefl expose the lateral and reflector-stack dimensions.
func (m *EarthModel) NX() int     { return m.Vp.NI }
func (m *EarthModel) NY() int     { return m.Vp.NJ }
func (m *EarthModel) NZRefl() int { return m.Vp.NK }
