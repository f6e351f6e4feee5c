package seismic

// LateralGeometry maps the (i,j) lateral grid of §3 to world (x,y)
// coordinates and, when a survey geometry is configured, to
// inline/crossline indices. Modelled on a coefficient-driven
// coordinate mapper pattern for beam geolocation, generalised from a
// per-beam transform to a per-cell regular-grid transform.
type LateralGeometry struct {
	NX, NY int
	X0, Y0 float64
	DX, DY float64

	// HasSegyGeometry reports whether inline/crossline traversal is
	// available. When false, only index-mode traversal applies.
	HasSegyGeometry bool
	ILMin, ILMax, ILStep int
	XLMin, XLMax, XLStep int
}

// NewLateralGeometry builds an index-only geometry: (x,y) resolved
// directly from (i,j) on the regular grid, with no inline/crossline
// mapping available.
func NewLateralGeometry(nx, ny int, x0, y0, dx, dy float64) *LateralGeometry {
	return &LateralGeometry{NX: nx, NY: ny, X0: x0, Y0: y0, DX: dx, DY: dy}
}

// WithSegyGeometry attaches an inline/crossline traversal range,
// enabling inline/crossline traversal mode (§4.8).
func (g *LateralGeometry) WithSegyGeometry(ilMin, ilMax, ilStep, xlMin, xlMax, xlStep int) *LateralGeometry {
	g.HasSegyGeometry = true
	g.ILMin, g.ILMax, g.ILStep = ilMin, ilMax, ilStep
	g.XLMin, g.XLMax, g.XLStep = xlMin, xlMax, xlStep
	return g
}

// XY returns the world coordinate of the center of lateral cell (i,j).
func (g *LateralGeometry) XY(i, j int) (x, y float64) {
	return g.X0 + (float64(i)+0.5)*g.DX, g.Y0 + (float64(j)+0.5)*g.DY
}

// IndexFromInlineCrossline resolves (i,j) from a given (il,xl) pair
// under the currently configured inline/crossline range. Geometry
// outside the grid is clamped to the nearest valid index, matching the
// defensive bounds handling surrounding the source's findLoopIndeces.
func (g *LateralGeometry) IndexFromInlineCrossline(il, xl int) (i, j int) {
	i = (il - g.ILMin) / stepOrOne(g.ILStep)
	j = (xl - g.XLMin) / stepOrOne(g.XLStep)
	if i < 0 {
		i = 0
	}
	if i >= g.NX {
		i = g.NX - 1
	}
	if j < 0 {
		j = 0
	}
	if j >= g.NY {
		j = g.NY - 1
	}
	return i, j
}

func stepOrOne(step int) int {
	if step == 0 {
		return 1
	}
	return step
}

// CellVisitor is called once per lateral cell to visit, carrying both
// the (i,j) grid index and its world (x,y) coordinate.
type CellVisitor func(i, j int, x, y float64)

// Traverse walks the lateral grid in the mode selected by the
// geometry (§4.8): inline/crossline mode when a survey geometry is
// configured, index mode otherwise.
func (g *LateralGeometry) Traverse(visit CellVisitor) {
	if g.HasSegyGeometry {
		g.traverseInlineCrossline(visit)
		return
	}
	g.traverseIndex(visit)
}

func (g *LateralGeometry) traverseIndex(visit CellVisitor) {
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			x, y := g.XY(i, j)
			visit(i, j, x, y)
		}
	}
}

func (g *LateralGeometry) traverseInlineCrossline(visit CellVisitor) {
	ilStep := stepOrOne(g.ILStep)
	xlStep := stepOrOne(g.XLStep)
	for il := g.ILMin; il <= g.ILMax; il += ilStep {
		for xl := g.XLMin; xl <= g.XLMax; xl += xlStep {
			i, j := g.IndexFromInlineCrossline(il, xl)
			x, y := g.XY(i, j)
			visit(i, j, x, y)
		}
	}
}
