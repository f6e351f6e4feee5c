package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mferrera/seismic-forward"
)

// GridSpec describes the fixed shape of a raw binary grid file: NI*NJ*NK
// big-endian float64 samples in k-fastest order, matching
// seismic.Grid3D's own storage layout so the bytes can be read directly
// into it.
type GridSpec struct {
	NI, NJ, NK int
}

// ReadGrid3D reads a raw binary grid file into a seismic.Grid3D. The
// file must contain exactly spec.NI*spec.NJ*spec.NK big-endian float64
// values.
func ReadGrid3D(uri, configURI string, spec GridSpec) (*seismic.Grid3D, error) {
	want := spec.NI * spec.NJ * spec.NK
	buf, err := readAll(uri, configURI)
	if err != nil {
		return nil, err
	}
	if len(buf) != want*8 {
		return nil, fmt.Errorf("decode: grid %q: expected %d bytes, got %d", uri, want*8, len(buf))
	}

	g := seismic.NewGrid3D(spec.NI, spec.NJ, spec.NK)
	for i := 0; i < spec.NI; i++ {
		for j := 0; j < spec.NJ; j++ {
			for k := 0; k < spec.NK; k++ {
				n := (i*spec.NJ+j)*spec.NK + k
				bits := binary.BigEndian.Uint64(buf[8*n:])
				g.Set(i, j, k, math.Float64frombits(bits))
			}
		}
	}
	return g, nil
}

// SurfaceSpec describes the fixed shape and sampling of a raw binary
// 2D surface file: NX*NY big-endian float64 samples, row-major in x.
type SurfaceSpec struct {
	NX, NY     int
	X0, Y0     float64
	DX, DY     float64
}

// ReadSurface2D reads a raw binary surface file into a
// seismic.Surface2D.
func ReadSurface2D(uri, configURI string, spec SurfaceSpec) (*seismic.Surface2D, error) {
	want := spec.NX * spec.NY
	buf, err := readAll(uri, configURI)
	if err != nil {
		return nil, err
	}
	if len(buf) != want*8 {
		return nil, fmt.Errorf("decode: surface %q: expected %d bytes, got %d", uri, want*8, len(buf))
	}

	s := seismic.NewSurface2D(spec.NX, spec.NY, spec.X0, spec.Y0, spec.DX, spec.DY)
	for ix := 0; ix < spec.NX; ix++ {
		for iy := 0; iy < spec.NY; iy++ {
			n := ix*spec.NY + iy
			bits := binary.BigEndian.Uint64(buf[8*n:])
			s.Set(ix, iy, math.Float64frombits(bits))
		}
	}
	return s, nil
}

// EarthModelURIs names the raw grid/surface files that together make
// up one earth model, one URI per field of seismic.EarthModel.
type EarthModelURIs struct {
	Vp, Vs, Rho string
	Twt, Z      string
	TwtShift    string // optional; empty disables the shifted-time axis

	TopTime     string
	BottomDepth string

	// TraceStatus is optional; empty disables the ingest QA cross-check
	// (seismic.CheckTraceStatus) against the earth model's own mask test.
	TraceStatus string

	ConstVp, ConstVs, ConstRho float64
}

// readTraceStatus loads the raw per-trace status byte stream named by
// uri and decodes it with seismic.DecodeTraceStatusArray, one byte per
// lateral cell.
func readTraceStatus(uri, configURI string, ntraces uint32) ([]uint8, error) {
	buf, err := readAll(uri, configURI)
	if err != nil {
		return nil, err
	}
	status, _, err := seismic.DecodeTraceStatusArray(bytes.NewReader(buf), ntraces)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// ReadEarthModel loads every grid and surface named by uris under a
// common GridSpec/SurfaceSpec, and validates internal consistency via
// seismic.CheckEarthModel before returning.
func ReadEarthModel(uris EarthModelURIs, configURI string, gridSpec GridSpec, surfSpec SurfaceSpec) (*seismic.EarthModel, error) {
	vp, err := ReadGrid3D(uris.Vp, configURI, gridSpec)
	if err != nil {
		return nil, err
	}
	vs, err := ReadGrid3D(uris.Vs, configURI, gridSpec)
	if err != nil {
		return nil, err
	}
	rho, err := ReadGrid3D(uris.Rho, configURI, gridSpec)
	if err != nil {
		return nil, err
	}
	twt, err := ReadGrid3D(uris.Twt, configURI, gridSpec)
	if err != nil {
		return nil, err
	}
	z, err := ReadGrid3D(uris.Z, configURI, gridSpec)
	if err != nil {
		return nil, err
	}

	topTime, err := ReadSurface2D(uris.TopTime, configURI, surfSpec)
	if err != nil {
		return nil, err
	}
	bottomDepth, err := ReadSurface2D(uris.BottomDepth, configURI, surfSpec)
	if err != nil {
		return nil, err
	}

	m := &seismic.EarthModel{
		Vp: vp, Vs: vs, Rho: rho,
		Twt: twt, Z: z,
		TopTime:     topTime,
		BottomDepth: bottomDepth,
		ConstVp:     uris.ConstVp,
		ConstVs:     uris.ConstVs,
		ConstRho:    uris.ConstRho,
	}

	if uris.TwtShift != "" {
		shift, err := ReadTwtShift(uris.TwtShift, configURI, gridSpec)
		if err != nil {
			return nil, err
		}
		m.TwtShift = shift
		if err := seismic.ValidateTwtShift(m); err != nil {
			return nil, err
		}
	}

	if uris.TraceStatus != "" {
		status, err := readTraceStatus(uris.TraceStatus, configURI, uint32(gridSpec.NI*gridSpec.NJ))
		if err != nil {
			return nil, err
		}
		m.TraceStatus = status
		if _, err := seismic.CheckTraceStatus(m); err != nil {
			return nil, err
		}
	}

	info := seismic.CheckEarthModel(m)
	if !info.ConsistentDimensions {
		return nil, seismic.ErrEarthModelDimension
	}

	return m, nil
}
