package seismic

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// TraceSink is where a generated trace is handed off once computed
// (§4.8). Implementations must accept writes in the lateral
// traversal's scan order; the file-backed implementation does not
// support random access.
type TraceSink interface {
	// WriteTrace stores one (i,j) trace for the given axis and
	// angle/offset index. trace is ordered k=0..n.
	WriteTrace(axis Axis, angleIndex int, i, j int, trace []float64) error

	// Close flushes and releases any resources held by the sink.
	Close() error
}

// MemorySink accumulates traces directly into in-memory Grid3D cubes,
// one per (axis, angle). This is the default sink while the estimated
// working set fits inside the configured memory budget.
type MemorySink struct {
	cubes map[sinkKey]*Grid3D
	nx, ny, n int
}

type sinkKey struct {
	axis  Axis
	angle int
}

// NewMemorySink allocates a MemorySink. Cubes are created lazily per
// (axis, angle) the first time a trace for that key arrives, with
// n samples per trace.
func NewMemorySink(nx, ny, n int) *MemorySink {
	return &MemorySink{cubes: make(map[sinkKey]*Grid3D), nx: nx, ny: ny, n: n}
}

func (s *MemorySink) WriteTrace(axis Axis, angleIndex int, i, j int, trace []float64) error {
	key := sinkKey{axis, angleIndex}
	cube, ok := s.cubes[key]
	if !ok {
		cube = NewGrid3D(s.nx, s.ny, s.n)
		s.cubes[key] = cube
	}
	for k, v := range trace {
		cube.Set(i, j, k, v)
	}
	return nil
}

func (s *MemorySink) Close() error { return nil }

// Cube returns the accumulated cube for (axis, angleIndex), or nil if
// no trace was ever written for that key.
func (s *MemorySink) Cube(axis Axis, angleIndex int) *Grid3D {
	return s.cubes[sinkKey{axis, angleIndex}]
}

// FileBackedSink implements the §6 file-backed overflow mode: each
// (axis, angle) pair is a raw little-endian float32 stream named
// `<axis>_<angle>`, appended to in scan order (i outer, j middle, k
// inner) as required by §5's ordering guarantee. Samples within one
// trace are appended contiguously, so callers MUST call WriteTrace in
// the same (i,j) order for every key to keep the streams aligned.
type FileBackedSink struct {
	dir       string
	configURI string
	handles   map[sinkKey]*VFSFile
}

// NewFileBackedSink prepares a sink that writes into dir (a TileDB
// VFS-addressable directory URI).
func NewFileBackedSink(dir, configURI string) *FileBackedSink {
	return &FileBackedSink{dir: dir, configURI: configURI, handles: make(map[sinkKey]*VFSFile)}
}

func axisName(axis Axis) string {
	switch axis {
	case AxisDepth:
		return "depth"
	case AxisShiftedTime:
		return "timeshift"
	default:
		return "time"
	}
}

func (s *FileBackedSink) WriteTrace(axis Axis, angleIndex int, i, j int, trace []float64) error {
	key := sinkKey{axis, angleIndex}
	f, ok := s.handles[key]
	if !ok {
		uri := fmt.Sprintf("%s/%s_%d", s.dir, axisName(axis), angleIndex)
		var err error
		f, err = CreateVFSFile(uri, s.configURI)
		if err != nil {
			return err
		}
		s.handles[key] = f
	}

	buf := make([]byte, 4*len(trace))
	for k, v := range trace {
		binary.LittleEndian.PutUint32(buf[4*k:], math.Float32bits(float32(v)))
	}
	_, err := f.handler.Write(buf)
	return err
}

func (s *FileBackedSink) Close() error {
	var firstErr error
	for _, f := range s.handles {
		f.Close()
	}
	return firstErr
}

// URIFor returns the VFS URI a given (axis, angle) stream was (or
// will be) written to, for the final re-read/assembly pass.
func (s *FileBackedSink) URIFor(axis Axis, angleIndex int) string {
	return fmt.Sprintf("%s/%s_%d", s.dir, axisName(axis), angleIndex)
}

// ReadRawFloatStream reads a raw little-endian float32 stream back as
// float64, for the file-backed mode's final assembly.
func ReadRawFloatStream(uri, configURI string, count int) ([]float64, error) {
	f, err := OpenVFSFile(uri, configURI, true)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 4*count)
	if _, err := io.ReadFull(f.Stream, buf); err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for k := range out {
		bits := binary.LittleEndian.Uint32(buf[4*k:])
		out[k] = float64(math.Float32frombits(bits))
	}
	return out, nil
}

// AssembleCube reads back a whole FileBackedSink stream for (axis,
// angleIndex) and reshapes it into a Grid3D of (nx, ny, n), undoing the
// scan-order append WriteTrace performed. Used by the final assembly
// pass.
func (s *FileBackedSink) AssembleCube(axis Axis, angleIndex, nx, ny, n int) (*Grid3D, error) {
	uri := s.URIFor(axis, angleIndex)
	flat, err := ReadRawFloatStream(uri, s.configURI, nx*ny*n)
	if err != nil {
		return nil, err
	}
	cube := NewGrid3D(nx, ny, n)
	copy(cube.Values(), flat)
	return cube, nil
}

// EstimateWorkingSetBytes implements §4.8's memory-budget estimate:
// nx·ny·(nzrefl·(2+nAngles) + nz·nAngles·depthOut + nt·nAngles·timeOut + ½·nz).
func EstimateWorkingSetBytes(nx, ny, nzrefl, nz, nt, nAngles int, depthOut, timeOut bool) int64 {
	const bytesPerSample = 8

	perCell := float64(nzrefl) * float64(2+nAngles)
	if depthOut {
		perCell += float64(nz) * float64(nAngles)
	}
	if timeOut {
		perCell += float64(nt) * float64(nAngles)
	}
	perCell += 0.5 * float64(nz)

	total := float64(nx) * float64(ny) * perCell * bytesPerSample
	return int64(total)
}
