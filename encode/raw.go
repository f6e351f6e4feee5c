package encode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mferrera/seismic-forward"
)

// FileName builds the output file name for one (axis, angle-or-offset)
// cube, following the original naming convention:
// "<prefix>seismic_<axis>_<value><suffix>.<ext>", and
// "<prefix>seismic_<axis>_stack<suffix>.<ext>" for the stacked cube.
func FileName(prefix, axis string, value float64, stack bool, suffix, ext string) string {
	if stack {
		return fmt.Sprintf("%sseismic_%s_stack%s.%s", prefix, axis, suffix, ext)
	}
	return fmt.Sprintf("%sseismic_%s_%g%s.%s", prefix, axis, value, suffix, ext)
}

// WriteSegyLikeCube writes a lateral x vertical cube as a raw,
// big-endian float32 binary stream, one trace per lateral cell in
// (i outer, j inner) order — a flattened, header-free analogue of the
// original's SEGY::writeSegy, adapted for the TileDB VFS layer instead
// of a local SEG-Y file.
func WriteSegyLikeCube(fileURI, configURI string, cube *seismic.Grid3D) error {
	f, err := seismic.CreateVFSFile(fileURI, configURI)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 4*cube.NK)
	for i := 0; i < cube.NI; i++ {
		for j := 0; j < cube.NJ; j++ {
			trace := cube.Pillar(i, j)
			for k, v := range trace {
				binary.BigEndian.PutUint32(buf[4*k:], math.Float32bits(float32(v)))
			}
			if _, err := f.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteStormLikeGrid writes a lateral x vertical cube as a raw,
// little-endian float64 binary stream together with its axis
// sampling header (NI, NJ, NK, then the regular axis start/step),
// a flattened analogue of the original's STORM::writeStorm.
func WriteStormLikeGrid(fileURI, configURI string, cube *seismic.Grid3D, axis0, daxis float64) error {
	f, err := seismic.CreateVFSFile(fileURI, configURI)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 5*8)
	binary.LittleEndian.PutUint64(header[0:], uint64(cube.NI))
	binary.LittleEndian.PutUint64(header[8:], uint64(cube.NJ))
	binary.LittleEndian.PutUint64(header[16:], uint64(cube.NK))
	binary.LittleEndian.PutUint64(header[24:], math.Float64bits(axis0))
	binary.LittleEndian.PutUint64(header[32:], math.Float64bits(daxis))
	if _, err := f.Write(header); err != nil {
		return err
	}

	buf := make([]byte, 8*cube.NK)
	for i := 0; i < cube.NI; i++ {
		for j := 0; j < cube.NJ; j++ {
			trace := cube.Pillar(i, j)
			for k, v := range trace {
				binary.LittleEndian.PutUint64(buf[8*k:], math.Float64bits(v))
			}
			if _, err := f.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}
