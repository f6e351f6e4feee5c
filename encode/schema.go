package encode

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	"github.com/mferrera/seismic-forward"
)

// CubeAttrName is the single attribute name used for every output cube
// array: one float64 amplitude value per (i,j,k) cell. It must match
// cubeRecord's field name, since SchemaAttrs names the tiledb attribute
// after the Go struct field rather than a separate tag value.
const CubeAttrName = "Amplitude"

// cubeRecord describes the schema of one output cube array via struct
// tags, the way the teacher's PingHeaders/SensorMetadata describe a
// dense ping array; seismic.SchemaAttrs walks it with stagparser to build the
// attribute rather than hand-coding each NewAttribute/FilterList call.
type cubeRecord struct {
	Amplitude []float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=9)"`
}

// BuildCubeSchema constructs a dense 3D TileDB array schema of shape
// (ni, nj, nk), row-major, with the attribute(s) named on cubeRecord.
func BuildCubeSchema(ctx *tiledb.Context, ni, nj, nk int) (*tiledb.ArraySchema, error) {
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}
	defer domain.Free()

	dimI, err := tiledb.NewDimension(ctx, "i", tiledb.TILEDB_INT32, []int32{0, int32(ni - 1)}, int32(ni))
	if err != nil {
		return nil, errors.Join(seismic.ErrCreateDimTdb, err)
	}
	dimJ, err := tiledb.NewDimension(ctx, "j", tiledb.TILEDB_INT32, []int32{0, int32(nj - 1)}, int32(nj))
	if err != nil {
		return nil, errors.Join(seismic.ErrCreateDimTdb, err)
	}
	dimK, err := tiledb.NewDimension(ctx, "k", tiledb.TILEDB_INT32, []int32{0, int32(nk - 1)}, int32(nk))
	if err != nil {
		return nil, errors.Join(seismic.ErrCreateDimTdb, err)
	}

	if err := domain.AddDimensions(dimI, dimJ, dimK); err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}

	schema, err := tiledb.NewArraySchema(ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}

	if err := schema.SetDomain(domain); err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}
	if err := schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}
	if err := schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return nil, errors.Join(seismic.ErrCreateSchemaTdb, err)
	}

	if err := seismic.SchemaAttrs(&cubeRecord{}, schema, ctx); err != nil {
		return nil, errors.Join(seismic.ErrCreateAttributeTdb, err)
	}

	return schema, nil
}
