package encode

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	"github.com/mferrera/seismic-forward"
)

// WriteCubeTdb creates a dense TileDB array at arrayURI and writes the
// whole of cube into it in a single row-major write query, then
// attaches md as array-level JSON metadata. Adapted from the
// teacher's ArrayOpen/WriteArrayMetadata pair, applied to a full-cube
// write instead of a per-ping append.
func WriteCubeTdb(arrayURI, configURI string, cube *seismic.Grid3D, md RunMetadata) error {
	var (
		config *tiledb.Config
		err    error
	)
	if configURI == "" {
		config, err = tiledb.NewConfig()
	} else {
		config, err = tiledb.LoadConfig(configURI)
	}
	if err != nil {
		return err
	}
	defer config.Free()

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return err
	}
	defer ctx.Free()

	schema, err := BuildCubeSchema(ctx, cube.NI, cube.NJ, cube.NK)
	if err != nil {
		return err
	}

	if err := tiledb.CreateArray(ctx, arrayURI, schema); err != nil {
		return errors.Join(seismic.ErrCreateArrayTdb, err)
	}

	array, err := seismic.ArrayOpen(ctx, arrayURI, tiledb.TILEDB_WRITE)
	if err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}
	defer array.Free()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}

	values := cube.Values()
	if _, err := query.SetDataBuffer(CubeAttrName, values); err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}

	if err := query.Submit(); err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}
	if err := query.Finalize(); err != nil {
		return errors.Join(seismic.ErrWriteCubeTdb, err)
	}
	array.Close()

	return seismic.WriteArrayMetadata(ctx, arrayURI, "run_metadata", md)
}
