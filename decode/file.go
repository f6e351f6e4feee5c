// Package decode reads the raw inputs a generation run is configured
// with: the LANDMARK ASCII wavelet format, earth-model grids, and an
// optional TWT-shift grid, all addressed through TileDB's VFS layer so
// a run can read from local disk or an object store uniformly.
package decode

import (
	"bufio"
	"io"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// openVFSReader opens uri for streamed reading through TileDB's VFS
// layer and wraps it in a buffered reader, for the line-oriented
// wavelet parser and the raw grid readers alike.
func openVFSReader(uri, configURI string) (*bufio.Reader, func() error, error) {
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
		return nil, nil, err
	}

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		config.Free()
		return nil, nil, err
	}

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		ctx.Free()
		config.Free()
		return nil, nil, err
	}

	handler, err := vfs.Open(uri, tiledb.TILEDB_VFS_READ)
	if err != nil {
		vfs.Free()
		ctx.Free()
		config.Free()
		return nil, nil, err
	}

	closer := func() error {
		err := handler.Close()
		vfs.Free()
		ctx.Free()
		config.Free()
		return err
	}

	return bufio.NewReader(handler), closer, nil
}

// readAll drains a VFS-backed reader fully, used by the raw grid
// readers which need the complete byte stream to decode a fixed-shape
// binary layout.
func readAll(uri, configURI string) ([]byte, error) {
	r, closer, err := openVFSReader(uri, configURI)
	if err != nil {
		return nil, err
	}
	defer closer()

	return io.ReadAll(r)
}
