package search

import (
	"path/filepath"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// trawl recursively walks uri via TileDB's VFS, collecting every file
// whose basename matches pattern. Ported unchanged in shape from the
// teacher's *.gsf trawler; only the match pattern varies by caller.
func trawl(vfs *tiledb.VFS, pattern string, uri string, items []string) []string {
	dirs, files, err := vfs.List(uri)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		match, err := filepath.Match(pattern, filepath.Base(file))
		if err != nil {
			panic(err)
		}

		if match {
			items = append(items, file)
		}
	}

	for _, dir := range dirs {
		items = trawl(vfs, pattern, dir, items)
	}

	return items
}

func newVFS(configURI string) (*tiledb.Config, *tiledb.Context, *tiledb.VFS, error) {
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
		return nil, nil, nil, err
	}

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		config.Free()
		return nil, nil, nil, err
	}

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		ctx.Free()
		config.Free()
		return nil, nil, nil, err
	}

	return config, ctx, vfs, nil
}

// FindEarthModels recursively searches for earth-model grid files
// (suffix ".grid") under uri, seamlessly across local filesystems or
// an object store such as S3 via TileDB's VFS bindings. Adapted from
// the teacher's FindGsf, generalised from a single fixed pattern to
// the earth-model grid naming convention.
func FindEarthModels(uri, configURI string) []string {
	config, ctx, vfs, err := newVFS(configURI)
	if err != nil {
		panic(err)
	}
	defer config.Free()
	defer ctx.Free()
	defer vfs.Free()

	return trawl(vfs, "*.grid", uri, make([]string, 0))
}

// FindWavelets recursively searches for LANDMARK ASCII wavelet files
// (suffix ".wavelet") under uri.
func FindWavelets(uri, configURI string) []string {
	config, ctx, vfs, err := newVFS(configURI)
	if err != nil {
		panic(err)
	}
	defer config.Free()
	defer ctx.Free()
	defer vfs.Free()

	return trawl(vfs, "*.wavelet", uri, make([]string, 0))
}
