package seismic

import (
	"bytes"
	"encoding/binary"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// Tell reports the current position within a stream opened for
// reading or writing.
func Tell(stream Stream) (int64, error) {
	pos, err := stream.Seek(0, 1)
	return pos, err
}

// Stream caters for a generic reader/writer so that code can handle
// both a stream backed by a file on disk or object store, and an
// in-memory byte buffer, uniformly. This module deals with either a
// *tiledb.VFSfh or a *bytes.Reader, and all we care about are Read
// and Seek.
type Stream interface {
	Read(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
}

// GenericStream decides, from the caller's inMemory flag, whether a
// VFS file handle should be read entirely into memory or left as a
// streamed handle. The in-memory path buffers the whole
// file up front so that random-access reads during trace generation
// never touch the VFS again.
func GenericStream(stream *tiledb.VFSfh, size uint64, inMemory bool) (Stream, error) {
	if inMemory {
		buffer := make([]byte, size)
		err := binary.Read(stream, binary.BigEndian, &buffer)
		if err != nil {
			return nil, err
		}
		reader := bytes.NewReader(buffer)
		return reader, nil
	}
	return stream, nil
}

// VFSFile bundles an opened TileDB VFS handle with the context/VFS it
// was created from, so the caller can release all three together.
// Generalised from the GSF streamed-read connection bundle to the raw
// binary streams the file-backed overflow sink and encode's raw cube
// writers use; wavelet files and earth-model grids are read through
// decode's own VFS reader instead.
type VFSFile struct {
	URI      string
	filesize uint64
	config   *tiledb.Config
	ctx      *tiledb.Context
	vfs      *tiledb.VFS
	handler  *tiledb.VFSfh
	Stream
}

// OpenVFSFile opens uri for streamed reading through TileDB's VFS
// layer and constructs a VFSFile, optionally buffering the whole file
// into memory.
func OpenVFSFile(uri string, configURI string, inMemory bool) (*VFSFile, error) {
	var (
		f      VFSFile
		config *tiledb.Config
		err    error
	)

	f.URI = uri

	if configURI == "" {
		config, err = tiledb.NewConfig()
	} else {
		config, err = tiledb.LoadConfig(configURI)
	}
	if err != nil {
		return nil, err
	}
	f.config = config

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return nil, err
	}
	f.ctx = ctx

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return nil, err
	}
	f.vfs = vfs

	handler, err := vfs.Open(uri, tiledb.TILEDB_VFS_READ)
	if err != nil {
		return nil, err
	}
	f.handler = handler

	filesize, err := vfs.FileSize(uri)
	if err != nil {
		return nil, err
	}
	f.filesize = filesize

	stream, err := GenericStream(handler, filesize, inMemory)
	if err != nil {
		return nil, err
	}
	f.Stream = stream

	return &f, nil
}

// CreateVFSFile opens uri for streamed writing through TileDB's VFS
// layer, truncating any existing content. Used by the file-backed
// overflow sink to write one raw float32 stream per angle, and by
// encode's raw cube writers.
func CreateVFSFile(uri string, configURI string) (*VFSFile, error) {
	var (
		f      VFSFile
		config *tiledb.Config
		err    error
	)

	f.URI = uri

	if configURI == "" {
		config, err = tiledb.NewConfig()
	} else {
		config, err = tiledb.LoadConfig(configURI)
	}
	if err != nil {
		return nil, err
	}
	f.config = config

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return nil, err
	}
	f.ctx = ctx

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return nil, err
	}
	f.vfs = vfs

	handler, err := vfs.Open(uri, tiledb.TILEDB_VFS_WRITE)
	if err != nil {
		return nil, err
	}
	f.handler = handler
	f.Stream = handler

	return &f, nil
}

// Write writes to the underlying VFS handle directly; valid only for
// files opened via CreateVFSFile.
func (f *VFSFile) Write(p []byte) (int, error) {
	return f.handler.Write(p)
}

// Close releases the VFS handle and its owning context/config, in
// that order.
func (f *VFSFile) Close() {
	f.handler.Close()
	f.vfs.Free()
	f.ctx.Free()
	f.config.Free()
}

// RemoveVFSFile deletes the underlying VFS object, used once the
// file-backed overflow mode has finished re-reading its intermediate
// streams (§5: "intermediate files MUST be removed after successful
// re-read").
func RemoveVFSFile(uri string, configURI string) error {
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

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return err
	}
	defer vfs.Free()

	return vfs.RemoveFile(uri)
}
