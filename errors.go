package seismic

import (
	"errors"
)

// Configuration and I/O errors (spec §7 kind 1 and 2). These are fatal:
// the caller surfaces them to the user and ends the run.
var ErrTwtDimensionMismatch = errors.New("Error TWT-Shift Grid Dimensions Do Not Match Earth Model")
var ErrWaveletFile = errors.New("Error Reading Wavelet File")
var ErrWaveletFormat = errors.New("Error Unsupported Wavelet File Format")
var ErrEarthModelDimension = errors.New("Error Earth Model Grids Have Inconsistent Dimensions")
var ErrEmptyOffsetSet = errors.New("Error Offset Set Must Contain At Least One Offset")
var ErrSinkClosed = errors.New("Error Trace Sink Is Already Closed")
var ErrUnknownAxis = errors.New("Error Unknown Vertical Axis")
var ErrUnknownReflectionMode = errors.New("Error Unknown Reflection Mode")
var ErrTraceStatusDimension = errors.New("Error Trace Status Array Length Does Not Match Lateral Grid")

// TileDB / output plumbing errors, carried over from the teacher's
// writer conventions and reused by the output package.
var ErrCreateSchemaTdb = errors.New("Error Creating TileDB Schema")
var ErrCreateArrayTdb = errors.New("Error Creating TileDB Array")
var ErrCreateDimTdb = errors.New("Error Creating TileDB Dimension")
var ErrCreateAttributeTdb = errors.New("Error Creating Attribute For TileDB Array")
var ErrAddFilters = errors.New("Error Adding Filter To FilterList")
var ErrFiltList = errors.New("Error Creating TileDB Filter List")
var ErrNewFilt = errors.New("Error Creating TileDB Filter")
var ErrZstdFilt = errors.New("Error Creating TileDB ZStandard Filter")
var ErrWriteCubeTdb = errors.New("Error Writing Seismic Cube TileDB Array")
