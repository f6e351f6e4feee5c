package encode

import "github.com/mferrera/seismic-forward"

// RunMetadata is the JSON sidecar written alongside an output cube:
// enough of the run's configuration and resulting extents for a
// downstream reader to interpret the cube without re-running the
// generator. Adapted from the teacher's WriteJson-via-VFS convention,
// generalised to a run-level metadata record.
type RunMetadata struct {
	Axis       string  `json:"axis"`
	AngleOrOffset float64 `json:"angle_or_offset"`
	PSSeismic  bool    `json:"ps_seismic"`
	NMOCorrect bool    `json:"nmo_correct"`

	Summary seismic.CubeSummary `json:"summary"`
}

// WriteMetadata serialises md to file_uri as indented JSON through
// TileDB's VFS layer.
func WriteMetadata(fileURI, configURI string, md RunMetadata) error {
	_, err := seismic.WriteJson(fileURI, configURI, md)
	return err
}
