package seismic

import (
	"bytes"
	"encoding/binary"
)

// DecodeTraceStatusArray decodes a per-trace status byte array from an
// auxiliary ingest stream: one byte per lateral trace, non-zero
// meaning the trace carries usable data. Adapted from the teacher's
// fixed-length flags-array decode, generalised from a per-beam array
// to a per-trace array.
func DecodeTraceStatusArray(reader *bytes.Reader, ntraces uint32) ([]uint8, int64, error) {
	data := make([]uint8, ntraces)
	if err := binary.Read(reader, binary.BigEndian, &data); err != nil {
		return nil, 0, err
	}
	return data, int64(ntraces), nil
}
