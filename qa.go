package seismic

import "github.com/samber/lo"

// ModelQualityInfo reports consistency checks run once before
// generation starts: whether every earth-model grid shares the same
// lateral and reflector-stack dimensions, and whether the configured
// offset/angle list contains accidental duplicates. Adapted from a
// file-level quality-info pattern for consistency checks over a batch
// of records, generalised here to a batch of earth-model grids.
type ModelQualityInfo struct {
	ConsistentDimensions bool
	Dimensions           [][3]int
	DuplicateOffsets     []float64
	DuplicateAngles      []float64
}

// CheckEarthModel validates that Vp, Vs, Rho, Twt and Z all agree on
// (NI, NJ, NK), per §7 kind 1 (a dimension mismatch is a fatal
// configuration error upstream; this just surfaces the facts).
func CheckEarthModel(m *EarthModel) ModelQualityInfo {
	dims := [][3]int{
		{m.Vp.NI, m.Vp.NJ, m.Vp.NK},
		{m.Vs.NI, m.Vs.NJ, m.Vs.NK},
		{m.Rho.NI, m.Rho.NJ, m.Rho.NK},
		{m.Twt.NI, m.Twt.NJ, m.Twt.NK},
		{m.Z.NI, m.Z.NJ, m.Z.NK},
	}

	set := lo.Uniq(dims)

	return ModelQualityInfo{
		ConsistentDimensions: len(set) == 1,
		Dimensions:           dims,
	}
}

// CheckOffsets reports any duplicate offsets (NMO path) so the caller
// can warn before spending a run recomputing an identical trace twice.
func CheckOffsets(cfg *Config) ModelQualityInfo {
	return ModelQualityInfo{
		DuplicateOffsets: lo.FindDuplicates(cfg.Offsets),
		DuplicateAngles:  lo.FindDuplicates(cfg.Angles),
	}
}

// TraceStatusInfo reports the outcome of cross-checking an ingested
// per-trace status array against the mask test every pillar would
// otherwise have to pass on its own (§4.8).
type TraceStatusInfo struct {
	FlaggedBad        int
	MaskDisagreements int
}

// CheckTraceStatus validates m.TraceStatus has one byte per lateral
// cell and reports how many cells are flagged unusable by the ingest
// pipeline, and how many of those disagree with GenerateTraceOk's own
// elastic-parameter mask test (a sign the upstream status flag and the
// earth model grids have drifted out of sync).
func CheckTraceStatus(m *EarthModel) (TraceStatusInfo, error) {
	if m.TraceStatus == nil {
		return TraceStatusInfo{}, nil
	}
	if len(m.TraceStatus) != m.NX()*m.NY() {
		return TraceStatusInfo{}, ErrTraceStatusDimension
	}

	var info TraceStatusInfo
	for i := 0; i < m.NX(); i++ {
		for j := 0; j < m.NY(); j++ {
			bad := m.TraceStatus[i*m.NY()+j] == 0
			if bad {
				info.FlaggedBad++
			}
			if bad && GenerateTraceOk(m, i, j) {
				info.MaskDisagreements++
			}
		}
	}
	return info, nil
}

// ValidateTwtShift implements §7 kind 1's fatal dimension check: a
// configured TWT-shift grid must share (NI, NJ, NK) with the earth
// model's own TWT grid.
func ValidateTwtShift(m *EarthModel) error {
	if m.TwtShift == nil {
		return nil
	}
	if m.TwtShift.NI != m.Twt.NI || m.TwtShift.NJ != m.Twt.NJ || m.TwtShift.NK != m.Twt.NK {
		return ErrTwtDimensionMismatch
	}
	return nil
}
