package seismic

import "testing"

func TestCheckEarthModelConsistentDimensions(t *testing.T) {
	m := newTestEarthModel(3, 4, 5)
	info := CheckEarthModel(m)
	if !info.ConsistentDimensions {
		t.Errorf("expected consistent dimensions, got %v", info.Dimensions)
	}
}

func TestCheckEarthModelMismatch(t *testing.T) {
	m := newTestEarthModel(3, 4, 5)
	m.Rho = NewGrid3D(3, 4, 6)
	info := CheckEarthModel(m)
	if info.ConsistentDimensions {
		t.Error("expected dimension mismatch to be detected")
	}
}

func TestCheckOffsetsFindsDuplicates(t *testing.T) {
	cfg := &Config{Offsets: []float64{0, 500, 500, 1000}, Angles: []float64{0.1, 0.2}}
	info := CheckOffsets(cfg)
	if len(info.DuplicateOffsets) != 1 || info.DuplicateOffsets[0] != 500 {
		t.Errorf("DuplicateOffsets = %v, want [500]", info.DuplicateOffsets)
	}
	if len(info.DuplicateAngles) != 0 {
		t.Errorf("DuplicateAngles = %v, want none", info.DuplicateAngles)
	}
}

func TestValidateTwtShiftNilIsOk(t *testing.T) {
	m := newTestEarthModel(2, 2, 3)
	if err := ValidateTwtShift(m); err != nil {
		t.Errorf("ValidateTwtShift with nil TwtShift = %v, want nil", err)
	}
}

func TestValidateTwtShiftDimensionMismatch(t *testing.T) {
	m := newTestEarthModel(2, 2, 3)
	m.TwtShift = NewGrid3D(2, 2, 4)
	if err := ValidateTwtShift(m); err != ErrTwtDimensionMismatch {
		t.Errorf("ValidateTwtShift = %v, want ErrTwtDimensionMismatch", err)
	}
}

func TestCheckTraceStatusNilIsOk(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	info, err := CheckTraceStatus(m)
	if err != nil {
		t.Fatalf("CheckTraceStatus with nil TraceStatus = %v, want nil", err)
	}
	if info.FlaggedBad != 0 {
		t.Errorf("FlaggedBad = %d, want 0", info.FlaggedBad)
	}
}

func TestCheckTraceStatusDimensionMismatch(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	m.TraceStatus = []uint8{1, 1, 1}
	if _, err := CheckTraceStatus(m); err != ErrTraceStatusDimension {
		t.Errorf("CheckTraceStatus = %v, want ErrTraceStatusDimension", err)
	}
}

func TestCheckTraceStatusCountsFlaggedBad(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	// (0,0) is an all-constant pillar: GenerateTraceOk is false, so a
	// status byte of 0 (bad) agrees with the mask test.
	m.TraceStatus = []uint8{0, 1, 1, 1}
	info, err := CheckTraceStatus(m)
	if err != nil {
		t.Fatalf("CheckTraceStatus = %v, want nil", err)
	}
	if info.FlaggedBad != 1 {
		t.Errorf("FlaggedBad = %d, want 1", info.FlaggedBad)
	}
	if info.MaskDisagreements != 0 {
		t.Errorf("MaskDisagreements = %d, want 0", info.MaskDisagreements)
	}
}

func TestCheckTraceStatusDetectsDisagreement(t *testing.T) {
	m := newTestEarthModel(2, 2, 4)
	m.Vp.Set(0, 0, 1, 2500) // (0,0) now has a deviating interior layer: GenerateTraceOk is true
	// but the ingest pipeline still flags it bad: 0 at (0,0).
	m.TraceStatus = []uint8{0, 1, 1, 1}
	info, err := CheckTraceStatus(m)
	if err != nil {
		t.Fatalf("CheckTraceStatus = %v, want nil", err)
	}
	if info.MaskDisagreements != 1 {
		t.Errorf("MaskDisagreements = %d, want 1", info.MaskDisagreements)
	}
}
