package encode

import "testing"

func TestFileNameValue(t *testing.T) {
	got := FileName("run1_", "time", 1500, false, "_v2", "tiledb")
	want := "run1_seismic_time_1500_v2.tiledb"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestFileNameStack(t *testing.T) {
	got := FileName("run1_", "depth", 0, true, "_v2", "tiledb")
	want := "run1_seismic_depth_stack_v2.tiledb"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestFileNameIgnoresValueWhenStacked(t *testing.T) {
	a := FileName("", "timeshift", 10, true, "", "tiledb")
	b := FileName("", "timeshift", 999, true, "", "tiledb")
	if a != b {
		t.Errorf("stack file names should not depend on value: %q != %q", a, b)
	}
}
