package seismic

import "testing"

func TestCellSeedDependsOnlyOnPosition(t *testing.T) {
	a := CellSeed(42, 3, 5, 10)
	b := CellSeed(42, 3, 5, 10)
	if a != b {
		t.Errorf("CellSeed is not deterministic: %d != %d", a, b)
	}
	if CellSeed(42, 3, 5, 10) == CellSeed(42, 4, 5, 10) {
		t.Error("CellSeed should vary with i")
	}
}

func TestAddNoiseToReflectionsZeroStdDevIsNoop(t *testing.T) {
	refl := [][]float64{{1, 2}, {3, 4}}
	want := [][]float64{{1, 2}, {3, 4}}
	AddNoiseToReflections(refl, 7, 0)
	for k := range refl {
		for o := range refl[k] {
			if refl[k][o] != want[k][o] {
				t.Errorf("stdDev=0 perturbed refl[%d][%d] = %v, want %v", k, o, refl[k][o], want[k][o])
			}
		}
	}
}

func TestAddNoiseToReflectionsIsSeedDeterministic(t *testing.T) {
	refl1 := [][]float64{{1, 2}, {3, 4}}
	refl2 := [][]float64{{1, 2}, {3, 4}}
	AddNoiseToReflections(refl1, 99, 0.1)
	AddNoiseToReflections(refl2, 99, 0.1)
	for k := range refl1 {
		for o := range refl1[k] {
			if refl1[k][o] != refl2[k][o] {
				t.Errorf("same seed produced different noise at [%d][%d]: %v != %v", k, o, refl1[k][o], refl2[k][o])
			}
		}
	}
}

func TestAddNoiseToReflectionsPerturbsValues(t *testing.T) {
	refl := [][]float64{{1, 2}, {3, 4}}
	orig := [][]float64{{1, 2}, {3, 4}}
	AddNoiseToReflections(refl, 1, 5.0)
	changed := false
	for k := range refl {
		for o := range refl[k] {
			if refl[k][o] != orig[k][o] {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("expected nonzero stdDev to perturb at least one value")
	}
}

func TestZeroOffsetSnapshot(t *testing.T) {
	refl := [][]float64{{1, 2}, {3, 4}, {}}
	got := ZeroOffsetSnapshot(refl)
	want := []float64{1, 3, 0}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("ZeroOffsetSnapshot[%d] = %v, want %v", k, got[k], want[k])
		}
	}
}
