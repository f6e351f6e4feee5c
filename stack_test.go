package seismic

import (
	"math"
	"testing"
)

// property 5 / S4: the stack output equals the arithmetic mean of the
// per-angle cubes at every (i,j,k).
func TestStackCubesIsArithmeticMean(t *testing.T) {
	reflectivities := []float64{0.2, 0.1, 0.0}

	cubes := make([]*Grid3D, len(reflectivities))
	for a, r := range reflectivities {
		c := NewGrid3D(1, 1, 1)
		c.Set(0, 0, 0, r)
		cubes[a] = c
	}

	stack := StackCubes(cubes)
	if got, want := stack.At(0, 0, 0), 0.1; math.Abs(got-want) > 1e-12 {
		t.Errorf("stack(0,0,0) = %v, want %v", got, want)
	}
}

func TestStackCubesEveryCell(t *testing.T) {
	cubes := make([]*Grid3D, 4)
	for a := range cubes {
		c := NewGrid3D(2, 2, 3)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 3; k++ {
					c.Set(i, j, k, float64(a+1))
				}
			}
		}
		cubes[a] = c
	}

	stack := StackCubes(cubes)
	want := (1.0 + 2.0 + 3.0 + 4.0) / 4.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				if got := stack.At(i, j, k); got != want {
					t.Errorf("stack(%d,%d,%d) = %v, want %v", i, j, k, got, want)
				}
			}
		}
	}
}

func TestStackCubesEmpty(t *testing.T) {
	if got := StackCubes(nil); got != nil {
		t.Errorf("StackCubes(nil) = %v, want nil", got)
	}
}
