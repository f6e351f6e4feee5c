package seismic

import "testing"

func TestSummarizeCube(t *testing.T) {
	geom := NewLateralGeometry(2, 2, 0, 0, 10, 10)
	cube := NewGrid3D(2, 2, 3)
	cube.Set(0, 0, 0, -5)
	cube.Set(1, 1, 2, 7)

	axisValues := []float64{0, 10, 20}
	s := SummarizeCube(cube, geom, axisValues)

	if s.SampleCount != 2*2*3 {
		t.Errorf("SampleCount = %d, want %d", s.SampleCount, 2*2*3)
	}
	if s.MinAmplitude != -5 || s.MaxAmplitude != 7 {
		t.Errorf("amplitude range = [%v,%v], want [-5,7]", s.MinAmplitude, s.MaxAmplitude)
	}
	if s.MinAxis != 0 || s.MaxAxis != 20 {
		t.Errorf("axis range = [%v,%v], want [0,20]", s.MinAxis, s.MaxAxis)
	}
	wantX0, wantY0 := geom.XY(0, 0)
	wantX1, wantY1 := geom.XY(1, 1)
	if s.MinX != wantX0 || s.MaxX != wantX1 {
		t.Errorf("x range = [%v,%v], want [%v,%v]", s.MinX, s.MaxX, wantX0, wantX1)
	}
	if s.MinY != wantY0 || s.MaxY != wantY1 {
		t.Errorf("y range = [%v,%v], want [%v,%v]", s.MinY, s.MaxY, wantY0, wantY1)
	}
}

func TestSummarizeCubeEmptyAxis(t *testing.T) {
	geom := NewLateralGeometry(1, 1, 0, 0, 1, 1)
	cube := NewGrid3D(1, 1, 1)
	s := SummarizeCube(cube, geom, nil)
	if s.MinAxis != 0 || s.MaxAxis != 0 {
		t.Errorf("empty axisValues should leave MinAxis/MaxAxis at zero value, got [%v,%v]", s.MinAxis, s.MaxAxis)
	}
}
