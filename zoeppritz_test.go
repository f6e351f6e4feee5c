package seismic

import (
	"math"
	"testing"
)

func TestPPReflectionZeroContrastIsZero(t *testing.T) {
	model := NewReflectionModel(false)
	c := model.ComputeConstants(0.2)
	got := model.GetReflection(c, 0, 2000, 0, 2200, 0, 1000)
	if got != 0 {
		t.Errorf("PP reflection with zero contrast = %v, want 0", got)
	}
}

func TestPSReflectionVanishesAtNormalIncidence(t *testing.T) {
	model := NewReflectionModel(true)
	c := model.ComputeConstants(0)
	got := model.GetReflection(c, 200, 2000, 100, 2200, 80, 1000)
	if math.Abs(got) > 1e-12 {
		t.Errorf("PS reflection at theta=0 = %v, want 0 (converted wave vanishes at normal incidence)", got)
	}
}

func TestPSReflectionNonzeroOffNormal(t *testing.T) {
	model := NewReflectionModel(true)
	c := model.ComputeConstants(0.4)
	got := model.GetReflection(c, 200, 2000, 100, 2200, 80, 1000)
	if got == 0 {
		t.Error("PS reflection off normal incidence should be nonzero for a nonzero contrast")
	}
}

func TestNewReflectionModelSelectsMode(t *testing.T) {
	if NewReflectionModel(false).Mode != ModePP {
		t.Error("psSeismic=false should select ModePP")
	}
	if NewReflectionModel(true).Mode != ModePS {
		t.Error("psSeismic=true should select ModePS")
	}
}
