package dosing

import (
	"math"
	"testing"
)

func TestFuelStabilizer(t *testing.T) {
	tests := []struct {
		liters float64
		ml     float64
		drops  float64
	}{
		{0, 0, 0},
		{1, 1.25, 25},
		{20, 25, 500},
		{3.5, 4.375, 87.5},
	}

	for _, tt := range tests {
		d := FuelStabilizer(tt.liters)
		if math.Abs(d.Milliliters-tt.ml) > 1e-9 {
			t.Errorf("%g L: expected %g ml, got %g", tt.liters, tt.ml, d.Milliliters)
		}
		if math.Abs(d.Drops-tt.drops) > 1e-9 {
			t.Errorf("%g L: expected %g drops, got %g", tt.liters, tt.drops, d.Drops)
		}
	}
}

func TestFuelStabilizerWithRatio(t *testing.T) {
	d := FuelStabilizerWith(10, Ratio{StabilizerMl: 30, PerFuelL: 10, MlPerDrop: 0.1})
	if math.Abs(d.Milliliters-30) > 1e-9 || math.Abs(d.Drops-300) > 1e-9 {
		t.Errorf("expected {30 300}, got %+v", d)
	}
}

func TestSpecHasTwoOutputs(t *testing.T) {
	s := Specs()[0]
	res, err := s.Evaluate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(res.Outputs))
	}
	if math.Abs(res.Outputs[0]-1.25) > 1e-9 || math.Abs(res.Outputs[1]-25) > 1e-9 {
		t.Errorf("expected [1.25 25], got %v", res.Outputs)
	}
}
