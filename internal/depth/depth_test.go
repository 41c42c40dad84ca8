package depth

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/sonarlab/internal/formula"
)

func TestReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"leroy parthiot 1000 m", DepthToPressureLeroyParthiot(1000, 45), 10.1064263, 1e-6},
		{"leroy parthiot 1000 m lat 30", DepthToPressureLeroyParthiot(1000, 30), 10.0930434, 1e-6},
		{"saunders 1000 m lat 30", DepthToPressureSaunders(1000, 30), 1009.55403, 1e-4},
		{"unesco check value", PressureToDepthUNESCO(10000, 30), 9712.653, 1e-3},
		{"gravity equator", GravityAtLatitude(0), 9.780318, 1e-12},
		{"gravity 45", GravityAtLatitude(45), 9.80618988, 1e-7},
		{"hydrostatic", PressureHydrostatic(10, 1000, 9.81), 98100, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("expected %.7f, got %.7f", tt.want, tt.got)
			}
		})
	}
}

func TestLeroyParthiotRoundTrip(t *testing.T) {
	for _, lat := range []float64{0, 30, 45, 60, 90} {
		for z := 0.0; z <= 10000; z += 250 {
			back := PressureToDepthLeroyParthiot(DepthToPressureLeroyParthiot(z, lat), lat)
			if math.Abs(back-z) > 0.5 {
				t.Errorf("lat=%g z=%g: round trip residual %.3f m", lat, z, back-z)
			}
		}
	}
}

func TestSurfaceIsZero(t *testing.T) {
	if p := DepthToPressureLeroyParthiot(0, 45); p != 0 {
		t.Errorf("expected 0 MPa at the surface, got %g", p)
	}
	if p := DepthToPressureSaunders(0, 45); math.Abs(p) > 1e-9 {
		t.Errorf("expected 0 dbar at the surface, got %g", p)
	}
}

func TestCorrections(t *testing.T) {
	raw := DepthToPressureLeroyParthiot(2000, 45)

	if got := DepthToPressureLeroyParthiotCorrected(2000, 45, formula.None()); got != raw {
		t.Errorf("None should leave %g unchanged, got %g", raw, got)
	}
	if got := DepthToPressureLeroyParthiotCorrected(2000, 45, formula.Constant(0.1)); math.Abs(got-(raw+0.1)) > 1e-12 {
		t.Errorf("Constant: expected %g, got %g", raw+0.1, got)
	}

	depth := PressureToDepthLeroyParthiot(20, 45)
	scaled := formula.Func(func(v float64) float64 { return -0.001 * v })
	if got := PressureToDepthLeroyParthiotCorrected(20, 45, scaled); math.Abs(got-0.999*depth) > 1e-9 {
		t.Errorf("Func: expected %g, got %g", 0.999*depth, got)
	}
}

func TestCorrectableSpecs(t *testing.T) {
	for _, s := range Specs() {
		wantCorrectable := s.Name == "DepthToPressureLeroyParthiot" || s.Name == "PressureToDepthLeroyParthiot"
		if s.Correctable != wantCorrectable {
			t.Errorf("%s: correctable=%v", s.Name, s.Correctable)
		}

		_, err := s.EvaluateCorrected(formula.Constant(1), s.Defaults()...)
		if wantCorrectable && err != nil {
			t.Errorf("%s: unexpected error %v", s.Name, err)
		}
		if !wantCorrectable && !errors.Is(err, formula.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", s.Name, err)
		}
	}
}
