package soundspeed

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
		{"dry air 20C", DryAir(20), 343.29441, 1e-4},
		{"ideal gas 20C", AirIdealGas(20), 343.23617, 1e-3},
		{"cramer 20C", AirCramer(20, 101325, 0, 0.0004), 343.35947, 1e-3},
		{"cramer 0C", AirCramer(0, 101325, 0, 0.0004), 331.44767, 1e-3},
		{"marczak 20C", FreshWaterMarczak(20), 1482.37955, 1e-4},
		{"del grosso mader 20C", FreshWaterDelGrossoMader(20), 1482.34331, 1e-4},
		{"lubbers graaff 20C", FreshWaterLubbersGraaff(20), 1482.3, 1e-9},
		{"lubbers graaff wide 20C", FreshWaterLubbersGraaffWide(20), 1482.19, 1e-9},
		{"coppens surface", SeaWaterCoppens(0, 35, 25), 1534.33125, 1e-4},
		{"coppens 1km", SeaWaterCoppens(1, 35, 10), 1506.366, 1e-3},
		{"mackenzie surface", SeaWaterMackenzie(0, 35, 10), 1489.8034, 1e-4},
		{"mackenzie 1000m", SeaWaterMackenzie(1000, 35, 10), 1506.263761, 1e-5},
		{"medwin surface", SeaWaterMedwin(0, 35, 10), 1489.99, 1e-9},
		{"medwin 1000m", SeaWaterMedwin(1000, 35, 10), 1505.99, 1e-9},
		{"leroy69 surface", SeaWaterLeroy69(0, 35, 10), 1490.34, 1e-9},
		{"leroy2008 surface", SeaWaterLeroy2008(0, 35, 10, 45), 1489.8195, 1e-4},
		{"leroy2008 1000m", SeaWaterLeroy2008(1000, 35, 10, 45), 1506.1882, 1e-3},
		{"del grosso surface", SeaWaterDelGrosso(0, 35, 10), 1489.78938, 1e-4},
		{"del grosso 500 kg/cm2", SeaWaterDelGrosso(500, 35, 10), 1571.35854, 1e-3},
		{"chen millero surface", SeaWaterChenMillero(0, 35, 10), 1489.82234, 1e-4},
		{"wilson surface", SeaWaterWilson(0, 35, 10), 1490.2272010, 1e-6},
		{"wilson 100 kg/cm2", SeaWaterWilson(100, 35, 10), 1506.2281346, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("expected %.6f, got %.6f", tt.want, tt.got)
			}
		})
	}
}

// UNESCO check value from Fofonoff and Millard (1983).
func TestChenMilleroCheckValue(t *testing.T) {
	got := SeaWaterChenMillero(1000, 40, 40)
	if math.Abs(got-1731.995) > 1e-3 {
		t.Errorf("expected 1731.995, got %.5f", got)
	}
}

func TestSeaWaterModelsAgreeAtSurface(t *testing.T) {
	ref := SeaWaterChenMillero(0, 35, 10)
	models := map[string]float64{
		"mackenzie":  SeaWaterMackenzie(0, 35, 10),
		"medwin":     SeaWaterMedwin(0, 35, 10),
		"coppens":    SeaWaterCoppens(0, 35, 10),
		"leroy2008":  SeaWaterLeroy2008(0, 35, 10, 45),
		"del grosso": SeaWaterDelGrosso(0, 35, 10),
	}
	for name, v := range models {
		if math.Abs(v-ref) > 1 {
			t.Errorf("%s: %.3f differs from UNESCO %.3f by more than 1 m/s", name, v, ref)
		}
	}
}

// Del Grosso works in gauge kg/cm², Chen-Millero in bar.
func TestDelGrossoAgreesWithChenMilleroUnderPressure(t *testing.T) {
	const barPerKgCm2 = 0.980665
	for _, p := range []float64{100, 300, 500} {
		for _, temp := range []float64{2, 10, 25} {
			dg := SeaWaterDelGrosso(p, 35, temp)
			cm := SeaWaterChenMillero(p*barPerKgCm2, 35, temp)
			if math.Abs(dg-cm) > 1 {
				t.Errorf("p=%g T=%g: del grosso %.3f, chen millero %.3f", p, temp, dg, cm)
			}
		}
	}
}

func TestSkoneSelection(t *testing.T) {
	tests := []struct {
		name      string
		depth     float64
		salinity  float64
		temp      float64
		wantRule  string
		wantDiag  bool
		wantValue float64
	}{
		{"shallow uses medwin", 500, 35, 10, "Medwin", false, SeaWaterMedwin(500, 35, 10)},
		{"medwin upper bound inclusive", 1000, 35, 10, "Medwin", false, SeaWaterMedwin(1000, 35, 10)},
		{"deep uses mackenzie", 3000, 35, 10, "Mackenzie", false, SeaWaterMackenzie(3000, 35, 10)},
		{"brackish deep uses coppens", 2000, 10, 10, "Coppens", false, SeaWaterCoppens(2, 10, 10)},
		{"nothing matches falls back to coppens", 9000, 10, 10, "Coppens", true, SeaWaterCoppens(9, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rule, diags := SeaWaterSkone(tt.depth, tt.salinity, tt.temp)
			if rule != tt.wantRule {
				t.Errorf("expected rule %s, got %s", tt.wantRule, rule)
			}
			if (len(diags) > 0) != tt.wantDiag {
				t.Errorf("expected diagnostic=%v, got %v", tt.wantDiag, diags)
			}
			if tt.wantDiag && diags[0].Kind != formula.NoRuleMatched {
				t.Errorf("expected NoRuleMatched, got %v", diags[0].Kind)
			}
			if math.Abs(v-tt.wantValue) > 1e-9 {
				t.Errorf("expected %.6f, got %.6f", tt.wantValue, v)
			}
		})
	}
}

func TestSpecsEvaluateAtDefaults(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Specs() {
		if seen[s.Name] {
			t.Errorf("duplicate spec %s", s.Name)
		}
		seen[s.Name] = true

		res, err := s.Evaluate(s.Defaults()...)
		if err != nil {
			t.Errorf("%s: unexpected error %v", s.Name, err)
			continue
		}
		if res.HasDiagnostics() {
			t.Errorf("%s: defaults raised diagnostics %v", s.Name, res.Diagnostics)
		}
		if v := res.Value(); v < 300 || v > 1800 {
			t.Errorf("%s: implausible speed %.3f", s.Name, v)
		}
	}
}

func TestSpecOutOfRangeStillComputes(t *testing.T) {
	var leroy *formula.Spec
	for _, s := range Specs() {
		if s.Name == "SpeedOfSoundSeaWaterLeroy69" {
			leroy = s
		}
	}
	if leroy == nil {
		t.Fatal("Leroy69 spec missing")
	}

	res, err := leroy.Evaluate(0, 35, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Param != "temperatureC" {
		t.Fatalf("expected one temperature diagnostic, got %v", res.Diagnostics)
	}
	if math.Abs(res.Value()-SeaWaterLeroy69(0, 35, 30)) > 1e-12 {
		t.Errorf("out-of-range value differs from direct call")
	}

	if _, err := leroy.Evaluate(0, math.NaN(), 10); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for NaN salinity, got %v", err)
	}
}

func specByName(t *testing.T, name string) *formula.Spec {
	t.Helper()
	for _, s := range Specs() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("%s spec missing", name)
	return nil
}

func TestValidityWindowDiagnostics(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		args      []float64
		wantParam string
		direct    func(d, s, t float64) float64
	}{
		{"leroy69 inside", "SpeedOfSoundSeaWaterLeroy69", []float64{500, 35, 10}, "", SeaWaterLeroy69},
		{"leroy69 window edges", "SpeedOfSoundSeaWaterLeroy69", []float64{1000, 30, -2}, "", SeaWaterLeroy69},
		{"leroy69 too deep", "SpeedOfSoundSeaWaterLeroy69", []float64{1500, 35, 10}, "depthM", SeaWaterLeroy69},
		{"medwin inside", "SpeedOfSoundSeaWaterMedwin", []float64{500, 35, 10}, "", SeaWaterMedwin},
		{"medwin window edges", "SpeedOfSoundSeaWaterMedwin", []float64{1000, 45, 35}, "", SeaWaterMedwin},
		{"medwin too deep", "SpeedOfSoundSeaWaterMedwin", []float64{2000, 35, 10}, "depthM", SeaWaterMedwin},
		{"medwin too warm", "SpeedOfSoundSeaWaterMedwin", []float64{100, 35, 36}, "temperatureC", SeaWaterMedwin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := specByName(t, tt.spec).Evaluate(tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantParam == "" {
				if res.HasDiagnostics() {
					t.Errorf("expected no diagnostics, got %v", res.Diagnostics)
				}
			} else if len(res.Diagnostics) != 1 || res.Diagnostics[0].Param != tt.wantParam ||
				res.Diagnostics[0].Kind != formula.OutOfDeclaredRange {
				t.Errorf("expected one %s diagnostic, got %v", tt.wantParam, res.Diagnostics)
			}
			want := tt.direct(tt.args[0], tt.args[1], tt.args[2])
			if math.Abs(res.Value()-want) > 1e-12 {
				t.Errorf("expected %.6f, got %.6f", want, res.Value())
			}
		})
	}
}
