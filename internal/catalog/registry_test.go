package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/sonarlab/internal/formula"
)

func TestLookupUnknown(t *testing.T) {
	r := New()
	_, err := r.Lookup("SpeedOfSoundInVacuum")
	if !errors.Is(err, formula.ErrUnknownFormula) {
		t.Errorf("expected ErrUnknownFormula, got %v", err)
	}
	if _, err := r.Evaluate("SpeedOfSoundInVacuum", 1); !errors.Is(err, formula.ErrUnknownFormula) {
		t.Errorf("expected ErrUnknownFormula from Evaluate, got %v", err)
	}
}

func TestBuiltinNames(t *testing.T) {
	r := Default()
	for _, name := range []string{
		"SpeedOfSoundSeaWaterCoppens",
		"SpeedOfSoundSeaWaterChenMillero",
		"SpeedOfSoundSeaWaterSkone",
		"AbsorptionSoundSeaWaterFrancoisGarrison",
		"AbsorptionSoundSeaWaterTabulated",
		"TargetStrengthSphere",
		"DetectionIndex",
		"DepthToPressureLeroyParthiot",
		"FuelStabilizer",
	} {
		if _, err := r.Lookup(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if Default() != r {
		t.Error("Default should return the same registry")
	}
}

func TestListSorted(t *testing.T) {
	names := New().List()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}

func TestByCategoryCoversAll(t *testing.T) {
	r := New()
	total := 0
	for _, names := range r.ByCategory() {
		total += len(names)
	}
	if total != r.Len() {
		t.Errorf("categories hold %d formulas, registry has %d", total, r.Len())
	}
	if len(r.Categories()) != 5 {
		t.Errorf("expected 5 categories, got %v", r.Categories())
	}
}

func TestRegisterRejects(t *testing.T) {
	r := NewEmpty()
	s := &formula.Spec{Name: "Twice", Params: []formula.Param{{Name: "x"}}, Eval: formula.Fn1(func(x float64) float64 { return 2 * x })}
	if err := r.Register(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(s); err == nil {
		t.Error("expected duplicate error")
	}
	if err := r.Register(&formula.Spec{Name: "NoEval"}); err == nil {
		t.Error("expected error for spec without evaluator")
	}
}

func TestEvaluateByName(t *testing.T) {
	res, err := Default().Evaluate("TargetStrengthSphere", 900)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 10 * math.Log10(900.0*900.0/4); math.Abs(res.Value()-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, res.Value())
	}
}

func TestEvaluateCorrectedByName(t *testing.T) {
	r := Default()
	raw, _ := r.Evaluate("DepthToPressureLeroyParthiot", 1000, 45)
	res, err := r.EvaluateCorrected("DepthToPressureLeroyParthiot", formula.Constant(0.05), 1000, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Value()-raw.Value()-0.05) > 1e-12 {
		t.Errorf("expected correction of 0.05, got %g", res.Value()-raw.Value())
	}
	if _, err := r.EvaluateCorrected("Wavelength", formula.Constant(1), 1500, 1000); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBind(t *testing.T) {
	s, _ := Default().Lookup("SpeedOfSoundSeaWaterMackenzie")
	args, err := Bind(s, map[string]float64{"temperatureC": 4, "depthM": 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args[0] != 2000 || args[1] != 35 || args[2] != 4 {
		t.Errorf("expected [2000 35 4], got %v", args)
	}
	if _, err := Bind(s, map[string]float64{"pressure": 1}); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBindRoles(t *testing.T) {
	roles := map[string]float64{"temperature": 2, "salinity": 34, "depth": 3000}

	s, _ := Default().Lookup("SpeedOfSoundSeaWaterMedwin")
	if args := BindRoles(s, roles); args[0] != 3000 || args[1] != 34 || args[2] != 2 {
		t.Errorf("expected [3000 34 2], got %v", args)
	}

	// depth in km is left at its default
	c, _ := Default().Lookup("SpeedOfSoundSeaWaterCoppens")
	if args := BindRoles(c, roles); args[0] != 0 || args[2] != 2 {
		t.Errorf("expected depthKm default and T=2, got %v", args)
	}
}
