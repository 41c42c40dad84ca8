package absorption

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
		{"francois garrison sea 10 kHz", SeaWaterFrancoisGarrison(10, 10, 35, 0, 8), 0.962637, 1e-5},
		{"francois garrison sea deep", SeaWaterFrancoisGarrison(1, 4, 35, 1000, 8), 0.061029, 1e-5},
		{"francois garrison fresh 25C", FreshWaterFrancoisGarrison(100, 25, 0), 1.9036875, 1e-6},
		{"boric acid relaxation", RelaxationFrequencyBoricAcid(10, 35), 1.116515, 1e-5},
		{"magnesium sulfate relaxation", RelaxationFrequencyMagnesiumSulfate(10, 35), 75.93114, 1e-4},
		{"fisher simmons 10 kHz", FisherSimmons(10000, 10, 0), 7.274279e-4, 1e-9},
		{"ainslie mccolm 10 kHz", AinslieMcColm(10, 10, 35, 0, 8), 0.986572, 1e-5},
		{"thorp 1 kHz", Thorp(1), 0.069004, 1e-5},
		{"thorp 10 kHz", Thorp(10), 1.187030, 1e-5},
		{"iso 9613 1 kHz", AirISO9613(1000, 20, 50, 101.325), 4.6647e-3, 1e-6},
		{"iso 9613 4 kHz", AirISO9613(4000, 20, 50, 101.325), 2.96655e-2, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("expected %g, got %g", tt.want, tt.got)
			}
		})
	}
}

// T == 20 belongs to the cold coefficient set.
func TestFreshWaterThresholdInclusive(t *testing.T) {
	at20 := FreshWaterFrancoisGarrison(100, 20, 0)
	if math.Abs(at20-2.201) > 1e-9 {
		t.Errorf("expected 2.201 dB/km at 20C, got %.9f", at20)
	}
	above := FreshWaterFrancoisGarrison(100, 20.0001, 0)
	if math.Abs(above-2.19999356) > 1e-6 {
		t.Errorf("expected warm set just above 20C, got %.9f", above)
	}
}

func TestSeaWaterIncludesPureWater(t *testing.T) {
	sea := SeaWaterFrancoisGarrison(500, 10, 35, 0, 8)
	fresh := FreshWaterFrancoisGarrison(500, 10, 0)
	if sea <= fresh {
		t.Errorf("sea water %.3f should exceed pure water %.3f", sea, fresh)
	}
}

func TestTabulatedLookup(t *testing.T) {
	v, err := SeaWaterTabulated(10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := SeaWaterFrancoisGarrison(10, 10, 35, 0, 8); v != want {
		t.Errorf("expected %g, got %g", want, v)
	}

	for _, key := range [][2]float64{{11, 10}, {10, 15}, {32, 10}, {-2, 0.1}} {
		if _, err := SeaWaterTabulated(key[0], key[1]); !errors.Is(err, formula.ErrNoTableEntry) {
			t.Errorf("T=%g f=%g: expected ErrNoTableEntry, got %v", key[0], key[1], err)
		}
	}
}

func TestTableBuiltOnce(t *testing.T) {
	if SeaWaterTable() != SeaWaterTable() {
		t.Error("expected the same table instance")
	}
	if n := len(SeaWaterTable().Rows()); n != 16 {
		t.Errorf("expected 16 temperature rows, got %d", n)
	}
}

func TestTabulatedSpecMissIsError(t *testing.T) {
	var tab *formula.Spec
	for _, s := range Specs() {
		if s.Name == "AbsorptionSoundSeaWaterTabulated" {
			tab = s
		}
	}
	if tab == nil {
		t.Fatal("tabulated spec missing")
	}
	if _, err := tab.Evaluate(9, 10); !errors.Is(err, formula.ErrNoTableEntry) {
		t.Errorf("expected ErrNoTableEntry, got %v", err)
	}
	res, err := tab.Evaluate(0, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Value()-0.00148003) > 1e-7 {
		t.Errorf("expected 0.00148003, got %g", res.Value())
	}
}

func TestSpecsEvaluateAtDefaults(t *testing.T) {
	for _, s := range Specs() {
		res, err := s.Evaluate(s.Defaults()...)
		if err != nil {
			t.Errorf("%s: unexpected error %v", s.Name, err)
			continue
		}
		if res.HasDiagnostics() {
			t.Errorf("%s: defaults raised diagnostics %v", s.Name, res.Diagnostics)
		}
		if v := res.Value(); v <= 0 {
			t.Errorf("%s: expected positive value, got %g", s.Name, v)
		}
	}
}
