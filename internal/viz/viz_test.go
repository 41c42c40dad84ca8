package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/sweep"
)

func testResult(ys ...float64) *sweep.Result {
	res := &sweep.Result{
		Formula:   "AbsorptionThorp",
		Param:     "frequencyKHz",
		ParamUnit: "kHz",
		Outputs:   formula.Scalar("alpha", "dB/km"),
	}
	for i, y := range ys {
		res.Points = append(res.Points, sweep.Point{X: float64(i + 1), Outputs: []float64{y}})
	}
	return res
}

func TestPlotSweep(t *testing.T) {
	out, err := PlotSweep(testResult(1, 2, 3, 4, 5), 0, DefaultPlotOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "alpha [dB/km] vs frequencyKHz 1..5 kHz") {
		t.Errorf("missing caption in:\n%s", out)
	}
}

func TestPlotSweepNonFinite(t *testing.T) {
	if _, err := PlotSweep(testResult(1, math.Inf(-1), 3, math.NaN(), 5), 0, DefaultPlotOptions()); err != nil {
		t.Errorf("gaps should still plot: %v", err)
	}
	if _, err := PlotSweep(testResult(math.NaN(), math.Inf(1)), 0, DefaultPlotOptions()); err == nil {
		t.Error("expected error for a series with no finite values")
	}
	if _, err := PlotSweep(testResult(1, 2), 1, DefaultPlotOptions()); err == nil {
		t.Error("expected error for missing output")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("empty sparkline = %q", got)
	}
	out := Sparkline([]float64{0, 1, math.NaN(), 3}, 4)
	if !strings.ContainsRune(out, '▁') || !strings.ContainsRune(out, '█') {
		t.Errorf("expected lowest and highest bars in %q", out)
	}
}

func TestFormulaTable(t *testing.T) {
	reg := catalog.Default()
	out := FormulaTable(reg.Specs())
	for _, name := range []string{"FORMULA", "SpeedOfSoundSeaWaterMackenzie", "AbsorptionThorp", "FuelStabilizer"} {
		if !strings.Contains(out, name) {
			t.Errorf("table missing %s", name)
		}
	}
}

func TestPanels(t *testing.T) {
	s, err := catalog.Default().Lookup("SpeedOfSoundSeaWaterMackenzie")
	if err != nil {
		t.Fatal(err)
	}
	if out := SpecPanel(s); !strings.Contains(out, "salinityPpt") {
		t.Errorf("spec panel missing parameter:\n%s", out)
	}

	args := []float64{9000, 35, 10}
	res, err := s.Evaluate(args...)
	if err != nil {
		t.Fatal(err)
	}
	out := ResultPanel(s, args, res)
	if !strings.Contains(out, "9000") || !strings.Contains(out, "depthM") {
		t.Errorf("result panel missing inputs:\n%s", out)
	}
	if !res.HasDiagnostics() || !strings.Contains(out, res.Diagnostics[0].Message) {
		t.Errorf("result panel missing diagnostic:\n%s", out)
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme(ThemeSonar.Name)

	if GetTheme("nope").Name != "sonar" {
		t.Error("unknown theme should fall back to sonar")
	}
	SetTheme("abyss")
	if CurrentTheme.Name != "abyss" {
		t.Errorf("expected abyss, got %s", CurrentTheme.Name)
	}
	if NextTheme().Name != "minimal" || NextTheme().Name != "sonar" {
		t.Error("themes should cycle in order")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
