package sonar

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestTargetStrengthSphere(t *testing.T) {
	got := TargetStrengthSphere(900)
	want := 10 * math.Log10(900.0*900.0/4)
	if math.Abs(got-want) > tol {
		t.Errorf("expected %f, got %f", want, got)
	}

	prev := math.Inf(-1)
	for r := 0.5; r < 2000; r *= 1.7 {
		ts := TargetStrengthSphere(r)
		if ts <= prev {
			t.Errorf("target strength not increasing at r=%g: %f <= %f", r, ts, prev)
		}
		prev = ts
	}
}

func TestSourceLevelFromPower(t *testing.T) {
	if got := SourceLevelFromPower(1, 0); math.Abs(got-170.8) > tol {
		t.Errorf("expected 170.8 dB for 1 W, got %f", got)
	}
	if got := SourceLevelFromPower(1000, 3); math.Abs(got-203.8) > tol {
		t.Errorf("expected 203.8 dB, got %f", got)
	}
}

func TestLevels(t *testing.T) {
	if got := IntensityLevel(referenceIntensity); math.Abs(got) > tol {
		t.Errorf("reference intensity should be 0 dB, got %f", got)
	}
	if got := SoundPressureLevel(1, 1e-6); math.Abs(got-120) > tol {
		t.Errorf("expected 120 dB re 1 µPa for 1 Pa, got %f", got)
	}
	if got := IntensityFromPressure(1500, 1, 1500); math.Abs(got-1500) > tol {
		t.Errorf("expected 1500 W/m², got %f", got)
	}
	if got := NoiseLevelInBand(60, 1000); math.Abs(got-90) > tol {
		t.Errorf("expected 90 dB, got %f", got)
	}
}

func TestPropagationLoss(t *testing.T) {
	if got := PropagationLossSpherical(1000); math.Abs(got-60) > tol {
		t.Errorf("spherical: expected 60, got %f", got)
	}
	if got := PropagationLossCylindrical(1000); math.Abs(got-30) > tol {
		t.Errorf("cylindrical: expected 30, got %f", got)
	}
	if got := PropagationLossSphericalAbsorption(2000, 1.5); math.Abs(got-(20*math.Log10(2000)+3)) > tol {
		t.Errorf("spherical+absorption: got %f", got)
	}

	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{"inside transition", 50, 20 * math.Log10(50)},
		{"at transition", 100, 40},
		{"beyond transition", 10000, 40 + 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropagationLossMixed(tt.r, 100, 0); math.Abs(got-tt.want) > tol {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestDetection(t *testing.T) {
	if got := DetectionIndex(3, 1, 0.5); math.Abs(got-16) > tol {
		t.Errorf("expected d=16, got %f", got)
	}
	if got := DetectionThresholdKnownSignal(20, 1); math.Abs(got-10) > tol {
		t.Errorf("expected 10 dB, got %f", got)
	}
	if got := DetectionThresholdUnknownSignal(10, 100, 10); math.Abs(got-10) > tol {
		t.Errorf("expected 10 dB, got %f", got)
	}
}

func TestSignalExcess(t *testing.T) {
	if got := SignalExcessActive(220, 60, 10, 70, 20, 10); math.Abs(got-40) > tol {
		t.Errorf("active: expected 40, got %f", got)
	}
	if got := SignalExcessPassive(140, 60, 70, 20, 10); math.Abs(got-20) > tol {
		t.Errorf("passive: expected 20, got %f", got)
	}
}

func TestGeometry(t *testing.T) {
	if got := Wavelength(1500, 10000); math.Abs(got-0.15) > tol {
		t.Errorf("expected 0.15 m, got %f", got)
	}
	if got := DopplerShiftActive(10000, 7.5, 1500); math.Abs(got-100) > tol {
		t.Errorf("expected 100 Hz, got %f", got)
	}
	if got := DirectivityIndexLineArray(5, 1); math.Abs(got-10) > tol {
		t.Errorf("expected 10 dB, got %f", got)
	}
	if got := DirectivityIndexCircularPiston(10/math.Pi, 1); math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20 dB, got %f", got)
	}
	if got := TargetStrengthPlate(10, 1); math.Abs(got-20) > tol {
		t.Errorf("expected 20 dB, got %f", got)
	}
	if got := TargetStrengthCylinder(1, 10, 5); math.Abs(got-10) > tol {
		t.Errorf("expected 10 dB, got %f", got)
	}
	if got := TargetStrengthFromIntensity(1, 100); math.Abs(got+20) > tol {
		t.Errorf("expected -20 dB, got %f", got)
	}
}

func TestZeroRangeIsNotAnError(t *testing.T) {
	for _, s := range Specs() {
		if s.Name != "PropagationLossSpherical" {
			continue
		}
		res, err := s.Evaluate(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(res.Value(), -1) {
			t.Errorf("expected -Inf, got %f", res.Value())
		}
		if !res.HasDiagnostics() {
			t.Error("expected range diagnostic for r=0")
		}
		return
	}
	t.Fatal("PropagationLossSpherical spec missing")
}
