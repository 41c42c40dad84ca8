package main

import (
	"errors"
	"testing"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/formula"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"depthM=1000", " salinityPpt = 34.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["depthM"] != 1000 || got["salinityPpt"] != 34.5 {
		t.Errorf("unexpected values %v", got)
	}

	for _, bad := range []string{"depthM", "=3", "depthM=deep"} {
		if _, err := parseAssignments([]string{bad}); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestBindArgs(t *testing.T) {
	cfg = config.DefaultConfig()
	defer func() { sets, preset = nil, "" }()

	s, err := catalog.Default().Lookup("SpeedOfSoundSeaWaterMedwin")
	if err != nil {
		t.Fatal(err)
	}

	args, err := bindArgs(s, []string{"100", "35", "12"})
	if err != nil || args[0] != 100 || args[2] != 12 {
		t.Errorf("positional: got %v, %v", args, err)
	}

	sets = []string{"depthM=250"}
	preset = "arctic"
	args, err = bindArgs(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env, _ := cfg.Preset("arctic")
	if args[0] != 250 || args[2] != env.TemperatureC {
		t.Errorf("preset and set: got %v", args)
	}

	if _, err := bindArgs(s, []string{"1"}); err == nil {
		t.Error("positional args with --set should fail")
	}

	sets, preset = []string{"pressure=1"}, ""
	if _, err := bindArgs(s, nil); !errors.Is(err, formula.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	sets, preset = nil, "atlantis"
	if _, err := bindArgs(s, nil); err == nil {
		t.Error("unknown preset should fail")
	}
}
