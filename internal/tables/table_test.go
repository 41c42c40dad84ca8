package tables

import (
	"errors"
	"testing"

	"github.com/san-kum/sonarlab/internal/formula"
)

func sample() *Table2D {
	return MustTable2D("sample", "temperatureC", "frequencyKHz",
		[]float64{0, 10},
		[]float64{1, 2, 5},
		[][]float64{
			{0.1, 0.2, 0.5},
			{1.1, 1.2, 1.5},
		})
}

func TestLookup(t *testing.T) {
	tbl := sample()
	v, err := tbl.Lookup(10, 2)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if v != 1.2 {
		t.Errorf("expected 1.2, got %f", v)
	}
}

func TestLookupMiss(t *testing.T) {
	tbl := sample()
	tests := []struct {
		name     string
		row, col float64
	}{
		{"row between keys", 5, 1},
		{"row above table", 20, 1},
		{"col between keys", 0, 3},
		{"col below table", 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tbl.Lookup(tt.row, tt.col)
			if !errors.Is(err, formula.ErrNoTableEntry) {
				t.Errorf("expected ErrNoTableEntry, got %v", err)
			}
		})
	}
}

func TestNewTable2D_ShapeMismatch(t *testing.T) {
	_, err := NewTable2D("bad", "r", "c", []float64{0, 1}, []float64{1}, [][]float64{{1}})
	if err == nil {
		t.Error("expected error for missing row")
	}
	_, err = NewTable2D("bad", "r", "c", []float64{0}, []float64{1, 2}, [][]float64{{1}})
	if err == nil {
		t.Error("expected error for short row")
	}
}

func TestKeysAreCopies(t *testing.T) {
	tbl := sample()
	rows := tbl.Rows()
	rows[0] = 99
	if _, err := tbl.Lookup(0, 1); err != nil {
		t.Errorf("table mutated through Rows(): %v", err)
	}
}
