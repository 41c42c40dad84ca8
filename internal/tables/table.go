// Package tables holds read-only coefficient tables consulted by formulas.
//
// Tables are addressed by exact keys. A key that is not bundled fails with
// [formula.ErrNoTableEntry]; values are never interpolated or extrapolated.
package tables

import (
	"fmt"

	"github.com/san-kum/sonarlab/internal/formula"
)

// Table2D maps (row key, column key) to a value.
type Table2D struct {
	Name   string
	RowKey string
	ColKey string
	rows   []float64
	cols   []float64
	values [][]float64
	rowIdx map[float64]int
	colIdx map[float64]int
}

// NewTable2D builds a table. values must be len(rows) x len(cols).
func NewTable2D(name, rowKey, colKey string, rows, cols []float64, values [][]float64) (*Table2D, error) {
	if len(values) != len(rows) {
		return nil, fmt.Errorf("table %s: %d rows of values for %d row keys", name, len(values), len(rows))
	}
	t := &Table2D{
		Name:   name,
		RowKey: rowKey,
		ColKey: colKey,
		rows:   append([]float64(nil), rows...),
		cols:   append([]float64(nil), cols...),
		values: make([][]float64, len(rows)),
		rowIdx: make(map[float64]int, len(rows)),
		colIdx: make(map[float64]int, len(cols)),
	}
	for i, r := range rows {
		if len(values[i]) != len(cols) {
			return nil, fmt.Errorf("table %s: row %g has %d values for %d columns", name, r, len(values[i]), len(cols))
		}
		t.values[i] = append([]float64(nil), values[i]...)
		t.rowIdx[r] = i
	}
	for j, c := range cols {
		t.colIdx[c] = j
	}
	return t, nil
}

// MustTable2D is NewTable2D for package-level tables; it panics on shape errors.
func MustTable2D(name, rowKey, colKey string, rows, cols []float64, values [][]float64) *Table2D {
	t, err := NewTable2D(name, rowKey, colKey, rows, cols, values)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the value at (row, col).
func (t *Table2D) Lookup(row, col float64) (float64, error) {
	i, ok := t.rowIdx[row]
	if !ok {
		return 0, &formula.EvalError{
			Formula: t.Name,
			Param:   t.RowKey,
			Wrapped: fmt.Errorf("%w: %s=%g", formula.ErrNoTableEntry, t.RowKey, row),
		}
	}
	j, ok := t.colIdx[col]
	if !ok {
		return 0, &formula.EvalError{
			Formula: t.Name,
			Param:   t.ColKey,
			Wrapped: fmt.Errorf("%w: %s=%g", formula.ErrNoTableEntry, t.ColKey, col),
		}
	}
	return t.values[i][j], nil
}

// Rows returns a copy of the row keys.
func (t *Table2D) Rows() []float64 {
	return append([]float64(nil), t.rows...)
}

// Cols returns a copy of the column keys.
func (t *Table2D) Cols() []float64 {
	return append([]float64(nil), t.cols...)
}
