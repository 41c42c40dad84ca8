package observability

import (
	"errors"

	"github.com/san-kum/sonarlab/internal/formula"
)

// Outcome classifies an evaluation error for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, formula.ErrUnknownFormula):
		return "unknown_formula"
	case errors.Is(err, formula.ErrNoTableEntry):
		return "no_table_entry"
	case errors.Is(err, formula.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// RecordEvaluation counts one evaluation and its diagnostics.
func (m *Metrics) RecordEvaluation(name string, res formula.Result, err error) {
	m.Evaluations.WithLabelValues(name, Outcome(err)).Inc()
	for _, d := range res.Diagnostics {
		m.Diagnostics.WithLabelValues(name, d.Kind.String()).Inc()
	}
}
