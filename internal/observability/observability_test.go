package observability

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sonarlab/internal/formula"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLoggerTo(&buf, "warn", "json")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = NewLogger("loud", "text")
	assert.Error(t, err)
	_, err = NewLogger("info", "xml")
	assert.Error(t, err)
}

func TestLogDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLoggerTo(&buf, "info", "json")
	require.NoError(t, err)

	LogDiagnostics(log, []formula.Diagnostic{{
		Kind:    formula.OutOfDeclaredRange,
		Formula: "SpeedOfSoundSeaWaterMedwin",
		Param:   "depthM",
		Value:   1500,
		Range:   formula.Window(0, 1000),
		Message: "depth outside window",
	}})
	out := buf.String()
	assert.Contains(t, out, `"level":"warning"`)
	assert.Contains(t, out, `"param":"depthM"`)
	assert.Contains(t, out, `"kind":"out_of_declared_range"`)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "unknown_formula", Outcome(fmt.Errorf("x: %w", formula.ErrUnknownFormula)))
	assert.Equal(t, "no_table_entry", Outcome(&formula.EvalError{Formula: "t", Wrapped: formula.ErrNoTableEntry}))
	assert.Equal(t, "invalid_input", Outcome(formula.ErrNotCorrectable))
	assert.Equal(t, "error", Outcome(fmt.Errorf("boom")))
}

func TestRecordEvaluation(t *testing.T) {
	m := NewMetricsForTesting()
	res := formula.Result{
		Outputs:     []float64{1},
		Diagnostics: []formula.Diagnostic{{Kind: formula.NoRuleMatched}},
	}
	m.RecordEvaluation("SpeedOfSoundSeaWaterSkone", res, nil)
	m.RecordEvaluation("SpeedOfSoundSeaWaterSkone", formula.Result{}, formula.ErrInvalidInput)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("SpeedOfSoundSeaWaterSkone", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("SpeedOfSoundSeaWaterSkone", "invalid_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Diagnostics.WithLabelValues("SpeedOfSoundSeaWaterSkone", "no_rule_matched")))
}

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.RegisteredFormulas.Set(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
