package formula

import (
	"fmt"
	"math"
)

// Range is a closed validity interval [Min, Max].
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Param describes one positional input of a formula.
type Param struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Role    string  `json:"role"`
	Default float64 `json:"default"`
	Range   *Range  `json:"range,omitempty"`
}

// Output describes one slot of a formula result.
type Output struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// EvalFunc computes the outputs of a formula from validated arguments.
// Diagnostics returned here are appended to the range diagnostics.
type EvalFunc func(args []float64) ([]float64, []Diagnostic, error)

// Spec identifies one published equation.
type Spec struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Params      []Param  `json:"params"`
	Outputs     []Output `json:"outputs"`
	Citation    string   `json:"citation"`
	Correctable bool     `json:"correctable"`
	Eval        EvalFunc `json:"-"`
}

// Arity returns the number of positional parameters.
func (s *Spec) Arity() int {
	return len(s.Params)
}

// ParamIndex returns the position of the named parameter, or -1.
func (s *Spec) ParamIndex(name string) int {
	for i, p := range s.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Defaults returns the default sample arguments in parameter order.
func (s *Spec) Defaults() []float64 {
	args := make([]float64, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.Default
	}
	return args
}

// Unit returns the unit of the primary output.
func (s *Spec) Unit() string {
	if len(s.Outputs) == 0 {
		return ""
	}
	return s.Outputs[0].Unit
}

// Result holds the outputs of one evaluation and any diagnostics raised.
type Result struct {
	Outputs     []float64    `json:"outputs"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Value returns the primary output.
func (r Result) Value() float64 {
	if len(r.Outputs) == 0 {
		return math.NaN()
	}
	return r.Outputs[0]
}

// HasDiagnostics reports whether any diagnostic was raised.
func (r Result) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// DiagnosticKind classifies a non-fatal diagnostic.
type DiagnosticKind int

const (
	// OutOfDeclaredRange marks an input outside the published validity window.
	OutOfDeclaredRange DiagnosticKind = iota
	// NoRuleMatched marks an ordered-rule formula that fell back to its last rule.
	NoRuleMatched
)

func (k DiagnosticKind) String() string {
	switch k {
	case OutOfDeclaredRange:
		return "out_of_declared_range"
	case NoRuleMatched:
		return "no_rule_matched"
	default:
		return "unknown"
	}
}

// MarshalText lets diagnostic kinds serialize by name.
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DiagnosticKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "out_of_declared_range":
		*k = OutOfDeclaredRange
	case "no_rule_matched":
		*k = NoRuleMatched
	default:
		return fmt.Errorf("unknown diagnostic kind %q", b)
	}
	return nil
}

// Diagnostic is a warning-level note attached to a result.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Formula string         `json:"formula"`
	Param   string         `json:"param,omitempty"`
	Value   float64        `json:"value,omitempty"`
	Range   *Range         `json:"range,omitempty"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return d.Message
}

// JSONValues renders non-finite floats as the strings "NaN", "+Inf" and
// "-Inf", which encoding/json cannot represent as numbers.
func JSONValues(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		switch {
		case math.IsNaN(v):
			out[i] = "NaN"
		case math.IsInf(v, 1):
			out[i] = "+Inf"
		case math.IsInf(v, -1):
			out[i] = "-Inf"
		default:
			out[i] = v
		}
	}
	return out
}
