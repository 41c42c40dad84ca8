package formula

import (
	"fmt"
	"math"
)

// Evaluate validates args, records range diagnostics and runs the formula.
// Non-finite arguments are rejected; non-finite outputs are returned as computed.
func (s *Spec) Evaluate(args ...float64) (Result, error) {
	if s.Eval == nil {
		return Result{}, &EvalError{Formula: s.Name, Wrapped: fmt.Errorf("%w: no evaluator", ErrInvalidInput)}
	}
	if len(args) != len(s.Params) {
		return Result{}, &EvalError{
			Formula: s.Name,
			Wrapped: fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidInput, len(s.Params), len(args)),
		}
	}
	for i, v := range args {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, &EvalError{
				Formula: s.Name,
				Param:   s.Params[i].Name,
				Wrapped: fmt.Errorf("%w: non-finite value %v", ErrInvalidInput, v),
			}
		}
	}

	diags := s.CheckRanges(args)

	// evaluators must not retain or mutate the caller's slice
	in := make([]float64, len(args))
	copy(in, args)

	outs, evalDiags, err := s.Eval(in)
	if err != nil {
		return Result{}, &EvalError{Formula: s.Name, Wrapped: err}
	}
	for _, d := range evalDiags {
		if d.Formula == "" {
			d.Formula = s.Name
		}
		diags = append(diags, d)
	}
	return Result{Outputs: outs, Diagnostics: diags}, nil
}

// EvaluateCorrected evaluates the formula and applies c to the primary output.
func (s *Spec) EvaluateCorrected(c Correction, args ...float64) (Result, error) {
	if !s.Correctable && !c.IsNone() {
		return Result{}, &EvalError{Formula: s.Name, Wrapped: ErrNotCorrectable}
	}
	res, err := s.Evaluate(args...)
	if err != nil {
		return res, err
	}
	if len(res.Outputs) > 0 {
		res.Outputs[0] = c.Apply(res.Outputs[0])
	}
	return res, nil
}

// CheckRanges returns one OutOfDeclaredRange diagnostic per argument outside
// its declared window. Parameters without a window are never flagged.
func (s *Spec) CheckRanges(args []float64) []Diagnostic {
	var diags []Diagnostic
	for i, p := range s.Params {
		if p.Range == nil || i >= len(args) {
			continue
		}
		if !p.Range.Contains(args[i]) {
			r := *p.Range
			diags = append(diags, Diagnostic{
				Kind:    OutOfDeclaredRange,
				Formula: s.Name,
				Param:   p.Name,
				Value:   args[i],
				Range:   &r,
				Message: fmt.Sprintf("%s: %s=%g outside declared range %s", s.Name, p.Name, args[i], r),
			})
		}
	}
	return diags
}
