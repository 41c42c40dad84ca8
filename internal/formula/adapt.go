package formula

// Scalar adapters turn plain float64 functions into an EvalFunc with one output.
// Arity is enforced by Spec.Evaluate before the adapter runs.

func Fn1(f func(a float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0])}, nil, nil
	}
}

func Fn2(f func(a, b float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0], x[1])}, nil, nil
	}
}

func Fn3(f func(a, b, c float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0], x[1], x[2])}, nil, nil
	}
}

func Fn4(f func(a, b, c, d float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0], x[1], x[2], x[3])}, nil, nil
	}
}

func Fn5(f func(a, b, c, d, e float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0], x[1], x[2], x[3], x[4])}, nil, nil
	}
}

func Fn6(f func(a, b, c, d, e, g float64) float64) EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		return []float64{f(x[0], x[1], x[2], x[3], x[4], x[5])}, nil, nil
	}
}

// Scalar builds the usual single-output Output slice.
func Scalar(name, unit string) []Output {
	return []Output{{Name: name, Unit: unit}}
}

// Window returns a pointer to a closed range, for use in Param literals.
func Window(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}
