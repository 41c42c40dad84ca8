package sweep

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extremum is the sample at which the primary output is smallest or largest.
type Extremum struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// finite returns the finite primary outputs with their positions.
func (r *Result) finite() (xs, ys []float64) {
	for _, p := range r.Points {
		if len(p.Outputs) == 0 {
			continue
		}
		v := p.Outputs[0]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, v)
	}
	return xs, ys
}

// Min returns the smallest finite primary output. ok is false when no point is finite.
func (r *Result) Min() (e Extremum, ok bool) {
	xs, ys := r.finite()
	if len(ys) == 0 {
		return Extremum{}, false
	}
	i := floats.MinIdx(ys)
	return Extremum{X: xs[i], Value: ys[i]}, true
}

// Max returns the largest finite primary output.
func (r *Result) Max() (e Extremum, ok bool) {
	xs, ys := r.finite()
	if len(ys) == 0 {
		return Extremum{}, false
	}
	i := floats.MaxIdx(ys)
	return Extremum{X: xs[i], Value: ys[i]}, true
}
