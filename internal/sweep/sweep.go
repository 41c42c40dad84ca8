// Package sweep evaluates one formula over an evenly spaced range of one of
// its parameters, fanning the points out over a bounded set of goroutines.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/formula"
)

var ErrBadRequest = errors.New("sweep: bad request")

// Request describes a sweep. Parameters not swept and not in Fixed take
// their default sample value.
type Request struct {
	Formula    string             `json:"formula"`
	Param      string             `json:"param"`
	From       float64            `json:"from"`
	To         float64            `json:"to"`
	Steps      int                `json:"steps"`
	Fixed      map[string]float64 `json:"fixed,omitempty"`
	Correction formula.Correction `json:"-"`
}

// Point is one evaluated sample.
type Point struct {
	X           float64              `json:"x"`
	Outputs     []float64            `json:"outputs"`
	Diagnostics []formula.Diagnostic `json:"diagnostics,omitempty"`
}

// Result holds the points of a sweep in ascending order of X.
type Result struct {
	Formula   string           `json:"formula"`
	Param     string           `json:"param"`
	ParamUnit string           `json:"param_unit"`
	Outputs   []formula.Output `json:"outputs"`
	Args      []float64        `json:"args"`
	Points    []Point          `json:"points"`
}

type Runner struct {
	reg     *catalog.Registry
	workers int
}

// NewRunner returns a Runner over reg. workers <= 0 uses GOMAXPROCS.
func NewRunner(reg *catalog.Registry, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{reg: reg, workers: workers}
}

// Grid returns the sample positions of req.
func Grid(req Request) ([]float64, error) {
	switch {
	case req.Steps < 1:
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", ErrBadRequest, req.Steps)
	case math.IsNaN(req.From) || math.IsInf(req.From, 0) || math.IsNaN(req.To) || math.IsInf(req.To, 0):
		return nil, fmt.Errorf("%w: non-finite bounds", ErrBadRequest)
	case req.Steps == 1:
		return []float64{req.From}, nil
	}
	return floats.Span(make([]float64, req.Steps), req.From, req.To), nil
}

// Run evaluates req. The first evaluation error aborts the sweep; a
// cancelled context returns ctx.Err().
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	spec, err := r.reg.Lookup(req.Formula)
	if err != nil {
		return nil, err
	}
	idx := spec.ParamIndex(req.Param)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s has no parameter %q", ErrBadRequest, spec.Name, req.Param)
	}
	base, err := catalog.Bind(spec, req.Fixed)
	if err != nil {
		return nil, err
	}
	xs, err := Grid(req)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(xs))
	errs := make([]error, len(xs))
	jobs := make(chan int)

	// stop stops feeding points once any evaluation fails
	stop, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			args := make([]float64, len(base))
			for i := range jobs {
				if stop.Err() != nil {
					continue
				}
				copy(args, base)
				args[idx] = xs[i]
				res, err := spec.EvaluateCorrected(req.Correction, args...)
				if err != nil {
					errs[i] = fmt.Errorf("%s=%g: %w", req.Param, xs[i], err)
					cancel()
					continue
				}
				points[i] = Point{X: xs[i], Outputs: res.Outputs, Diagnostics: res.Diagnostics}
			}
		}()
	}

feed:
	for i := range xs {
		select {
		case <-stop.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Formula:   spec.Name,
		Param:     req.Param,
		ParamUnit: spec.Params[idx].Unit,
		Outputs:   spec.Outputs,
		Args:      base,
		Points:    points,
	}, nil
}

// Xs returns the swept parameter values.
func (r *Result) Xs() []float64 {
	xs := make([]float64, len(r.Points))
	for i, p := range r.Points {
		xs[i] = p.X
	}
	return xs
}

// Series returns output k of every point.
func (r *Result) Series(k int) []float64 {
	ys := make([]float64, len(r.Points))
	for i, p := range r.Points {
		if k < len(p.Outputs) {
			ys[i] = p.Outputs[k]
		} else {
			ys[i] = math.NaN()
		}
	}
	return ys
}

// DiagnosticCount returns the number of diagnostics raised across the sweep.
func (r *Result) DiagnosticCount() int {
	n := 0
	for _, p := range r.Points {
		n += len(p.Diagnostics)
	}
	return n
}
