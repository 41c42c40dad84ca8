package automation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/sonarlab/internal/formula"
)

// MonteCarloConfig perturbs each parameter named in Perturbation uniformly
// within ±half-width of its bound value.
type MonteCarloConfig struct {
	Formula      string
	Preset       string
	Params       map[string]float64
	Perturbation map[string]float64
	Output       int
	NumTrials    int
	// Seed 0 draws a seed from the clock; the seed used is reported in
	// MonteCarloResult.Seed so the run can be repeated.
	Seed int64
}

// MonteCarloResult holds statistics of one output over all trials.
// Non-finite outputs are counted but excluded from the statistics.
type MonteCarloResult struct {
	Formula     string
	Output      formula.Output
	Nominal     float64
	Trials      int
	Seed        int64
	NonFinite   int
	Diagnostics int
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
}

// RunMonteCarlo evaluates the formula NumTrials times with random
// perturbations of its inputs.
func (r *Runner) RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig) (*MonteCarloResult, error) {
	if cfg.NumTrials < 2 {
		return nil, fmt.Errorf("%w: need at least 2 trials", ErrInvalidScenario)
	}
	s, err := r.reg.Lookup(cfg.Formula)
	if err != nil {
		return nil, err
	}
	if cfg.Output < 0 || cfg.Output >= len(s.Outputs) {
		return nil, fmt.Errorf("%w: %s has no output %d", ErrInvalidScenario, s.Name, cfg.Output)
	}
	base, err := r.bind(s, cfg.Preset, cfg.Params)
	if err != nil {
		return nil, err
	}

	// widths in parameter order so a seed reproduces the same draws
	widths := make([]float64, len(base))
	for name, hw := range cfg.Perturbation {
		i := s.ParamIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrInvalidScenario, s.Name, name)
		}
		if hw < 0 || math.IsNaN(hw) || math.IsInf(hw, 0) {
			return nil, fmt.Errorf("%w: perturbation of %s must be finite and non-negative", ErrInvalidScenario, name)
		}
		widths[i] = hw
	}

	nominal, err := s.Evaluate(base...)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	res := &MonteCarloResult{
		Formula: s.Name,
		Output:  s.Outputs[cfg.Output],
		Nominal: nominal.Outputs[cfg.Output],
		Trials:  cfg.NumTrials,
		Seed:    seed,
	}
	values := make([]float64, 0, cfg.NumTrials)
	args := make([]float64, len(base))

	for trial := 0; trial < cfg.NumTrials; trial++ {
		if trial%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		copy(args, base)
		for i, hw := range widths {
			if hw > 0 {
				args[i] += (rng.Float64() - 0.5) * 2 * hw
			}
		}

		out, err := s.Evaluate(args...)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}
		res.Diagnostics += len(out.Diagnostics)

		v := out.Outputs[cfg.Output]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			res.NonFinite++
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no finite outputs in %d trials", s.Name, cfg.NumTrials)
	}
	if len(values) == 1 {
		res.Mean = values[0]
	} else {
		res.Mean, res.StdDev = stat.MeanStdDev(values, nil)
	}
	res.Min = floats.Min(values)
	res.Max = floats.Max(values)

	r.log.WithField("formula", s.Name).
		WithField("trials", cfg.NumTrials).
		WithField("non_finite", res.NonFinite).
		Debug("monte carlo complete")
	return res, nil
}
