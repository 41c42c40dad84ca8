// Package automation runs scripted batches of evaluations and sweeps, and
// propagates input uncertainty through a formula by Monte Carlo sampling.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/storage"
	"github.com/san-kum/sonarlab/internal/sweep"
)

var ErrInvalidScenario = errors.New("automation: invalid scenario")

// Scenario defines a scripted sequence of formula runs
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step evaluates Formula once, or sweeps it when Sweep is set.
type Step struct {
	Formula    string             `yaml:"formula"`
	Preset     string             `yaml:"preset"`
	Params     map[string]float64 `yaml:"params"`
	Correction *float64           `yaml:"correction"`
	Sweep      *SweepStep         `yaml:"sweep"`
	Save       bool               `yaml:"save"`
}

type SweepStep struct {
	Param string  `yaml:"param"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

type StepResult struct {
	Index   int
	Formula string
	Args    []float64
	Result  formula.Result
	Sweep   *sweep.Result
	RunID   string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	for i, st := range s.Steps {
		if st.Formula == "" {
			return fmt.Errorf("%w: step %d has no formula", ErrInvalidScenario, i+1)
		}
		if st.Sweep != nil && st.Sweep.Param == "" {
			return fmt.Errorf("%w: step %d sweep has no param", ErrInvalidScenario, i+1)
		}
		if st.Save && st.Sweep == nil {
			return fmt.Errorf("%w: step %d: only sweeps can be saved", ErrInvalidScenario, i+1)
		}
	}
	return nil
}

type Runner struct {
	reg     *catalog.Registry
	cfg     *config.Config
	sweeper *sweep.Runner
	store   *storage.Store
	log     logrus.FieldLogger
}

// NewRunner builds a runner. store may be nil when no step saves.
func NewRunner(reg *catalog.Registry, cfg *config.Config, store *storage.Store, log logrus.FieldLogger) *Runner {
	return &Runner{
		reg:     reg,
		cfg:     cfg,
		sweeper: sweep.NewRunner(reg, cfg.Sweep.Workers),
		store:   store,
		log:     log,
	}
}

func (r *Runner) bind(s *formula.Spec, presetName string, params map[string]float64) ([]float64, error) {
	var roles map[string]float64
	if presetName != "" {
		env, ok := r.cfg.Preset(presetName)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidScenario, presetName)
		}
		roles = env.Roles()
	}
	return catalog.BindWith(s, roles, params)
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log := r.log.WithField("step", i+1).WithField("formula", step.Formula)

		s, err := r.reg.Lookup(step.Formula)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		args, err := r.bind(s, step.Preset, step.Params)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		out := StepResult{Index: i, Formula: s.Name, Args: args}
		if step.Sweep == nil {
			c := formula.None()
			if step.Correction != nil {
				c = formula.Constant(*step.Correction)
			}
			if out.Result, err = s.EvaluateCorrected(c, args...); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			log.WithField("diagnostics", len(out.Result.Diagnostics)).Debug("evaluated")
			results = append(results, out)
			continue
		}

		req := sweepRequest(s, args, step.Sweep, r.cfg.Sweep.Steps)
		if out.Sweep, err = r.sweeper.Run(ctx, req); err != nil {
			return results, fmt.Errorf("step %d sweep: %w", i+1, err)
		}
		log.WithField("points", len(out.Sweep.Points)).Debug("swept")

		if step.Save {
			if r.store == nil {
				return results, fmt.Errorf("step %d: no run storage configured", i+1)
			}
			if out.RunID, err = r.store.Save(req, out.Sweep); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, out)
	}

	return results, nil
}

func sweepRequest(s *formula.Spec, args []float64, sw *SweepStep, defaultSteps int) sweep.Request {
	fixed := make(map[string]float64, len(args))
	for i, p := range s.Params {
		if p.Name != sw.Param {
			fixed[p.Name] = args[i]
		}
	}
	steps := sw.Steps
	if steps == 0 {
		steps = defaultSteps
	}
	return sweep.Request{
		Formula: s.Name,
		Param:   sw.Param,
		From:    sw.From,
		To:      sw.To,
		Steps:   steps,
		Fixed:   fixed,
	}
}
