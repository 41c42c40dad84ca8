// Package catalog is the lookup-by-name registry of every formula in the
// module. Each formula package contributes its Specs; the registry indexes
// them by name and category.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/san-kum/sonarlab/internal/absorption"
	"github.com/san-kum/sonarlab/internal/depth"
	"github.com/san-kum/sonarlab/internal/dosing"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/sonar"
	"github.com/san-kum/sonarlab/internal/soundspeed"
)

type Registry struct {
	specs map[string]*formula.Spec
}

// NewEmpty returns a registry with no formulas.
func NewEmpty() *Registry {
	return &Registry{specs: make(map[string]*formula.Spec)}
}

// New returns a registry holding every builtin formula.
func New() *Registry {
	r := NewEmpty()
	for _, group := range [][]*formula.Spec{
		soundspeed.Specs(),
		absorption.Specs(),
		sonar.Specs(),
		depth.Specs(),
		dosing.Specs(),
	} {
		for _, s := range group {
			if err := r.Register(s); err != nil {
				panic(err)
			}
		}
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide builtin registry. It is built on first
// use and read-only afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register adds s. Names must be unique and every spec needs an evaluator.
func (r *Registry) Register(s *formula.Spec) error {
	if s == nil || s.Name == "" {
		return fmt.Errorf("register: spec has no name")
	}
	if s.Eval == nil {
		return fmt.Errorf("register %s: no evaluator", s.Name)
	}
	if _, ok := r.specs[s.Name]; ok {
		return fmt.Errorf("register %s: duplicate formula", s.Name)
	}
	r.specs[s.Name] = s
	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (*formula.Spec, error) {
	s, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", formula.ErrUnknownFormula, name)
	}
	return s, nil
}

// List returns all formula names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns all specs sorted by name.
func (r *Registry) Specs() []*formula.Spec {
	names := r.List()
	out := make([]*formula.Spec, len(names))
	for i, n := range names {
		out[i] = r.specs[n]
	}
	return out
}

// ByCategory groups sorted formula names by category.
func (r *Registry) ByCategory() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range r.List() {
		c := r.specs[name].Category
		groups[c] = append(groups[c], name)
	}
	return groups
}

// Categories returns the category names in sorted order.
func (r *Registry) Categories() []string {
	groups := r.ByCategory()
	cats := make([]string, 0, len(groups))
	for c := range groups {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Len returns the number of registered formulas.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Evaluate looks up name and evaluates it with positional args.
func (r *Registry) Evaluate(name string, args ...float64) (formula.Result, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return formula.Result{}, err
	}
	return s.Evaluate(args...)
}

// EvaluateCorrected looks up name and evaluates it with a correction.
func (r *Registry) EvaluateCorrected(name string, c formula.Correction, args ...float64) (formula.Result, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return formula.Result{}, err
	}
	return s.EvaluateCorrected(c, args...)
}
