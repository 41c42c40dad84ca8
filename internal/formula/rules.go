package formula

import "fmt"

// Rule is one candidate equation of a range-selected formula. Windows is
// aligned with the formula arguments; a nil entry accepts any value.
type Rule struct {
	Name    string
	Windows []*Range
	Eval    func(args []float64) float64
}

// Matches reports whether every argument lies inside the rule's windows.
func (r Rule) Matches(args []float64) bool {
	for i, w := range r.Windows {
		if w == nil || i >= len(args) {
			continue
		}
		if !w.Contains(args[i]) {
			return false
		}
	}
	return true
}

// Rules evaluates the first matching rule. When none matches, the last rule
// is evaluated and a NoRuleMatched diagnostic is returned with the value.
type Rules []Rule

// Select returns the index of the rule that will be evaluated and whether it matched.
func (rs Rules) Select(args []float64) (int, bool) {
	for i, r := range rs {
		if r.Matches(args) {
			return i, true
		}
	}
	return len(rs) - 1, false
}

// Evaluate runs the selected rule.
func (rs Rules) Evaluate(args []float64) (float64, string, []Diagnostic) {
	if len(rs) == 0 {
		return 0, "", nil
	}
	idx, matched := rs.Select(args)
	rule := rs[idx]
	v := rule.Eval(args)
	if matched {
		return v, rule.Name, nil
	}
	return v, rule.Name, []Diagnostic{{
		Kind:    NoRuleMatched,
		Message: fmt.Sprintf("no declared range matched %v; fell back to %s", args, rule.Name),
	}}
}

// EvalFunc adapts the rule set to a single-output EvalFunc.
func (rs Rules) EvalFunc() EvalFunc {
	return func(x []float64) ([]float64, []Diagnostic, error) {
		v, _, diags := rs.Evaluate(x)
		return []float64{v}, diags, nil
	}
}
