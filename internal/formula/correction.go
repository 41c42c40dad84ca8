package formula

// CorrectionKind tags the variant held by a Correction.
type CorrectionKind int

const (
	CorrectionNone CorrectionKind = iota
	CorrectionConstant
	CorrectionFunc
)

// Correction is applied to the raw result of a correctable formula.
// The zero value is "no correction".
type Correction struct {
	kind     CorrectionKind
	constant float64
	fn       func(raw float64) float64
}

// None leaves the raw result unchanged.
func None() Correction {
	return Correction{kind: CorrectionNone}
}

// Constant adds c to the raw result.
func Constant(c float64) Correction {
	return Correction{kind: CorrectionConstant, constant: c}
}

// Func adds fn(raw) to the raw result. A nil fn behaves like None.
func Func(fn func(raw float64) float64) Correction {
	if fn == nil {
		return None()
	}
	return Correction{kind: CorrectionFunc, fn: fn}
}

// Kind reports the variant.
func (c Correction) Kind() CorrectionKind {
	return c.kind
}

// IsNone reports whether the correction leaves results unchanged.
func (c Correction) IsNone() bool {
	return c.kind == CorrectionNone
}

// Apply returns the corrected value.
func (c Correction) Apply(raw float64) float64 {
	switch c.kind {
	case CorrectionConstant:
		return raw + c.constant
	case CorrectionFunc:
		return raw + c.fn(raw)
	default:
		return raw
	}
}
