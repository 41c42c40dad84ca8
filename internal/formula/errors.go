package formula

import (
	"errors"
	"fmt"
)

// Domain errors for formula evaluation.
var (
	// ErrInvalidInput indicates a wrong number of arguments or a non-finite argument.
	ErrInvalidInput = errors.New("formula: invalid input")

	// ErrUnknownFormula indicates a catalog lookup for a name that is not registered.
	ErrUnknownFormula = errors.New("formula: unknown formula")

	// ErrNoTableEntry indicates a coefficient-table lookup outside the bundled keys.
	ErrNoTableEntry = errors.New("formula: parameter out of table")

	// ErrNotCorrectable indicates a correction was supplied to a formula that takes none.
	ErrNotCorrectable = fmt.Errorf("%w: formula does not accept a correction", ErrInvalidInput)
)

// EvalError wraps an error with the formula and parameter it concerns.
type EvalError struct {
	Formula string
	Param   string
	Wrapped error
}

func (e *EvalError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s(%s): %v", e.Formula, e.Param, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.Formula, e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}
