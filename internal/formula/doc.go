// Package formula provides the core types shared by every formula in the catalog.
//
// A formula is a pure numeric transform described by a [Spec]:
//
//   - [Param]: a named, unit-carrying input with an optional validity [Range]
//   - [Output]: a named result slot; most formulas have exactly one
//   - [Result]: computed outputs plus any [Diagnostic] raised on the way
//   - [Correction]: optional post-processing of a raw result
//   - [Rules]: ordered range-selected evaluation with an explicit fallback
//
// # Diagnostics
//
// Published equations bound their claimed accuracy, not their mathematical
// domain. Inputs outside a declared window are still evaluated; the result
// carries an [OutOfDeclaredRange] diagnostic instead of an error:
//
//	res, err := spec.Evaluate(1200, 35, 10)
//	if err == nil && res.HasDiagnostics() {
//	    // value is usable but outside the published window
//	}
//
// # Thread Safety
//
// Specs are immutable after construction and all evaluations are pure, so a
// single Spec may be evaluated from any number of goroutines.
package formula
