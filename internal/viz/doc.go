// Package viz renders catalog entries, evaluation results and sweeps for
// the terminal.
//
// Tables and result panels are styled with lipgloss; sweep curves are drawn
// with asciigraph:
//
//   - [FormulaTable]: one row per formula, grouped by category
//   - [ResultPanel]: outputs and diagnostics of a single evaluation
//   - [PlotSweep]: an output series of a sweep against its swept parameter
//   - [Sparkline]: a one-line preview of a series
//
// The active colour scheme is chosen with [SetTheme].
package viz
