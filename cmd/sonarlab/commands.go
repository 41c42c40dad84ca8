package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/export"
	"github.com/san-kum/sonarlab/internal/formula"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/sweep"
	"github.com/san-kum/sonarlab/internal/units"
	"github.com/san-kum/sonarlab/internal/viz"
)

func listFormulas(cmd *cobra.Command, args []string) error {
	reg := catalog.Default()
	specs := reg.Specs()
	if category != "" {
		filtered := specs[:0]
		for _, s := range specs {
			if s.Category == category {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no formulas in category %q (have %v)", category, reg.Categories())
		}
		specs = filtered
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.FormulaTable(specs))
	return nil
}

func showFormula(cmd *cobra.Command, args []string) error {
	s, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.SpecPanel(s))
	return nil
}

// bindArgs builds arguments from positional values, or from the preset and
// --set values over the defaults.
func bindArgs(s *formula.Spec, positional []string) ([]float64, error) {
	if len(positional) > 0 {
		if len(sets) > 0 || preset != "" {
			return nil, fmt.Errorf("positional arguments cannot be combined with --set or --preset")
		}
		args := make([]float64, len(positional))
		for i, raw := range positional {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			args[i] = v
		}
		return args, nil
	}

	named, err := parseAssignments(sets)
	if err != nil {
		return nil, err
	}
	var roles map[string]float64
	if preset != "" {
		env, ok := cfg.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		roles = env.Roles()
	}
	return catalog.BindWith(s, roles, named)
}

func evalFormula(cmd *cobra.Command, args []string) error {
	s, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}
	values, err := bindArgs(s, args[1:])
	if err != nil {
		return err
	}

	c := formula.None()
	if cmd.Flags().Changed("correction") {
		c = formula.Constant(correction)
	}
	res, err := s.EvaluateCorrected(c, values...)
	if err != nil {
		return err
	}

	if asJSON {
		observability.LogDiagnostics(log, res.Diagnostics)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"formula":     s.Name,
			"args":        values,
			"outputs":     s.Outputs,
			"values":      formula.JSONValues(res.Outputs),
			"diagnostics": res.Diagnostics,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.ResultPanel(s, values, res))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	reg := catalog.Default()
	s, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}
	if s.ParamIndex(sweepParam) < 0 {
		return fmt.Errorf("%s has no parameter %q", s.Name, sweepParam)
	}

	// fixed parameters come from the same binding rules as eval
	base, err := bindArgs(s, nil)
	if err != nil {
		return err
	}
	fixed := make(map[string]float64, len(base))
	for i, p := range s.Params {
		if p.Name != sweepParam {
			fixed[p.Name] = base[i]
		}
	}

	steps := sweepSteps
	if steps == 0 {
		steps = cfg.Sweep.Steps
	}
	req := sweep.Request{
		Formula: s.Name,
		Param:   sweepParam,
		From:    sweepFrom,
		To:      sweepTo,
		Steps:   steps,
		Fixed:   fixed,
	}

	res, err := sweep.NewRunner(reg, cfg.Sweep.Workers).Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s over %s %g..%g %s (%d points)\n\n", s.Name, sweepParam, sweepFrom, sweepTo, res.ParamUnit, len(res.Points))
	if !noPlot {
		for k := range res.Outputs {
			graph, err := viz.PlotSweep(res, k, viz.DefaultPlotOptions())
			if err != nil {
				log.WithError(err).Warn("skipping plot")
				continue
			}
			fmt.Fprintln(out, graph)
			fmt.Fprintln(out)
		}
	}
	if lo, ok := res.Min(); ok {
		fmt.Fprintf(out, "min %s at %s=%s\n", viz.FormatValue(lo.Value), sweepParam, viz.FormatValue(lo.X))
	}
	if hi, ok := res.Max(); ok {
		fmt.Fprintf(out, "max %s at %s=%s\n", viz.FormatValue(hi.Value), sweepParam, viz.FormatValue(hi.X))
	}
	if n := res.DiagnosticCount(); n > 0 {
		log.WithField("formula", s.Name).WithField("count", n).Warn("sweep left the declared validity window")
	}

	if save {
		st, err := openStore()
		if err != nil {
			return err
		}
		id, err := st.Save(req, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %s\n", id)
	}
	if svgPath != "" {
		if err := export.WriteSweepSVG(svgPath, res, export.DefaultOptions()); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", svgPath)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}
	if limit > 0 && limit < len(runs) {
		runs = runs[:limit]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFORMULA\tTIME\tPARAM\tRANGE\tSTEPS\tDIAG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g..%g\t%d\t%d\n",
			run.ID,
			run.Formula,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Param,
			run.From,
			run.To,
			run.Steps,
			run.Diagnostics,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "formula: %s\n", meta.Formula)
	fmt.Fprintf(out, "samples: %d\n\n", len(res.Points))

	for k := range res.Outputs {
		graph, err := viz.PlotSweep(res, k, viz.DefaultPlotOptions())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runID := args[0]

	if outPath != "" {
		if err := st.ExportJSONFile(outPath, runID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
	} else if err := st.ExportJSON(cmd.OutOrStdout(), runID); err != nil {
		return err
	}

	if svgPath != "" {
		res, err := st.LoadResult(runID)
		if err != nil {
			return err
		}
		if err := export.WriteSweepSVG(svgPath, res, export.DefaultOptions()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", svgPath)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTEMP °C\tSAL ppt\tDEPTH m\tLAT\tpH\tDESCRIPTION")
	for _, name := range cfg.ListPresets() {
		env, _ := cfg.Preset(name)
		marker := ""
		if name == cfg.Environment {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%g\t%g\t%g\t%g\t%g\t%s\n",
			name, marker,
			env.TemperatureC,
			env.SalinityPpt,
			env.DepthM,
			env.LatitudeDeg,
			env.PH,
			env.Description,
		)
	}
	return w.Flush()
}

func convertUnits(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	out, err := units.Convert(v, args[1], args[2])
	if err != nil {
		return fmt.Errorf("%w (known units: %v)", err, units.Known())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", viz.FormatValue(v), args[1], viz.FormatValue(out), args[2])
	return nil
}
