package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/sonarlab/internal/automation"
	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/storage"
	"github.com/san-kum/sonarlab/internal/viz"
)

var (
	perturb   []string
	trials    int
	seed      int64
	outputIdx int
)

func newAutomationCommands() []*cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scripted scenario of evaluations and sweeps",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	mcCmd := &cobra.Command{
		Use:   "montecarlo [formula]",
		Short: "propagate input uncertainty through a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonteCarlo,
	}
	mcCmd.Flags().StringArrayVar(&perturb, "perturb", nil, "uniform half-width, name=width (repeatable)")
	mcCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter value, name=value (repeatable)")
	mcCmd.Flags().StringVar(&preset, "preset", "", "fill parameters from an environment preset")
	mcCmd.Flags().IntVar(&trials, "trials", 1000, "number of trials")
	mcCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	mcCmd.Flags().IntVar(&outputIdx, "output", 0, "output index for multi-output formulas")

	return []*cobra.Command{runCmd, mcCmd}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var st *storage.Store
	for _, step := range sc.Steps {
		if step.Save {
			if st, err = openStore(); err != nil {
				return err
			}
			break
		}
	}

	reg := catalog.Default()
	results, err := automation.NewRunner(reg, cfg, st, log).RunScenario(cmd.Context(), sc)

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintln(out, viz.Title.Render(sc.Name))
	}
	for _, r := range results {
		s, lookupErr := reg.Lookup(r.Formula)
		if lookupErr != nil {
			return lookupErr
		}
		if r.Sweep == nil {
			observability.LogDiagnostics(log, r.Result.Diagnostics)
			fmt.Fprintln(out, viz.ResultPanel(s, r.Args, r.Result))
			continue
		}
		fmt.Fprintf(out, "step %d: %s over %s, %d points", r.Index+1, r.Formula, r.Sweep.Param, len(r.Sweep.Points))
		if r.RunID != "" {
			fmt.Fprintf(out, ", saved %s", r.RunID)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+viz.Sparkline(r.Sweep.Series(0), 48))
	}
	return err
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	named, err := parseAssignments(sets)
	if err != nil {
		return err
	}
	widths, err := parseAssignments(perturb)
	if err != nil {
		return err
	}

	r := automation.NewRunner(catalog.Default(), cfg, nil, log)
	res, err := r.RunMonteCarlo(cmd.Context(), &automation.MonteCarloConfig{
		Formula:      args[0],
		Preset:       preset,
		Params:       named,
		Perturbation: widths,
		Output:       outputIdx,
		NumTrials:    trials,
		Seed:         seed,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unit := res.Output.Unit
	fmt.Fprintf(out, "%s %s over %d trials (seed %d)\n", viz.Title.Render(res.Formula), res.Output.Name, res.Trials, res.Seed)
	fmt.Fprintf(out, "  nominal  %s %s\n", viz.FormatValue(res.Nominal), unit)
	fmt.Fprintf(out, "  mean     %s %s\n", viz.FormatValue(res.Mean), unit)
	fmt.Fprintf(out, "  std dev  %s %s\n", viz.FormatValue(res.StdDev), unit)
	fmt.Fprintf(out, "  range    %s .. %s %s\n", viz.FormatValue(res.Min), viz.FormatValue(res.Max), unit)
	if res.NonFinite > 0 {
		log.WithField("count", res.NonFinite).Warn("non-finite outputs excluded")
	}
	if res.Diagnostics > 0 {
		log.WithField("count", res.Diagnostics).Warn("trials left the declared validity window")
	}
	return nil
}
