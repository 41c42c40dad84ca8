package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/storage"
	"github.com/san-kum/sonarlab/internal/tui"
	"github.com/san-kum/sonarlab/internal/viz"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	logFormat  string
	theme      string

	cfg *config.Config
	log *logrus.Logger

	// eval and sweep
	sets       []string
	preset     string
	correction float64
	asJSON     bool

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	save       bool
	svgPath    string
	noPlot     bool

	category string
	outPath  string
	limit    int
	addr     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sonarlab",
		Short:         "underwater acoustics formula lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(catalog.Default(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "run directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "colour theme: "+strings.Join(viz.ThemeNames(), ", "))

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list formulas",
		Args:  cobra.NoArgs,
		RunE:  listFormulas,
	}
	listCmd.Flags().StringVar(&category, "category", "", "only this category")

	infoCmd := &cobra.Command{
		Use:   "info [formula]",
		Short: "describe a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  showFormula,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [formula] [args...]",
		Short: "evaluate a formula",
		Long: "Evaluate a formula with positional arguments, or with --set name=value and --preset.\n" +
			"Unset parameters take their default sample value.",
		Args: cobra.MinimumNArgs(1),
		RunE: evalFormula,
	}
	evalCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter value, name=value (repeatable)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "fill parameters from an environment preset")
	evalCmd.Flags().Float64Var(&correction, "correction", 0, "additive correction for depth/pressure conversions")
	evalCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	sweepCmd := &cobra.Command{
		Use:   "sweep [formula]",
		Short: "evaluate a formula over a range of one parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 0, "number of points (default from config)")
	sweepCmd.Flags().StringArrayVar(&sets, "set", nil, "fixed parameter value, name=value (repeatable)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "fix parameters from an environment preset")
	sweepCmd.Flags().BoolVar(&save, "save", false, "store the run")
	sweepCmd.Flags().StringVar(&svgPath, "svg", "", "write the first output as SVG")
	sweepCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")
	_ = sweepCmd.MarkFlagRequired("param")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored sweeps",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	runsCmd.Flags().IntVar(&limit, "limit", 0, "show at most n runs")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored sweep as JSON or SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "also write the first output as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list environment presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [value] [from] [to]",
		Short: "convert a pressure or length between units",
		Args:  cobra.ExactArgs(3),
		RunE:  convertUnits,
	}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(catalog.Default(), cfg)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(listCmd, infoCmd, evalCmd, sweepCmd, runsCmd, plotCmd, exportCmd, presetsCmd, convertCmd, calcCmd, serveCmd)
	rootCmd.AddCommand(newAutomationCommands()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, viz.Failure.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) error {
	var err error
	if cfg, err = config.LoadOrDefault(configFile); err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if theme != "" {
		viz.SetTheme(theme)
	}

	log, err = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	return err
}

func openStore() (*storage.Store, error) {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, fmt.Errorf("open run directory %s: %w", cfg.DataDir, err)
	}
	return st, nil
}

// parseAssignments reads name=value pairs.
func parseAssignments(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}
