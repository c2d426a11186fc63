package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/ringsim/internal/analysis"
	"github.com/san-kum/ringsim/internal/automation"
	"github.com/san-kum/ringsim/internal/config"
	"github.com/san-kum/ringsim/internal/diffusion"
	"github.com/san-kum/ringsim/internal/experiment"
	"github.com/san-kum/ringsim/internal/sim"
	"github.com/san-kum/ringsim/internal/viz"
)

var (
	logLevel   string
	configFile string
	preset     string

	length    float64
	diffCoef  float64
	duration  float64
	dx        float64
	dt        float64
	walkers   int
	every     int
	seed      int64
	initKind  string
	width     float64
	plotWidth int
	plotRows  int

	frameRate     int
	stepsPerFrame int

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// main registers the ringsim commands and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ringsim",
		Short: "random walk and diffusion on a ring",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation and plot the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width")
	runCmd.Flags().IntVar(&plotRows, "plot-height", 12, "plot height")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run simulation with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 10, "time steps per frame")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "fourier stability analysis of the diffusion operator",
		Args:  cobra.NoArgs,
		RunE:  analyzeOperator,
	}
	addModelFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width")
	analyzeCmd.Flags().IntVar(&plotRows, "plot-height", 10, "plot height")

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run a model (default diffusion) across a range of one parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "dt", "parameter to sweep (length, diffusion, duration, dx, dt, walkers, width)")
	sweepCmd.Flags().Float64Var(&sweepMin, "from", 0.0005, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "to", 0.008, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 6, "number of values")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range experiment.NewRegistry().ListModels() {
				fmt.Println(m)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, analyzeCmd, sweepCmd, scenarioCmd, presetsCmd, modelsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		stop()
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.Float64Var(&length, "length", config.DefaultLength, "ring length L")
	f.Float64Var(&diffCoef, "diffusion", config.DefaultDiffusion, "diffusion coefficient D")
	f.Float64Var(&duration, "time", config.DefaultDuration, "duration T")
	f.Float64Var(&dx, "dx", config.DefaultDx, "spatial step")
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	f.IntVar(&walkers, "walkers", config.DefaultWalkers, "number of walkers Z")
	f.IntVar(&every, "every", config.DefaultEvery, "steps between snapshots")
	f.Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	f.StringVar(&initKind, "init", "center", "initial placement (center, uniform, gaussian)")
	f.Float64Var(&width, "width", config.DefaultWidth, "gaussian width in sites")
}

// loadConfig layers defaults, preset, config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	model := cfg.Model
	if len(args) > 0 {
		model = args[0]
	}

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Model = args[0]
	}

	f := cmd.Flags()
	if f.Changed("length") {
		cfg.Length = length
	}
	if f.Changed("diffusion") {
		cfg.Diffusion = diffCoef
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("dx") {
		cfg.Dx = dx
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("walkers") {
		cfg.Walkers = walkers
	}
	if f.Changed("every") {
		cfg.Every = every
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("init") {
		cfg.Init = initKind
	}
	if f.Changed("width") {
		cfg.Width = width
	}

	return cfg, cfg.Validate()
}

func params(cfg *config.Config) []viz.Param {
	return []viz.Param{
		{Label: "L / dx", Value: fmt.Sprintf("%g / %g", cfg.Length, cfg.Dx)},
		{Label: "D", Value: fmt.Sprintf("%g", cfg.Diffusion)},
		{Label: "T / dt", Value: fmt.Sprintf("%g / %g", cfg.Duration, cfg.Dt)},
		{Label: "alpha", Value: fmt.Sprintf("%.4g", cfg.Alpha())},
		{Label: "walkers", Value: fmt.Sprintf("%d", cfg.Walkers)},
		{Label: "init", Value: cfg.Init},
		{Label: "seed", Value: fmt.Sprintf("%d", cfg.Seed)},
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(result, params(cfg)))
	fmt.Println()
	fmt.Println(viz.PlotEvolution(result, plotWidth, plotRows))
	if spread := viz.PlotSpread(result, plotWidth, plotRows/2+1); spread != "" {
		fmt.Println()
		fmt.Println(spread)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(exp.GetSimulator().System(), cfg.Dt, cfg.Steps(), stepsPerFrame, frameRate)
	return viz.RunLive(m)
}

func analyzeOperator(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, []string{"diffusion"})
	if err != nil {
		return err
	}

	n, alpha := cfg.Sites(), cfg.Alpha()
	f, err := diffusion.NewMatrix(n, cfg.Diffusion, cfg.Dt, cfg.Dx)
	if err != nil {
		return err
	}
	kind, err := cfg.InitKind()
	if err != nil {
		return err
	}
	p, err := diffusion.Profile(n, kind, cfg.Width)
	if err != nil {
		return err
	}
	before := p.Clone()
	if err := diffusion.Step(f, p); err != nil {
		return err
	}

	predicted := analysis.ModeFactors(alpha, n)
	measured := analysis.MeasuredFactors(before, p, 1e-12)

	header := &sim.Result{System: "diffusion operator", Sites: n, StepsTaken: 1}
	fmt.Println(viz.Summary(header, []viz.Param{
		{Label: "alpha", Value: fmt.Sprintf("%.4g", alpha)},
		{Label: "stable", Value: fmt.Sprintf("%v", diffusion.Stable(alpha))},
		{Label: "max |lambda|", Value: fmt.Sprintf("%.6g", analysis.MaxFactor(alpha, n))},
		{Label: "relaxation", Value: fmt.Sprintf("%.6g", analysis.RelaxationTime(alpha, n, cfg.Dt))},
	}))
	fmt.Println()
	fmt.Println(viz.PlotValues(predicted, "predicted amplification per mode k", plotWidth, plotRows))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "k\tpredicted\tmeasured")
	for k := range predicted {
		if k > 8 && k < len(predicted)-1 {
			continue
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", k, predicted[k], measured[k])
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"diffusion"}
	}
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	sweep := &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\talpha\tmass_drift\tboundedness\tspread\tpeak\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%.5g\t%.4f\t%.2e\t%.3f\t%.3f\t%.4f\n", r.ParamValue, r.Alpha,
			r.Metrics["mass_drift"], r.Metrics["boundedness"], r.Metrics["spread"], r.Metrics["peak"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	bounded, unbounded := automation.SweepStats(results)
	fmt.Printf("\nbounded: %d  unbounded: %d\n", bounded, unbounded)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(scenario.Name))
	if scenario.Description != "" {
		fmt.Println(viz.Subtle.Render(scenario.Description))
	}
	for _, r := range results {
		fmt.Println()
		fmt.Println(viz.Subtle.Render(r.Label))
		fmt.Println(viz.Summary(r.Result, params(r.Config)))
	}
	return nil
}
