package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"diffsim/internal/analysis"
	"diffsim/internal/config"
	"diffsim/internal/diffusion"
	"diffsim/internal/metrics"
	"diffsim/internal/storage"
	"diffsim/internal/viz"
)

var (
	dataDir     string
	diffusivity float64
	length      float64
	spacing     float64
	cLeft       float64
	cRight      float64
	steps       int
	dt          float64
	noValidate  bool
	// Config file
	configFile string
	// Preset name
	preset string
	// Frame rate for live view
	frameRate int
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&diffusivity, "diffusivity", config.DefaultDiffusivity, "diffusivity D")
	cmd.Flags().Float64Var(&length, "lx", config.DefaultLength, "domain length")
	cmd.Flags().Float64Var(&spacing, "dx", config.DefaultSpacing, "grid spacing")
	cmd.Flags().Float64Var(&cLeft, "c-left", config.DefaultCLeft, "left boundary value")
	cmd.Flags().Float64Var(&cRight, "c-right", config.DefaultCRight, "right boundary value")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep (0 derives the stable step)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip NaN/Inf checks during stepping")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// main is the entry point for the diffsim CLI; it registers commands and
// flags and executes the root command. It exits the process with status 1 if
// command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "diffsim",
		Short: "1D diffusion simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "profile analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tD\tLX\tDX\tC_LEFT\tC_RIGHT\tSTEPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%d\n",
					name, p.Diffusivity, p.Length, p.Spacing, p.CLeft, p.CRight, p.Steps)
			}
			return w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stepper across grid resolutions",
		RunE:  benchStepper,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, liveCmd, exportCSVCmd, exportJSONCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and CLI flags in increasing
// priority, the flag only winning when it was set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("diffusivity") {
		cfg.Diffusivity = diffusivity
	}
	if cmd.Flags().Changed("lx") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("dx") {
		cfg.Spacing = spacing
	}
	if cmd.Flags().Changed("c-left") {
		cfg.CLeft = cLeft
	}
	if cmd.Flags().Changed("c-right") {
		cfg.CRight = cRight
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("no-validate") {
		cfg.Validate = !noValidate
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newSimulator(cfg *config.Config) *diffusion.Simulator {
	sim := diffusion.New(cfg.Params())
	sim.AddMetric(metrics.NewMassDrift(cfg.Spacing))
	sim.AddMetric(metrics.NewBounds(cfg.CLeft, cfg.CRight))
	sim.AddMetric(metrics.NewFrontWidth(cfg.Spacing))
	return sim
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	sim := newSimulator(cfg)

	fmt.Printf("running diffusion: D=%g, Lx=%g, dx=%g, %d steps\n",
		cfg.Diffusivity, cfg.Length, cfg.Spacing, cfg.Steps)
	start := time.Now()

	result, err := sim.Run(context.Background(), cfg.RunConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(context.Background(), cfg.Params(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid points: %d\n", len(result.Grid))
	fmt.Printf("dt: %gs (D*dt/dx^2 = %g)\n", result.Dt,
		cfg.Diffusivity*result.Dt/(cfg.Spacing*cfg.Spacing))
	fmt.Printf("model time: %gs\n", float64(result.StepsTaken)*result.Dt)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(context.Background())
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tD\tLX\tDX\tDT\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%.6f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Diffusivity,
			run.Length,
			run.Spacing,
			run.Dt,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(context.Background(), runID)
	if err != nil {
		return err
	}

	x, initial, final, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(final) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("D=%g, Lx=%g, dx=%g, dt=%gs, %d steps\n\n",
		meta.Diffusivity, meta.Length, meta.Spacing, meta.Dt, meta.Steps)

	fmt.Println(viz.RenderProfile(initial, "initial concentration profile"))
	fmt.Println()
	fmt.Println(viz.RenderProfile(final, "final concentration profile"))
	fmt.Println()
	fmt.Println(viz.RenderComparison(initial, final, "initial vs final"))

	_ = x

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(context.Background(), runID)
	if err != nil {
		return err
	}

	x, initial, final, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(final) == 0 {
		return fmt.Errorf("no data")
	}

	steady := analysis.SteadyState(x, meta.CLeft, meta.CRight)

	fmt.Printf("profile analysis: %s\n\n", meta.ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "monotone\t%v\n", analysis.Monotone(final))
	fmt.Fprintf(w, "rmse vs steady state\t%.6f\n", analysis.RMSE(final, steady))
	fmt.Fprintf(w, "relaxation progress\t%.1f%%\n", 100*analysis.Progress(initial, final, steady))
	fmt.Fprintf(w, "mid-domain slope\t%.6f\n", analysis.MidSlope(x, final))
	fmt.Fprintf(w, "range\t[%.3f, %.3f]\n", final.Min(), final.Max())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.RenderComparison(final, steady, "final vs steady state"))

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.Params(), cfg.RunConfig(), frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	x, initial, final, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, x, initial, final)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(dataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.Load(context.Background(), args[0])
	if err != nil {
		return err
	}

	x, initial, final, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, x, initial, final)
}

func benchStepper(cmd *cobra.Command, args []string) error {
	spacings := []float64{2.0, 1.0, 0.5, 0.25}
	stepCounts := []int{1000, 5000}

	fmt.Println("benchmarking stepper")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DX\tPOINTS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dx := range spacings {
		for _, nt := range stepCounts {
			p := diffusion.Params{
				Diffusivity: config.DefaultDiffusivity,
				Length:      config.DefaultLength,
				Spacing:     dx,
				CLeft:       config.DefaultCLeft,
				CRight:      config.DefaultCRight,
			}

			sim := diffusion.New(p)

			start := time.Now()
			result, err := sim.Run(context.Background(), diffusion.Config{Steps: nt})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()

			fmt.Fprintf(w, "%.2f\t%d\t%d\t%v\t%.0f\n",
				dx, len(result.Grid), result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
