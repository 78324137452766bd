package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/avasil/metadyn/internal/analysis"
	"github.com/avasil/metadyn/internal/bias"
	"github.com/avasil/metadyn/internal/config"
	"github.com/avasil/metadyn/internal/experiment"
	"github.com/avasil/metadyn/internal/landscape"
	"github.com/avasil/metadyn/internal/metrics"
	"github.com/avasil/metadyn/internal/sim"
	"github.com/avasil/metadyn/internal/storage"
	"github.com/avasil/metadyn/internal/viz"
)

var (
	dataDir     string
	dbPath      string
	steps       int
	seed        int64
	start       float64
	samplerName string
	temperature float64
	dt          float64
	gamma       float64
	stepSize    float64
	biased      bool
	amplitude   float64
	sigma       float64
	trigger     int
	gridMin     float64
	gridMax     float64
	bins        int
	barrier     float64
	configFile  string
	preset      string
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	})))

	rootCmd := &cobra.Command{
		Use:   "metadyn",
		Short: "biased sampling on 1-d energy landscapes",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".metadyn", "data directory")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite index for run metadata")

	runCmd := &cobra.Command{
		Use:   "run [potential]",
		Short: "run a sampling simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&barrier, "barrier", 0, "barrier position for crossing counts (default: grid midpoint)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [run_id]",
		Short: "plot bias and free energy profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProfile,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [potential] [sampler1] [sampler2] ...",
		Short: "compare samplers on the same landscape",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSamplers,
	}
	addRunFlags(compareCmd)
	compareCmd.Flags().Float64Var(&barrier, "barrier", 0, "barrier position for crossing counts")

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets for a potential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, profileCmd, exportJSONCmd, liveCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&start, "start", config.DefaultStart, "initial position")
	cmd.Flags().StringVar(&samplerName, "sampler", "langevin", "sampler")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "langevin timestep")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "langevin friction")
	cmd.Flags().Float64Var(&stepSize, "step-size", config.DefaultStepSize, "metropolis step size")
	cmd.Flags().BoolVar(&biased, "bias", true, "deposit bias kernels during the run")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "kernel amplitude")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "kernel width")
	cmd.Flags().IntVar(&trigger, "trigger", config.DefaultTrigger, "steps between deposits")
	cmd.Flags().Float64Var(&gridMin, "grid-min", config.DefaultGridMin, "grid lower bound")
	cmd.Flags().Float64Var(&gridMax, "grid-max", config.DefaultGridMax, "grid upper bound")
	cmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "grid bins")
}

// applyConfig resolves preset and config file values, with explicit CLI
// flags taking priority over both.
func applyConfig(cmd *cobra.Command, potential string) error {
	if preset != "" {
		cfg := config.GetPreset(potential, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(potential))
		}
		applyConfigValues(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfigValues(cmd, cfg)
	}

	return nil
}

func applyConfigValues(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("steps") {
		steps = cfg.Steps
	}
	if !cmd.Flags().Changed("start") {
		start = cfg.Start
	}
	if !cmd.Flags().Changed("sampler") && cfg.Sampler != "" {
		samplerName = cfg.Sampler
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if !cmd.Flags().Changed("temperature") {
		temperature = cfg.SamplerParams.Temperature
	}
	if !cmd.Flags().Changed("dt") && cfg.SamplerParams.Dt != 0 {
		dt = cfg.SamplerParams.Dt
	}
	if !cmd.Flags().Changed("gamma") && cfg.SamplerParams.Gamma != 0 {
		gamma = cfg.SamplerParams.Gamma
	}
	if !cmd.Flags().Changed("step-size") && cfg.SamplerParams.StepSize != 0 {
		stepSize = cfg.SamplerParams.StepSize
	}
	if !cmd.Flags().Changed("bias") {
		biased = cfg.Bias.Enabled
	}
	if !cmd.Flags().Changed("amplitude") && cfg.Bias.Amplitude != 0 {
		amplitude = cfg.Bias.Amplitude
	}
	if !cmd.Flags().Changed("sigma") && cfg.Bias.Sigma != 0 {
		sigma = cfg.Bias.Sigma
	}
	if !cmd.Flags().Changed("trigger") && cfg.Bias.Trigger != 0 {
		trigger = cfg.Bias.Trigger
	}
	if !cmd.Flags().Changed("grid-min") {
		gridMin = cfg.Bias.GridMin
	}
	if !cmd.Flags().Changed("grid-max") {
		gridMax = cfg.Bias.GridMax
	}
	if !cmd.Flags().Changed("bins") && cfg.Bias.Bins != 0 {
		bins = cfg.Bias.Bins
	}
}

func samplerParams() map[string]float64 {
	return map[string]float64{
		"dt":          dt,
		"gamma":       gamma,
		"temperature": temperature,
		"step_size":   stepSize,
	}
}

func barrierOrDefault(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("barrier") {
		return barrier
	}
	return (gridMin + gridMax) / 2
}

// setup builds the potential (optionally wrapped in a bias layer) and
// sampler for the current flag values.
func setup(potName string) (landscape.Potential, *bias.Metadynamics, *experiment.Registry, error) {
	registry := experiment.NewRegistry()

	base, err := registry.GetPotential(potName)
	if err != nil {
		return nil, nil, nil, err
	}

	var meta *bias.Metadynamics
	pot := base
	if biased {
		meta, err = bias.NewMetadynamics(base, bias.Options{
			Amplitude: amplitude,
			Sigma:     sigma,
			Trigger:   trigger,
			GridMin:   gridMin,
			GridMax:   gridMax,
			Bins:      bins,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		pot = meta
	}

	return pot, meta, registry, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	potName := args[0]

	if err := applyConfig(cmd, potName); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	pot, meta, registry, err := setup(potName)
	if err != nil {
		return err
	}

	smp, err := registry.GetSampler(samplerName, samplerParams(), seed)
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Potential: potName,
		Sampler:   samplerName,
		Start:     start,
		Steps:     steps,
		Seed:      seed,
		Params:    samplerParams(),
	})
	runMetrics := registry.DefaultMetrics(barrierOrDefault(cmd))
	if meta != nil {
		runMetrics = append(runMetrics, metrics.NewDepositionCount(meta))
	}
	if err := exp.Setup(pot, smp, runMetrics); err != nil {
		return err
	}

	slog.Info("running simulation", "potential", potName, "sampler", samplerName, "steps", steps, "biased", biased)
	begin := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(begin)

	runID, err := st.Save(potName, samplerName, seed, biased, result)
	if err != nil {
		return err
	}

	if meta != nil {
		grid := meta.Grid()
		if err := st.SaveProfile(runID, grid.Centers(), grid.Energy(), analysis.FreeEnergy(grid)); err != nil {
			return err
		}
	}

	if dbPath != "" {
		if err := indexRun(st, runID); err != nil {
			return err
		}
	}

	slog.Info("completed", "elapsed", elapsed, "run_id", runID, "deposits", result.Deposits)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func indexRun(st *storage.FileStore, runID string) error {
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	db := storage.NewSQLiteStore(dbPath)
	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		return err
	}
	defer db.Close()

	return db.SaveRun(ctx, *meta)
}

func listRuns(cmd *cobra.Command, args []string) error {
	var runs []storage.RunMetadata
	var err error

	if dbPath != "" {
		db := storage.NewSQLiteStore(dbPath)
		ctx := context.Background()
		if err := db.Init(ctx); err != nil {
			return err
		}
		defer db.Close()
		runs, err = db.ListRuns(ctx)
	} else {
		runs, err = storage.New(dataDir).List()
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOTENTIAL\tSAMPLER\tTIME\tSTEPS\tDEPOSITS\tBIASED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%t\n",
			run.ID,
			run.Potential,
			run.Sampler,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Deposits,
			run.Biased,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	positions, energies, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s\n", meta.Potential)
	fmt.Printf("samples: %d\n\n", len(positions))

	fmt.Println(asciigraph.Plot(positions,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("position"),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(energies,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("energy"),
	))

	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	centers, biasEnergy, freeEnergy, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	if len(centers) == 0 {
		return fmt.Errorf("no profile data (was the run biased?)")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s\n", meta.Potential)
	fmt.Printf("deposits: %d\n", meta.Deposits)
	fmt.Printf("range: [%.3f, %.3f]\n\n", centers[0], centers[len(centers)-1])

	fmt.Println(asciigraph.Plot(biasEnergy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("accumulated bias"),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(freeEnergy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("free energy estimate"),
	))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	positions, energies, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	result := &sim.Result{
		Positions: positions,
		Energies:  energies,
		Metrics:   meta.Metrics,
		Steps:     meta.Steps,
		Deposits:  meta.Deposits,
	}

	return storage.ExportJSONStdout(meta.Potential, meta.Sampler, meta.Seed, meta.Biased, result)
}

func runLive(cmd *cobra.Command, args []string) error {
	potName := args[0]

	pot, meta, registry, err := setup(potName)
	if err != nil {
		return err
	}

	smp, err := registry.GetSampler(samplerName, samplerParams(), seed)
	if err != nil {
		return err
	}

	m := viz.NewModel(pot, smp, meta, start, potName)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareSamplers(cmd *cobra.Command, args []string) error {
	potName := args[0]
	samplers := args[1:]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLER\tCROSSINGS\tVISITED\tMEAN ENERGY\tDEPOSITS\tTIME")

	for _, name := range samplers {
		pot, _, registry, err := setup(potName)
		if err != nil {
			return err
		}

		smp, err := registry.GetSampler(name, samplerParams(), seed)
		if err != nil {
			return err
		}

		exp := experiment.New(experiment.Config{
			Potential: potName,
			Sampler:   name,
			Start:     start,
			Steps:     steps,
			Seed:      seed,
			Params:    samplerParams(),
		})
		if err := exp.Setup(pot, smp, registry.DefaultMetrics(barrierOrDefault(cmd))); err != nil {
			return err
		}

		begin := time.Now()
		result, err := exp.Run(context.Background())
		if err != nil {
			return err
		}
		elapsed := time.Since(begin)

		fmt.Fprintf(w, "%s\t%.0f\t%.3f\t%.4f\t%d\t%v\n",
			name,
			result.Metrics["well_crossings"],
			result.Metrics["visited_range"],
			result.Metrics["mean_energy"],
			result.Deposits,
			elapsed,
		)
	}

	return w.Flush()
}
