package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbital/internal/celestial"
	"github.com/san-kum/orbital/internal/config"
	"github.com/san-kum/orbital/internal/storage"
	"github.com/san-kum/orbital/internal/system"
	"github.com/san-kum/orbital/internal/viz"
)

var (
	dataDir     string
	catalogName string
	dtHours     float64
	years       float64
	recordEvery int
	batch       int
	frameRate   int
	samples     int
	bodyIndex   int
	configFile  string
	preset      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbital",
		Short: "solar system gravity simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbital", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save the result",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&catalogName, "catalog", config.DefaultCatalog, "body catalog (solar, inner, twobody)")
	runCmd.Flags().Float64Var(&dtHours, "dt", 6.0, "timestep in hours")
	runCmd.Flags().Float64Var(&years, "years", 1.0, "simulated span in years")
	runCmd.Flags().IntVar(&recordEvery, "record-every", config.DefaultRecordEvery, "trail recording stride in steps")
	runCmd.Flags().IntVar(&samples, "samples", 365, "number of stored samples")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&catalogName, "catalog", config.DefaultCatalog, "body catalog")
	liveCmd.Flags().Float64Var(&dtHours, "dt", 6.0, "timestep in hours")
	liveCmd.Flags().IntVar(&recordEvery, "record-every", config.DefaultRecordEvery, "trail recording stride in steps")
	liveCmd.Flags().IntVar(&batch, "batch", config.DefaultBatch, "sub-steps per frame")
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFps, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies of a catalog",
		RunE:  listBodies,
	}
	bodiesCmd.Flags().StringVar(&catalogName, "catalog", config.DefaultCatalog, "body catalog")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index for the distance plot")

	presetsCmd := &cobra.Command{
		Use:   "presets [catalog]",
		Short: "list available presets for a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for catalog: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, bodiesCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and CLI flags into one Config.
// Precedence: explicit flags > config file > preset > defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(catalogName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(catalogName))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = catalogName
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dtHours * 3600
	}
	if cmd.Flags().Changed("years") {
		cfg.Duration = years * celestial.Year
	}
	if cmd.Flags().Changed("record-every") {
		cfg.RecordEvery = recordEvery
	}
	if cmd.Flags().Changed("batch") {
		cfg.Batch = batch
	}
	if cmd.Flags().Changed("fps") {
		cfg.Fps = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys, err := system.New(celestial.ByName(cfg.Catalog), cfg.RecordEvery)
	if err != nil {
		return err
	}

	plan, err := planSamples(cfg.Duration, cfg.Dt, samples)
	if err != nil {
		return err
	}

	fmt.Printf("simulating %s catalog: %.2f years at dt=%.1fh, %d bodies\n",
		cfg.Catalog, cfg.Duration/celestial.Year, cfg.Dt/3600, sys.BodyCount())
	start := time.Now()

	series := make([]storage.Sample, 0, len(plan))
	for _, n := range plan {
		if err := sys.SimulateSteps(n, cfg.Dt); err != nil {
			return err
		}
		series = append(series, storage.Sample{
			TimeDays:  sys.SimulatedDays(),
			Positions: sys.PositionsAU(),
			EnergyErr: sys.EnergyError(),
		})
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Catalog:     cfg.Catalog,
		Dt:          cfg.Dt,
		Duration:    sys.SimulatedTime(),
		Steps:       sys.StepCount(),
		Bodies:      sys.Names(),
		EnergyError: sys.EnergyError(),
		WallTime:    elapsed.Seconds(),
	}, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", sys.StepCount())
	fmt.Printf("simulated: %.2f days (%.4f years)\n", sys.SimulatedDays(), sys.SimulatedYears())
	fmt.Printf("energy error: %.3e\n", sys.EnergyError())
	return nil
}

// planSamples converts the run span into per-sample step counts. The whole
// span is resolved to floor(duration/dt) steps once, then spread across the
// samples with the remainder front-loaded, so every sample advances at
// least one step and no step is lost to per-chunk truncation. A span
// shorter than one step is an error, never a zero-step "run".
func planSamples(duration, dt float64, count int) ([]int, error) {
	totalSteps := int(duration / dt)
	if totalSteps < 1 {
		return nil, fmt.Errorf("duration %.0f s is shorter than one step of %.0f s; decrease --dt or increase the span", duration, dt)
	}
	if count < 1 {
		count = 1
	}
	if count > totalSteps {
		count = totalSteps
	}
	base, rem := totalSteps/count, totalSteps%count
	plan := make([]int, count)
	for i := range plan {
		plan[i] = base
		if i < rem {
			plan[i]++
		}
	}
	return plan, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := system.New(celestial.ByName(cfg.Catalog), cfg.RecordEvery)
	if err != nil {
		return err
	}

	return viz.Run(viz.NewSession(sys, cfg.Dt, cfg.Batch, cfg.Fps))
}

func listBodies(cmd *cobra.Command, args []string) error {
	cat := celestial.ByName(catalogName)
	if cat == nil {
		return fmt.Errorf("unknown catalog %q (available: %v)", catalogName, celestial.CatalogNames())
	}

	sys, err := system.New(cat, 1)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tNAME\tMASS [kg]\tRADIUS [km]\tDIST [AU]\tSPEED [km/s]")
	for i := 0; i < sys.BodyCount(); i++ {
		b, _ := sys.Body(i)
		dist, _ := sys.DistanceFromSun(i)
		fmt.Fprintf(w, "%d\t%s\t%.4e\t%.0f\t%.4f\t%.2f\n",
			i, b.Name, b.Mass, b.Radius/1000, dist/celestial.AU, b.Speed()/1000)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATALOG\tTIME\tSPAN [yr]\tDT [h]\tSTEPS\tENERGY ERR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f\t%d\t%.3e\n",
			run.ID,
			run.Catalog,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration/celestial.Year,
			run.Dt/3600,
			run.Steps,
			run.EnergyError,
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
	series, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("catalog: %s\n", meta.Catalog)
	fmt.Printf("samples: %d\n\n", len(series))

	energyErr := make([]float64, len(series))
	for i, s := range series {
		energyErr[i] = s.EnergyErr
	}
	fmt.Println(asciigraph.Plot(energyErr,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("relative energy error vs time")))
	fmt.Println()

	if bodyIndex <= 0 || bodyIndex >= len(meta.Bodies) {
		return nil
	}
	dist := make([]float64, 0, len(series))
	for _, s := range series {
		if bodyIndex < len(s.Positions) {
			dist = append(dist, s.Positions[bodyIndex].Sub(s.Positions[0]).Norm())
		}
	}
	fmt.Println(asciigraph.Plot(dist,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s distance from %s [AU]", meta.Bodies[bodyIndex], meta.Bodies[0]))))
	return nil
}
