package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rigidsim/internal/config"
	"github.com/san-kum/rigidsim/internal/metrics"
	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/storage"
	"github.com/san-kum/rigidsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	dt         float64
	steps      int
	gravityY   float64
	bodyID     int64
	axisName   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rigidsim",
		Short: "rigid body physics sandbox",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rigidsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().IntVar(&steps, "steps", 0, "step count override")
	runCmd.Flags().Float64Var(&gravityY, "gravity", 0, "vertical gravity override")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	liveCmd.Flags().IntVar(&steps, "steps", 0, "step count override")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one body's trajectory component",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().Int64Var(&bodyID, "body", 1, "body handle")
	plotCmd.Flags().StringVar(&axisName, "axis", "py", "component: px,py,pz,vx,vy,vz")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(cmd *cobra.Command, args []string) (*config.Scenario, error) {
	var s *config.Scenario
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		s = loaded
	case len(args) == 1:
		preset, ok := config.Presets[args[0]]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", args[0])
		}
		copied := *preset
		s = &copied
	default:
		s = config.Presets["drop"]
		copied := *s
		s = &copied
	}
	if dt > 0 {
		s.Dt = dt
	}
	if steps > 0 {
		s.Steps = steps
	}
	if cmd.Flags().Changed("gravity") {
		s.Gravity = [3]float64{0, gravityY, 0}
	}
	return s, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	eng, _, err := s.Build()
	if err != nil {
		return err
	}
	defer eng.Shutdown()

	eng.AddMetric(metrics.NewKinetic())
	eng.AddMetric(metrics.NewContacts())
	eng.AddMetric(metrics.NewMaxPenetration())

	rec := storage.NewRecorder()
	eng.AddObserver(rec)

	for i := 0; i < s.Steps; i++ {
		if err := eng.Update(s.Dt); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	values := eng.MetricValues()
	runID, err := store.Save(s.Name, s.Dt, values, rec)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s  steps: %d  dt: %g\n\n", s.Name, s.Steps, s.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", name, values[name])
	}
	w.Flush()
	fmt.Printf("\nsaved run: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tBODIES\tDT\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%s\n",
			r.ID, r.Scenario, r.Steps, r.Bodies, r.Dt,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

var axes = map[string]int{
	"px": storage.AxisPX, "py": storage.AxisPY, "pz": storage.AxisPZ,
	"vx": storage.AxisVX, "vy": storage.AxisVY, "vz": storage.AxisVZ,
}

func plotRun(cmd *cobra.Command, args []string) error {
	axis, ok := axes[axisName]
	if !ok {
		return fmt.Errorf("unknown axis %q", axisName)
	}

	store := storage.New(dataDir)
	series, err := store.LoadSeries(args[0], phys.ID(bodyID), axis)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no samples for body %d in run %s", bodyID, args[0])
	}

	caption := "body " + strconv.FormatInt(bodyID, 10) + " " + axisName
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(config.Presets))
	for name := range config.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tSTEPS\tGRAVITY")
	for _, name := range names {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t(%g, %g, %g)\n",
			name, len(p.Bodies), p.Steps, p.Gravity[0], p.Gravity[1], p.Gravity[2])
	}
	return w.Flush()
}
