package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/automation"
	"github.com/san-kum/gridsketch/internal/config"
	"github.com/san-kum/gridsketch/internal/experiment"
	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/gui"
	"github.com/san-kum/gridsketch/internal/logging"
	"github.com/san-kum/gridsketch/internal/metrics"
	"github.com/san-kum/gridsketch/internal/optim"
	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"
	"github.com/san-kum/gridsketch/internal/store"
	"github.com/san-kum/gridsketch/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	logLevel   string

	seed      int64
	size      int
	preset    string
	paletteID string
	circleP   float64
	alpha     int
	minGrid   int
	maxGrid   int

	output    string
	fromID    string
	saveScene bool

	runs      int
	seedStart int64
	bins      int
	format    string
	workers   int

	target optim.Target

	log zerolog.Logger
)

// main registers the gridsketch commands and executes the root command. With
// no subcommand it opens the window.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gridsketch",
		Short: "generative grid of circles and squares",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.Stderr(logLevel)
		},
		RunE: runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default "+config.DefaultDataDir+")")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	addSceneFlags(rootCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "show the sketch in a window",
		RunE:  runWindow,
	}
	addSceneFlags(windowCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the sketch to a png, gif or svg file",
		RunE:  renderSketch,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "out", "o", "sketch.png", "output file; format from extension")
	renderCmd.Flags().StringVar(&fromID, "from", "", "render a stored scene by id")
	renderCmd.Flags().BoolVar(&saveScene, "save", false, "store the composed scene")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "preview the sketch in the terminal",
		RunE:  runPreview,
	}
	addSceneFlags(previewCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "composition statistics over many seeds",
		RunE:  sceneStats,
	}
	addSceneFlags(statsCmd)
	statsCmd.Flags().IntVar(&runs, "runs", 100, "number of scenes")
	statsCmd.Flags().Int64Var(&seedStart, "seed-start", 0, "first seed")
	statsCmd.Flags().IntVar(&bins, "bins", 30, "size histogram bins")
	statsCmd.Flags().IntVar(&workers, "workers", 0, "concurrent compositions (0 = GOMAXPROCS)")

	batchCmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "render consecutive seeds into a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  batchRender,
	}
	addSceneFlags(batchCmd)
	batchCmd.Flags().IntVar(&runs, "runs", 10, "number of scenes")
	batchCmd.Flags().Int64Var(&seedStart, "seed-start", 1, "first seed")
	batchCmd.Flags().StringVar(&format, "format", "png", "output format")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent renders (0 = GOMAXPROCS)")

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml gallery script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list available palettes",
		RunE:  listPalettes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s grid %d-%d  circles %.0f%%  alpha %d  size %.1f-%.1f\n",
					name, p.Grid.Min, p.Grid.Max, p.Shapes.CircleProbability*100,
					p.Cells.Alpha, p.Cells.MinSizeFactor, p.Cells.MaxSizeFactor)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored scenes",
		RunE:  listScenes,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a stored scene",
		Args:  cobra.ExactArgs(1),
		RunE:  showScene,
	}

	findCmd := &cobra.Command{
		Use:   "find",
		Short: "search seeds for a scene matching a target",
		RunE:  findSeed,
	}
	addSceneFlags(findCmd)
	findCmd.Flags().IntVar(&runs, "runs", 1000, "number of seeds to try")
	findCmd.Flags().Int64Var(&seedStart, "seed-start", 1, "first seed")
	findCmd.Flags().IntVar(&target.GridSize, "grid", 0, "target grid size")
	findCmd.Flags().StringVar(&target.Palette, "target-palette", "", "target palette")
	findCmd.Flags().StringVar(&target.Background, "background", "", "target background (black or white)")
	findCmd.Flags().Float64Var(&target.CircleFraction, "circle-fraction", 0, "target fraction of circles")

	rootCmd.AddCommand(windowCmd, renderCmd, previewCmd, statsCmd, batchCmd, scriptCmd, findCmd, palettesCmd, presetsCmd, listCmd, showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntVar(&size, "size", 0, "canvas side in pixels")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&paletteID, "palette", "", "palette name (default random)")
	cmd.Flags().Float64Var(&circleP, "circles", scene.DefaultCircleProbability, "probability a cell is a circle")
	cmd.Flags().IntVar(&alpha, "alpha", scene.DefaultAlpha, "cell alpha (0-255)")
	cmd.Flags().IntVar(&minGrid, "min-grid", scene.DefaultMinGrid, "smallest grid size")
	cmd.Flags().IntVar(&maxGrid, "max-grid", scene.DefaultMaxGrid, "largest grid size")
}

// loadConfig resolves defaults, then the preset, then the config file, then
// explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	o := config.Overrides{DataDir: dataDir}
	if flags.Changed("seed") {
		o.Seed = &seed
	}
	if flags.Changed("size") {
		o.Size = &size
	}
	if flags.Changed("palette") {
		o.Palette = &paletteID
	}
	if flags.Changed("circles") {
		o.CircleProbability = &circleP
	}
	if flags.Changed("alpha") {
		o.Alpha = &alpha
	}
	if flags.Changed("min-grid") {
		o.MinGrid = &minGrid
	}
	if flags.Changed("max-grid") {
		o.MaxGrid = &maxGrid
	}
	return config.Resolve(preset, configFile, o)
}

func newComposer(cfg *config.Config) (*scene.Composer, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return scene.NewComposer(cfg.Params(), reg, log), nil
}

func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return random.NewSeed()
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	composer, err := newComposer(cfg)
	if err != nil {
		return err
	}

	app := &gui.App{
		Composer: composer,
		Exports:  export.NewRegistry(),
		Log:      log,
		Seed:     resolveSeed(cfg),
		SaveDir:  ".",
	}
	if cfg.Canvas != (config.CanvasConfig{}) {
		app.Size = cfg.CanvasSize()
	}
	app.Run()
	return nil
}

func renderSketch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := store.New(cfg.DataDir)

	var sc *scene.Scene
	if fromID != "" {
		sc, err = st.LoadScene(fromID)
		if err != nil {
			return err
		}
	} else {
		composer, err := newComposer(cfg)
		if err != nil {
			return err
		}
		sc = composer.Compose(float64(cfg.CanvasSize()), random.New(resolveSeed(cfg)))
	}

	px := cfg.CanvasSize()
	if fromID != "" && !cmd.Flags().Changed("size") {
		px = int(sc.CanvasSize)
	}
	if err := export.NewRegistry().WriteFile(output, sc, px); err != nil {
		return err
	}
	log.Info().Str("path", output).Int64("seed", sc.Seed).Int("grid", sc.GridSize).Str("palette", sc.Palette).Msg("rendered")

	if saveScene && fromID == "" {
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(sc, cfg.Params())
		if err != nil {
			return err
		}
		fmt.Printf("saved scene %s\n", id)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Keep log lines off the alt screen.
	log = logging.Stderr("error")
	composer, err := newComposer(cfg)
	if err != nil {
		return err
	}
	return viz.RunPreview(composer, export.NewRegistry(), ".", cfg.CanvasSize(), resolveSeed(cfg))
}

func sceneStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log = log.Level(zerolog.WarnLevel)
	composer, err := newComposer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := experiment.NewEnsemble(composer, float64(cfg.CanvasSize()), runs, seedStart)
	ens.Workers = workers
	scenes, err := ens.Run(ctx)
	if err != nil {
		return err
	}

	all := make([]metrics.Stats, len(scenes))
	for i, s := range scenes {
		all[i] = metrics.Compute(s)
	}
	agg := metrics.Aggregate(all)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENES\tCELLS\tCIRCLES\tSQUARES\tCIRCLE%\tSIZE MIN\tSIZE MEAN\tSIZE MAX\tWHITE BG")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.2f\t%.3f\t%.3f\t%.3f\t%d\n",
		agg.Scenes, agg.Cells, agg.Circles, agg.Squares, agg.CircleFraction*100,
		agg.MinSize, agg.MeanSize, agg.MaxSize, agg.WhiteBackgrounds)
	w.Flush()
	fmt.Println()

	names := make([]string, 0, len(agg.Palettes))
	for name := range agg.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, agg.Palettes[name])
	}
	fmt.Println()

	if bins > 0 && agg.Cells > 0 {
		p := composer.Params()
		hist := metrics.SizeHistogram(scenes, p.MinSizeFactor, p.MaxSizeFactor, bins)
		graph := asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("cell size / cell side, %.1f to %.1f", p.MinSizeFactor, p.MaxSizeFactor)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func batchRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	composer, err := newComposer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := experiment.NewEnsemble(composer, float64(cfg.CanvasSize()), runs, seedStart)
	ens.Workers = workers
	b := &experiment.Batch{
		Ensemble: ens,
		Exports:  export.NewRegistry(),
		Dir:      args[0],
		Format:   format,
		Size:     cfg.CanvasSize(),
	}
	paths, err := b.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("files", len(paths)).Str("dir", args[0]).Msg("batch complete")
	return nil
}

func findSeed(cmd *cobra.Command, args []string) error {
	if target.Background != "" && target.Background != "black" && target.Background != "white" {
		return fmt.Errorf("background must be black or white, got %q", target.Background)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log = log.Level(zerolog.WarnLevel)
	composer, err := newComposer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	best, score, err := optim.NewSeedSearch(composer, float64(cfg.CanvasSize())).Search(ctx, target, seedStart, runs)
	if err != nil {
		return err
	}
	fmt.Printf("best seed %d (score %.3f)\n", best, score)
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	script, err := automation.LoadScript(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &automation.Runner{
		Base:    cfg,
		Exports: export.NewRegistry(),
		Dir:     filepath.Dir(args[0]),
		Log:     log,
	}
	written, err := r.Run(ctx, script)
	for _, p := range written {
		fmt.Println(p)
	}
	return err
}

func listPalettes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		sel, _ := reg.Get(name)
		fmt.Printf("%s\n  %s\n", viz.Title.Render(name), viz.Swatches(sel))
	}
	fmt.Printf("%s\n  %s\n", viz.Title.Render("default"), viz.Swatches(palette.Default{}))
	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenes, err := store.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(scenes) == 0 {
		fmt.Println("no scenes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tGRID\tPALETTE\tBG\tCIRCLES\tSQUARES")

	for _, m := range scenes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%d\t%d\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04"),
			m.Seed,
			m.GridSize,
			m.Palette,
			m.Background,
			m.Circles,
			m.Squares,
		)
	}

	return w.Flush()
}

func showScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := store.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	sc, err := st.LoadScene(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(meta.ID))
	fmt.Println(viz.Metric("seed", fmt.Sprint(meta.Seed)), " ",
		viz.Metric("grid", fmt.Sprintf("%dx%d", meta.GridSize, meta.GridSize)), " ",
		viz.Metric("canvas", fmt.Sprintf("%.0f", meta.CanvasSize)), " ",
		viz.Metric("palette", meta.Palette), " ",
		viz.Metric("background", meta.Background))

	summary := metrics.Compute(sc)
	fmt.Println(viz.Metric("circles", fmt.Sprint(summary.Circles)), " ",
		viz.Metric("squares", fmt.Sprint(summary.Squares)), " ",
		viz.Metric("mean size", fmt.Sprintf("%.2f", summary.MeanSize)))
	fmt.Println()

	usage := metrics.ColorUsage(sc)
	hexes := make([]string, 0, len(usage))
	for h := range usage {
		hexes = append(hexes, h)
	}
	sort.Slice(hexes, func(i, j int) bool { return usage[hexes[i]] > usage[hexes[j]] })
	for _, h := range hexes {
		fmt.Printf("  %s %5d\n", h, usage[h])
	}
	return nil
}
