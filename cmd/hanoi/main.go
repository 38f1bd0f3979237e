package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/hanoi/internal/config"
	"github.com/san-kum/hanoi/internal/export"
	"github.com/san-kum/hanoi/internal/gui"
	"github.com/san-kum/hanoi/internal/hanoi"
	"github.com/san-kum/hanoi/internal/viz"
)

var (
	logLevel string
	logFile  string
	// play
	configFile string
	preset     string
	disks      int
	fps        int
	stepMs     float64
	theme      string
	autostart  bool
	strict     bool
	// solve
	format string
	limit  int
	from   string
	to     string
	// verify
	verifyAll bool
	// bench
	minDisks int
	maxDisks int
	// plot / render
	svgOut string
	step   int
	width  int
	height int
)

// main runs the root command, which opens the preset menu when no
// subcommand is given. It exits with status 1 on error.
func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("hanoi")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hanoi",
		Short:         "towers of hanoi in 3d",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := playConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := tuiLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.RunMenu(cfg, logger)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write player logs to this file")
	addPlayFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play the solution in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	addPlayFlags(playCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "play the solution in a 3d window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addPlayFlags(guiCmd)

	solveCmd := &cobra.Command{
		Use:   "solve [disks]",
		Short: "print the optimal move plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, csv, json)")
	solveCmd.Flags().IntVar(&limit, "limit", 0, "print at most this many moves")
	solveCmd.Flags().StringVar(&from, "from", "A", "rod the disks start on")
	solveCmd.Flags().StringVar(&to, "to", "C", "rod the disks finish on")

	verifyCmd := &cobra.Command{
		Use:   "verify [disks]",
		Short: "replay the plan and check every move",
		Args:  cobra.RangeArgs(0, 1),
		RunE:  runVerify,
	}
	verifyCmd.Flags().BoolVar(&verifyAll, "all", false, "verify every supported disk count concurrently")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the solver across disk counts",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&minDisks, "min", config.MinDisks, "smallest disk count")
	benchCmd.Flags().IntVar(&maxDisks, "max", 20, "largest disk count")

	plotCmd := &cobra.Command{
		Use:   "plot [disks]",
		Short: "plot rod heights across the plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the plot as svg")

	renderCmd := &cobra.Command{
		Use:   "render [disks]",
		Short: "render the scene after a given step as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&step, "step", 0, "number of moves applied before rendering")
	renderCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&width, "width", 80, "canvas width in cells")
	renderCmd.Flags().IntVar(&height, "height", 40, "canvas height in cells")
	renderCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISKS\tMOVES\tSTEP\tFPS\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0fms\t%d\t%s\n", name, p.Disks, hanoi.MoveCount(p.Disks), p.StepMs, p.FPS, p.Theme)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, guiCmd, solveCmd, verifyCmd, benchCmd, plotCmd, renderCmd, presetsCmd)
	return rootCmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVarP(&disks, "disks", "n", config.DefaultDisks, "number of disks")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Float64Var(&stepMs, "step-ms", config.DefaultStepMs, "milliseconds per move")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	cmd.Flags().BoolVar(&autostart, "autostart", false, "start playback once loaded")
	cmd.Flags().BoolVar(&strict, "strict", false, "check the stacking rule on every move")
}

// setupLogger points the global logger at stderr. The level comes from
// --log-level, then HANOI_LOG_LEVEL, then info.
func setupLogger() error {
	lvl := logLevel
	if lvl == "" {
		lvl = os.Getenv("HANOI_LOG_LEVEL")
	}
	if lvl == "" {
		lvl = config.DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	return nil
}

// tuiLogger returns the player's logger. The terminal belongs to the UI, so
// logs go to --log-file when set and nowhere otherwise.
func tuiLogger(level string) (zerolog.Logger, func(), error) {
	if logFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	l := zerolog.New(f).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		l = l.Level(lvl)
	}
	return l, func() { f.Close() }, nil
}

// playConfig layers defaults, preset, config file, environment and the
// flags that were set explicitly, in that order.
func playConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("disks") {
		cfg.Disks = disks
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("step-ms") {
		cfg.StepMs = stepMs
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("autostart") {
		cfg.Autostart = autostart
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := viz.CheckTheme(cfg.Theme); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := playConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := tuiLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info().Int("disks", cfg.Disks).Str("theme", cfg.Theme).Int("fps", cfg.FPS).Msg("starting player")
	return viz.Run(cfg, logger)
}

// runGUI opens the raylib window. The terminal stays free, so logs go to
// stderr through the global logger.
func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := playConfig(cmd)
	if err != nil {
		return err
	}
	logger := log.Logger
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		logger = logger.Level(lvl)
	}
	logger.Info().Int("disks", cfg.Disks).Str("theme", cfg.Theme).Int("fps", cfg.FPS).Msg("opening window")
	return gui.Run(cfg, logger)
}

// diskArg parses a disk count argument and checks it against the player's
// supported range.
func diskArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("disks: %w", err)
	}
	if err := config.CheckDisks(n); err != nil {
		return 0, err
	}
	return n, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	n, err := diskArg(args[0])
	if err != nil {
		return err
	}
	source, err := hanoi.ParseRod(from)
	if err != nil {
		return err
	}
	target, err := hanoi.ParseRod(to)
	if err != nil {
		return err
	}
	src, err := export.Solution(n, source, target)
	if err != nil {
		return err
	}
	src = src.Limit(limit)
	log.Debug().Int("disks", n).Uint64("moves", src.Count).Str("format", format).
		Stringer("from", source).Stringer("to", target).Msg("solve")
	return export.Write(cmd.OutOrStdout(), format, src)
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if verifyAll {
		counts := make([]int, 0, config.MaxDisks-config.MinDisks+1)
		for n := config.MinDisks; n <= config.MaxDisks; n++ {
			counts = append(counts, n)
		}
		results, err := hanoi.VerifyAll(cmd.Context(), counts)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DISKS\tMOVES\tTIME\tRESULT")
		for _, r := range results {
			res := "ok"
			if r.Err != nil {
				res = r.Err.Error()
			}
			fmt.Fprintf(w, "%d\t%d\t%v\t%s\n", r.N, r.Moves, r.Took.Round(time.Microsecond), res)
		}
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("verify needs a disk count or --all")
	}
	n, err := diskArg(args[0])
	if err != nil {
		return err
	}
	v := hanoi.Verify(cmd.Context(), n)
	if v.Err != nil {
		return v.Err
	}

	fmt.Fprintf(out, "disks:  %d\n", n)
	fmt.Fprintf(out, "moves:  %d (expected %d)\n", v.Moves, hanoi.MoveCount(n))
	if n <= 10 {
		fmt.Fprintf(out, "final:  %s\n", v.Final)
	}
	fmt.Fprintf(out, "time:   %v\n", v.Took.Round(time.Microsecond))
	fmt.Fprintln(out, "ok")
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if minDisks < 0 || maxDisks < minDisks || maxDisks > config.MaxDisks {
		return fmt.Errorf("%w: range [%d, %d]", hanoi.ErrInvalidDiskCount, minDisks, maxDisks)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISKS\tMOVES\tSOLVE\tWALK\tMOVES/SEC")
	for n := minDisks; n <= maxDisks; n++ {
		start := time.Now()
		plan := hanoi.Solve(n, hanoi.A, hanoi.C, hanoi.B)
		solveTime := time.Since(start)

		start = time.Now()
		walked := 0
		hanoi.Walk(n, hanoi.A, hanoi.C, hanoi.B, func(int, hanoi.Move) bool {
			walked++
			return true
		})
		walkTime := time.Since(start)

		rate := float64(plan.Len()) / solveTime.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.0f\n", n, plan.Len(), solveTime.Round(time.Microsecond), walkTime.Round(time.Microsecond), rate)
		log.Debug().Int("disks", n).Int("walked", walked).Dur("solve", solveTime).Msg("bench")
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	n, err := diskArg(args[0])
	if err != nil {
		return err
	}
	heights, err := export.RodHeights(export.Optimal(n), 78)
	if err != nil {
		return err
	}
	series := [][]float64{heights[hanoi.A], heights[hanoi.B], heights[hanoi.C]}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("rod heights, %d disks, %d moves (A red, B green, C blue)", n, hanoi.MoveCount(n))),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	if svgOut == "" {
		return nil
	}
	return writeFile(svgOut, func(w io.Writer) error {
		return export.SeriesToSVG(w, series, []string{"#ff5966", "#77bf56", "#59b5d9"}, 800, 300)
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	n, err := diskArg(args[0])
	if err != nil {
		return err
	}
	if err := viz.CheckTheme(theme); err != nil {
		return err
	}
	cfg := config.DefaultConfig()
	cfg.Theme = theme

	canvas, err := viz.Still(cfg, n, step, width, height)
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Theme)
	svg := export.CanvasToSVG(canvas, 4, th.Colors(), string(th.Primary))

	if svgOut == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), svg)
		return err
	}
	return writeFile(svgOut, func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	log.Info().Str("path", path).Msg("written")
	return f.Close()
}
