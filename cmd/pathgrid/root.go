package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/metrics"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	envFiles []string

	cfg   *config.Config
	log   *slog.Logger
	runID string
	rec   *metrics.Recorder
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{rec: metrics.NewRecorder()}
	cmd := &cobra.Command{
		Use:   "pathgrid",
		Short: "Grid A* search and maze generation",
		Long: `pathgrid finds minimum-cost paths on weighted grids with A*.

Grids are YAML literals of markers: -1 start, 0 free, 1 wall, 2 target,
3 and above extra cost for entering the cell. Mazes can be generated
and solved directly with "solve --maze".

Settings come from defaults, --config, a .env file, PATHGRID_* variables
and flags, each overriding the previous.`,
		PersistentPreRunE:  a.load,
		PersistentPostRunE: a.flush,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	registerFlags(cmd, a)

	cmd.AddCommand(newSolveCmd(a))
	cmd.AddCommand(newMazeCmd(a))
	cmd.AddCommand(newHeuristicsCmd(a))
	return cmd
}

// registerFlags declares the persistent flags. Their names are the keys of
// config.FlagKeys; defaults mirror config.DefaultConfig for help output.
func registerFlags(cmd *cobra.Command, a *app) {
	d := config.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Path to a YAML config file")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default: .env when present)")
	pf.String("log-level", d.LogLevel, "Log level (debug|info|warn|error)")
	pf.String("metrics-file", d.MetricsFile, "Write Prometheus metrics to this file on exit")

	pf.String("heuristic", d.Heuristic, "Heuristic (manhattan|euclidean|chebyshev|octile|diagonal|zero)")
	pf.String("step", d.StepCost, "Step cost (euclidean|manhattan|static)")
	pf.Float64("step-constant", d.StepConstant, "Cost per move for --step static")
	pf.String("goal", d.GoalPolicy, "Stop when the target is discovered or expanded (discovery|expansion)")
	pf.Int("max-iterations", d.MaxIterations, "Abort after this many expansions (0 = unlimited)")
	pf.Duration("timeout", d.Timeout, "Abort the search after this long (0 = none)")
	pf.Duration("delay", d.Delay, "Pause between animation frames in terminal mode")

	pf.Int("width", d.Maze.Width, "Maze width, rounded down to odd")
	pf.Int("height", d.Maze.Height, "Maze height, rounded down to odd")
	pf.Int64("seed", d.Maze.Seed, "Maze seed (0 = time based)")
	pf.Float64("braiding", d.Maze.Braiding, "Probability of opening a loop at each dead end")

	pf.String("render", d.Render.Mode, "Output (text|terminal|png|none)")
	pf.String("png", d.Render.PNGPath, "Output file for --render png")
	pf.Int("cell-size", d.Render.CellSize, "Pixels per cell for --render png")
}

// load resolves configuration and sets up logging before any command runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Sources{
		File:     a.cfgFile,
		EnvFiles: a.envFiles,
		Flags:    cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()})
	a.log = slog.New(handler).With("run_id", a.runID)
	a.log.Debug("configuration loaded", "config_file", a.cfgFile, "heuristic", cfg.Heuristic, "step", cfg.StepCost)
	return nil
}

// flush writes the metrics textfile, if configured.
func (a *app) flush(_ *cobra.Command, _ []string) error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.rec.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", a.cfg.MetricsFile)
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
