package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/render"
)

var (
	errNoInput  = errors.New("solve: pass a grid file, - for stdin, or --maze")
	errTwoInput = errors.New("solve: --maze cannot be combined with a grid file")
)

// problem is a grid and the endpoints to connect.
type problem struct {
	grid          *grid.Grid
	start, target grid.Pos
}

func newSolveCmd(a *app) *cobra.Command {
	var useMaze bool
	cmd := &cobra.Command{
		Use:   "solve [grid.yaml | -]",
		Short: "Find the cheapest path on a grid literal or a generated maze",
		Long: `Solve reads a grid literal from a file (or stdin with -) and finds the
cheapest path from the start marker to the target marker. With --maze it
generates a maze from the maze settings and solves that instead.

A grid with no path is not an error: the result is reported as exhausted.
Hitting --max-iterations or --timeout is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readProblem(cmd, args, useMaze)
			if err == nil {
				err = a.solve(cmd, p)
			}
			if err != nil {
				// Post-run hooks are skipped on error; aborted searches
				// still belong in the metrics file.
				return errors.Join(err, a.flush(cmd, args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useMaze, "maze", false, "Solve a freshly generated maze")
	return cmd
}

// readProblem loads the grid from args or generates a maze.
func (a *app) readProblem(cmd *cobra.Command, args []string, useMaze bool) (problem, error) {
	switch {
	case useMaze && len(args) > 0:
		return problem{}, errTwoInput
	case useMaze:
		m, err := a.generate()
		if err != nil {
			return problem{}, err
		}
		g, err := m.Marked()
		if err != nil {
			return problem{}, err
		}
		return problem{grid: g, start: m.Start, target: m.Target}, nil
	case len(args) == 0:
		return problem{}, errNoInput
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return problem{}, fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := grid.Decode(r)
	if err != nil {
		return problem{}, err
	}
	start, target, err := g.Endpoints()
	if err != nil {
		return problem{}, err
	}
	a.log.Debug("grid loaded", "source", args[0], "width", g.Width(), "height", g.Height(), "depth", g.Depth())
	return problem{grid: g, start: start, target: target}, nil
}

// generate builds a maze from the maze settings and records it.
func (a *app) generate() (*maze.Result, error) {
	mc := a.cfg.Maze
	m, err := maze.Generate(maze.Config{
		Width:    mc.Width,
		Height:   mc.Height,
		Seed:     mc.Seed,
		Braiding: mc.Braiding,
	})
	if err != nil {
		return nil, err
	}
	a.rec.ObserveMaze()
	a.log.Info("maze generated",
		"width", m.Grid.Width(),
		"height", m.Grid.Height(),
		"seed", m.Seed,
		"braiding", mc.Braiding)
	return m, nil
}

// solve runs one search and writes the result in the configured mode.
func (a *app) solve(cmd *cobra.Command, p problem) error {
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}
	opts = append(opts, astar.WithContext(ctx), astar.WithLogger(a.log))
	if a.cfg.Level() <= slog.LevelDebug {
		opts = append(opts, astar.WithDebug())
	}

	mode, err := render.ParseMode(a.cfg.Render.Mode)
	if err != nil {
		return err
	}
	if mode == render.ModeTerminal && !isTerminal(cmd.OutOrStdout()) {
		a.log.Warn("output is not a terminal, rendering text instead")
		mode = render.ModeText
	}
	var screen *render.Terminal
	if mode == render.ModeTerminal {
		if screen, err = render.OpenTerminal(a.cfg.Delay); err != nil {
			return fmt.Errorf("solve: open terminal: %w", err)
		}
		opts = append(opts, astar.WithOnExpand(screen.Hook(p.grid, p.start, p.target)))
	}

	e, err := astar.New(p.grid, p.start, p.target, opts...)
	if err != nil {
		if screen != nil {
			screen.Close()
		}
		return err
	}
	began := time.Now()
	res, searchErr := e.Evaluate()
	elapsed := time.Since(began)
	if screen != nil {
		screen.Close()
		if herr := screen.Err(); herr != nil {
			a.log.Warn("animation failed", "error", herr)
		}
	}

	a.rec.ObserveSearch(res, elapsed)
	a.log.Info("search finished",
		"state", res.State.String(),
		"iterations", res.Iterations,
		"cost", res.Cost(),
		"length", len(res.Path()),
		"elapsed", elapsed)

	if err = a.output(cmd.OutOrStdout(), mode, render.FrameFromResult(p.grid, res)); err != nil {
		return err
	}
	return searchErr
}

// output writes f according to mode. Terminal and none print the status line.
func (a *app) output(w io.Writer, mode render.Mode, f render.Frame) error {
	switch mode {
	case render.ModeText:
		return render.NewText(w).Render(f)
	case render.ModePNG:
		path := a.cfg.Render.PNGPath
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		p, err := render.NewPNG(file, a.cfg.Render.CellSize)
		if err == nil {
			err = p.Render(f)
		}
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("solve: write %s: %w", path, err)
		}
		_, err = fmt.Fprintf(w, "%s\nwrote %s\n", f.Status(), path)
		return err
	default:
		_, err := fmt.Fprintln(w, f.Status())
		return err
	}
}
