package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/grid"
)

const wallGrid = `cells:
  - [-1, 0, 0]
  - [ 1, 1, 0]
  - [ 2, 0, 0]
`

// run executes a fresh command tree and captures its output. An empty env
// file keeps any .env next to the tests out of the run.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	env := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(env, nil, 0o600))

	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", env}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func writeGrid(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wallGrid), 0o600))
	return path
}

func TestSolve_File(t *testing.T) {
	out, logs, err := run(t, "", "solve", writeGrid(t))
	require.NoError(t, err)
	assert.Equal(t, "S**\n##*\nT**\nfound iterations=5 cost=6\n", out)
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, `msg="search finished"`)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, wallGrid, "solve", "-", "--render", "none", "--heuristic", "zero")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "found "), out)
	assert.Contains(t, out, "cost=6")
}

func TestSolve_DebugLogging(t *testing.T) {
	_, logs, err := run(t, "", "solve", writeGrid(t), "--render", "none", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(logs, "msg=expand"))
}

func TestSolve_Maze(t *testing.T) {
	out, logs, err := run(t, "", "solve", "--maze", "--width", "15", "--height", "9", "--seed", "4", "--render", "none")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "found "), out)
	assert.Contains(t, logs, "seed=4")
}

func TestSolve_PNGAndMetrics(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "out.png")
	prom := filepath.Join(dir, "pathgrid.prom")
	out, _, err := run(t, "", "solve", writeGrid(t),
		"--render", "png", "--png", img, "--cell-size", "5", "--metrics-file", prom)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+img)

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 15, decoded.Bounds().Dx())

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `pathgrid_searches_total{state="found"} 1`)
}

func TestSolve_AbortedWritesMetrics(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "pathgrid.prom")
	_, _, err := run(t, "", "solve", "--maze", "--width", "41", "--height", "41", "--seed", "1",
		"--max-iterations", "2", "--render", "none", "--metrics-file", prom)
	require.ErrorIs(t, err, astar.ErrIterationLimit)

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `pathgrid_searches_total{state="aborted"} 1`)
	assert.Contains(t, string(raw), `pathgrid_mazes_generated_total 1`)
}

func TestSolve_TerminalFallsBackToText(t *testing.T) {
	out, logs, err := run(t, "", "solve", writeGrid(t), "--render", "terminal")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S**\n"), out)
	assert.Contains(t, logs, "not a terminal")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "", "solve")
	require.ErrorIs(t, err, errNoInput)

	_, _, err = run(t, "", "solve", "--maze", writeGrid(t))
	require.ErrorIs(t, err, errTwoInput)

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, _, err = run(t, "cells:\n  - [0, 2]\n", "solve", "-")
	require.ErrorIs(t, err, grid.ErrMissingStart)

	_, _, err = run(t, "", "solve", writeGrid(t), "--heuristic", "psychic")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	out, _, err := run(t, "", "solve", "--maze", "--width", "41", "--height", "41", "--seed", "1",
		"--max-iterations", "2", "--render", "none")
	require.ErrorIs(t, err, astar.ErrIterationLimit)
	assert.Equal(t, "aborted iterations=2\n", out)
}

func TestMaze_YAMLRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "maze", "--width", "12", "--height", "8", "--seed", "9", "--format", "yaml")
	require.NoError(t, err)

	g, err := grid.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 11, g.Width())
	assert.Equal(t, 7, g.Height())
	start, target, err := g.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(0, 0), start)
	assert.Equal(t, grid.Pt(10, 6), target)
	assert.True(t, g.Connected())

	solved, _, err := run(t, out, "solve", "-", "--render", "none")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(solved, "found "))
}

func TestMaze_Text(t *testing.T) {
	out, _, err := run(t, "", "maze", "--width", "9", "--height", "5", "--seed", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('T'), lines[4][8])

	_, _, err = run(t, "", "maze", "--format", "gif")
	require.Error(t, err)
}

func TestHeuristics(t *testing.T) {
	out, _, err := run(t, "", "heuristics", "--step-constant", "0.5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"HEURISTIC", "EUCLIDEAN", "MANHATTAN", "STATIC(0.5)"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"manhattan", "yes", "yes", "no"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"zero", "yes", "yes", "yes"}, strings.Fields(lines[6]))
}
