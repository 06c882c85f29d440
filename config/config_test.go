package config_test

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/config"
)

// noDotenv points Load at an empty env file so a stray .env in the package
// directory cannot leak in.
func noDotenv(t *testing.T) []string {
	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return []string{path}
}

func writeFile(t *testing.T, name, body string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.Sources{EnvFiles: noDotenv(t)})
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
	require.Equal(t, slog.LevelInfo, cfg.Level())

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	require.Len(t, opts, 4)
}

func TestLoad_Precedence(t *testing.T) {
	file := writeFile(t, "pathgrid.yaml", `
heuristic: euclidean
goal_policy: expansion
timeout: 2s
maze:
  width: 31
  braiding: 0.25
render:
  mode: none
`)
	t.Setenv("PATHGRID_HEURISTIC", "octile")
	t.Setenv("PATHGRID_MAZE_HEIGHT", "15")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", 0, "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--width=51"}))

	cfg, err := config.Load(config.Sources{File: file, EnvFiles: noDotenv(t), Flags: flags})
	require.NoError(t, err)

	require.Equal(t, "octile", cfg.Heuristic, "env beats file")
	require.Equal(t, "expansion", cfg.GoalPolicy)
	require.Equal(t, 2*time.Second, cfg.Timeout)
	require.Equal(t, 51, cfg.Maze.Width, "flag beats file")
	require.Equal(t, 15, cfg.Maze.Height)
	require.Equal(t, 0.25, cfg.Maze.Braiding)
	require.Equal(t, "none", cfg.Render.Mode)
	require.Equal(t, "info", cfg.LogLevel, "unset flag keeps default")
}

func TestLoad_Dotenv(t *testing.T) {
	env := writeFile(t, "test.env", "PATHGRID_LOG_LEVEL=debug\nPATHGRID_MAX_ITERATIONS=500\n")
	t.Cleanup(func() {
		os.Unsetenv("PATHGRID_LOG_LEVEL")
		os.Unsetenv("PATHGRID_MAX_ITERATIONS")
	})

	cfg, err := config.Load(config.Sources{EnvFiles: []string{env}})
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.Level())
	require.Equal(t, 500, cfg.MaxIterations)

	_, err = config.Load(config.Sources{EnvFiles: []string{filepath.Join(t.TempDir(), "nope.env")}})
	require.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.Sources{File: filepath.Join(t.TempDir(), "missing.yaml"), EnvFiles: noDotenv(t)})
	require.Error(t, err)

	bad := writeFile(t, "bad.yaml", "maze: [1, 2\n")
	_, err = config.Load(config.Sources{File: bad, EnvFiles: noDotenv(t)})
	require.Error(t, err)

	t.Setenv("PATHGRID_RENDER_MODE", "svg")
	_, err = config.Load(config.Sources{EnvFiles: noDotenv(t)})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{"Defaults", func(*config.Config) {}, true},
		{"DijkstraAlias", func(c *config.Config) { c.Heuristic = "dijkstra" }, true},
		{"StaticStep", func(c *config.Config) { c.StepCost = "static"; c.StepConstant = 2 }, true},
		{"UnknownHeuristic", func(c *config.Config) { c.Heuristic = "psychic" }, false},
		{"UnknownStep", func(c *config.Config) { c.StepCost = "teleport" }, false},
		{"NegativeConstant", func(c *config.Config) { c.StepConstant = -1 }, false},
		{"InfiniteConstant", func(c *config.Config) { c.StepCost = "static"; c.StepConstant = math.Inf(1) }, false},
		{"BadPolicy", func(c *config.Config) { c.GoalPolicy = "whenever" }, false},
		{"NegativeIterations", func(c *config.Config) { c.MaxIterations = -5 }, false},
		{"NegativeTimeout", func(c *config.Config) { c.Timeout = -time.Second }, false},
		{"BadLogLevel", func(c *config.Config) { c.LogLevel = "loud" }, false},
		{"ZeroWidth", func(c *config.Config) { c.Maze.Width = 0 }, false},
		{"BraidingAboveOne", func(c *config.Config) { c.Maze.Braiding = 1.5 }, false},
		{"PNGWithoutPath", func(c *config.Config) { c.Render.Mode = "png"; c.Render.PNGPath = "" }, false},
		{"ZeroCellSize", func(c *config.Config) { c.Render.CellSize = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	var nilCfg *config.Config
	require.ErrorIs(t, nilCfg.Validate(), config.ErrInvalidConfig)
}
