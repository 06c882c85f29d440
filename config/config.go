// Package config loads pathgrid settings from defaults, an optional YAML
// file, a .env file, PATHGRID_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"time"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every environment variable, e.g. PATHGRID_MAZE_WIDTH.
const EnvPrefix = "PATHGRID"

// Config is the root configuration.
type Config struct {
	Heuristic     string        `mapstructure:"heuristic" yaml:"heuristic" validate:"required"`
	StepCost      string        `mapstructure:"step_cost" yaml:"step_cost" validate:"required"`
	StepConstant  float64       `mapstructure:"step_constant" yaml:"step_constant" validate:"gte=0"`
	GoalPolicy    string        `mapstructure:"goal_policy" yaml:"goal_policy" validate:"oneof=discovery expansion"`
	MaxIterations int           `mapstructure:"max_iterations" yaml:"max_iterations" validate:"gte=0"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0s"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Delay         time.Duration `mapstructure:"delay" yaml:"delay" validate:"gte=0s"`
	Maze          MazeConfig    `mapstructure:"maze" yaml:"maze"`
	Render        RenderConfig  `mapstructure:"render" yaml:"render"`
	MetricsFile   string        `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// MazeConfig controls maze generation.
type MazeConfig struct {
	Width    int     `mapstructure:"width" yaml:"width" validate:"min=1"`
	Height   int     `mapstructure:"height" yaml:"height" validate:"min=1"`
	Seed     int64   `mapstructure:"seed" yaml:"seed"`
	Braiding float64 `mapstructure:"braiding" yaml:"braiding" validate:"gte=0,lte=1"`
}

// RenderConfig selects and tunes the output.
type RenderConfig struct {
	Mode     string `mapstructure:"mode" yaml:"mode" validate:"oneof=text terminal png none"`
	PNGPath  string `mapstructure:"png_path" yaml:"png_path" validate:"required_if=Mode png"`
	CellSize int    `mapstructure:"cell_size" yaml:"cell_size" validate:"min=1"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Heuristic:    "manhattan",
		StepCost:     "euclidean",
		StepConstant: 1,
		GoalPolicy:   "discovery",
		LogLevel:     "info",
		Maze: MazeConfig{
			Width:  41,
			Height: 21,
		},
		Render: RenderConfig{
			Mode:     "text",
			PNGPath:  "pathgrid.png",
			CellSize: 8,
		},
	}
}
