package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sources names where Load reads from. Every field is optional.
type Sources struct {
	// File is a YAML config file.
	File string
	// EnvFiles are dotenv files loaded into the process environment; existing
	// variables are not overwritten. Empty means ".env" when present.
	EnvFiles []string
	// Flags are bound by the names in FlagKeys; only flags that were set
	// on the command line take effect.
	Flags *pflag.FlagSet
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"heuristic":      "heuristic",
	"step":           "step_cost",
	"step-constant":  "step_constant",
	"goal":           "goal_policy",
	"max-iterations": "max_iterations",
	"timeout":        "timeout",
	"log-level":      "log_level",
	"delay":          "delay",
	"width":          "maze.width",
	"height":         "maze.height",
	"seed":           "maze.seed",
	"braiding":       "maze.braiding",
	"render":         "render.mode",
	"png":            "render.png_path",
	"cell-size":      "render.cell_size",
	"metrics-file":   "metrics_file",
}

// Load merges every source over DefaultConfig and validates the result.
func Load(src Sources) (*Config, error) {
	if err := loadEnvFiles(src.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if src.File != "" {
		v.SetConfigFile(src.File)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", src.File, err)
		}
	}

	if src.Flags != nil {
		for name, key := range FlagKeys {
			if f := src.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load env files: %w", err)
	}
	return nil
}

// setDefaults registers every key so env variables and flags resolve
// during Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("heuristic", d.Heuristic)
	v.SetDefault("step_cost", d.StepCost)
	v.SetDefault("step_constant", d.StepConstant)
	v.SetDefault("goal_policy", d.GoalPolicy)
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("delay", d.Delay)
	v.SetDefault("maze.width", d.Maze.Width)
	v.SetDefault("maze.height", d.Maze.Height)
	v.SetDefault("maze.seed", d.Maze.Seed)
	v.SetDefault("maze.braiding", d.Maze.Braiding)
	v.SetDefault("render.mode", d.Render.Mode)
	v.SetDefault("render.png_path", d.Render.PNGPath)
	v.SetDefault("render.cell_size", d.Render.CellSize)
	v.SetDefault("metrics_file", d.MetricsFile)
}
