package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/cost"
)

var validate = validator.New()

// Validate checks field constraints and that the heuristic, step cost and
// goal policy names resolve. Every failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatValidationError(e))
		}
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(msgs, "\n  - "))
	}
	if _, err := c.SearchOptions(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// formatValidationError turns one tag failure into a readable message.
func formatValidationError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, e.Param(), e.Value())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}

// SearchOptions translates the search settings into engine options.
// The context and logger are left to the caller.
func (c *Config) SearchOptions() ([]astar.Option, error) {
	h, err := cost.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, err
	}
	step, err := cost.ParseStepCost(c.StepCost, c.StepConstant)
	if err != nil {
		return nil, err
	}
	goal, err := astar.ParseGoalPolicy(c.GoalPolicy)
	if err != nil {
		return nil, err
	}
	return []astar.Option{
		astar.WithHeuristic(h),
		astar.WithStepCost(step),
		astar.WithGoalPolicy(goal),
		astar.WithMaxIterations(c.MaxIterations),
	}, nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
