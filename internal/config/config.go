// Package config loads knightpath settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightpath/grid"
)

// RandomStart asks the controller to pick a random start cell.
const RandomStart = -1

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Duration is a time.Duration decoded from strings such as "250ms".
type Duration time.Duration

// UnmarshalYAML accepts a Go duration string or an integer of nanoseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if parsed, err := time.ParseDuration(s); err == nil {
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("config: invalid duration %q", s)
	}
	*d = Duration(n)
	return nil
}

// MarshalYAML writes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// HTTP configures the serve command.
type HTTP struct {
	Addr string `yaml:"addr"`
}

// Config is the full settings tree.
type Config struct {
	Size      int      `yaml:"size"`
	Start     int      `yaml:"start"`
	StepDelay Duration `yaml:"step_delay"`
	EdgeDelay Duration `yaml:"edge_delay"`
	LogLevel  string   `yaml:"log_level"`
	HTTP      HTTP     `yaml:"http"`
}

// Default returns the built-in settings: an 8×8 board, random start,
// one second per intermediate step and 200ms at both ends.
func Default() Config {
	return Config{
		Size:      grid.DefaultSize,
		Start:     RandomStart,
		StepDelay: Duration(time.Second),
		EdgeDelay: Duration(200 * time.Millisecond),
		LogLevel:  "info",
		HTTP:      HTTP{Addr: ":8080"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document omits, then validates.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks ranges. Start must be RandomStart or a cell of the board.
func (c Config) Validate() error {
	g, err := grid.New(c.Size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Start != RandomStart {
		if err := g.Validate(grid.Cell(c.Start)); err != nil {
			return fmt.Errorf("%w: start: %v", ErrInvalidConfig, err)
		}
	}
	if c.StepDelay < 0 || c.EdgeDelay < 0 {
		return fmt.Errorf("%w: delays cannot be negative", ErrInvalidConfig)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalidConfig)
	}
	return nil
}

// Grid returns the board described by Size.
func (c Config) Grid() (grid.Grid, error) {
	return grid.New(c.Size)
}
