package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"dots/internal/core"
	"dots/internal/driver"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the deployment parameters of the viewer.
type Config struct {
	Sim       string  `yaml:"sim"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Dots      int     `yaml:"dots"`
	Intensity float64 `yaml:"intensity"`
	Strategy  string  `yaml:"strategy"`
	Scale     int     `yaml:"scale"`
	TPS       int     `yaml:"tps"`
	Seed      int64   `yaml:"seed"`
	Spawn     string  `yaml:"spawn"`
	HUDWidth  int     `yaml:"hud_width"`
	DotStep   int     `yaml:"dot_step"`

	// Params are extra universe tunables passed through verbatim.
	Params map[string]string `yaml:"params"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "dots",
		Width:     500,
		Height:    500,
		Dots:      100000,
		Intensity: 100,
		Strategy:  "bitmap",
		Scale:     1,
		TPS:       60,
		Seed:      42,
		Spawn:     "uniform",
		HUDWidth:  180,
		DotStep:   1000,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "universe to run")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Dots, "dots", c.Dots, "number of dots")
	fs.Float64Var(&c.Intensity, "intensity", c.Intensity, "radius of a click push")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "render strategy (bitmap|points)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for universe construction")
	fs.StringVar(&c.Spawn, "spawn", c.Spawn, "initial direction layout (uniform|perlin)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width, 0 hides it")
	fs.IntVar(&c.DotStep, "dot-step", c.DotStep, "HUD dot count step")
}

// Merge copies every value of file whose flag was not set on fs, so that
// flags win over the file and the file wins over defaults.
func (c *Config) Merge(file *Config, fs *pflag.FlagSet) {
	if file == nil {
		return
	}
	set := func(name string, apply func()) {
		if fs == nil || !fs.Changed(name) {
			apply()
		}
	}
	set("sim", func() { c.Sim = file.Sim })
	set("width", func() { c.Width = file.Width })
	set("height", func() { c.Height = file.Height })
	set("dots", func() { c.Dots = file.Dots })
	set("intensity", func() { c.Intensity = file.Intensity })
	set("strategy", func() { c.Strategy = file.Strategy })
	set("scale", func() { c.Scale = file.Scale })
	set("tps", func() { c.TPS = file.TPS })
	set("seed", func() { c.Seed = file.Seed })
	set("spawn", func() { c.Spawn = file.Spawn })
	set("hud-width", func() { c.HUDWidth = file.HUDWidth })
	set("dot-step", func() { c.DotStep = file.DotStep })
	if len(file.Params) > 0 {
		c.Params = file.Params
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Dots < 1 {
		return fmt.Errorf("%w: dots must be at least 1, got %d", ErrInvalidConfig, c.Dots)
	}
	if c.Intensity < 0 {
		return fmt.Errorf("%w: negative intensity %v", ErrInvalidConfig, c.Intensity)
	}
	if _, err := driver.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("%w: unknown sim %q", ErrInvalidConfig, c.Sim)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	if c.DotStep <= 0 {
		c.DotStep = 1
	}
	return nil
}

// UniverseConfig returns the tunables handed to the universe factory.
func (c *Config) UniverseConfig() map[string]string {
	out := make(map[string]string, len(c.Params)+2)
	for k, v := range c.Params {
		out[k] = v
	}
	out["seed"] = strconv.FormatInt(c.Seed, 10)
	if c.Spawn != "" {
		out["spawn"] = c.Spawn
	}
	return out
}

// Options converts the config into driver options. Call Validate first.
func (c *Config) Options() driver.Options {
	strategy, _ := driver.ParseStrategy(c.Strategy)
	return driver.Options{
		Width:     c.Width,
		Height:    c.Height,
		Dots:      c.Dots,
		Intensity: float32(c.Intensity),
		Strategy:  strategy,
		DotColor:  color.Black,
		Config:    c.UniverseConfig(),
	}
}

// Factory looks up the configured universe factory.
func (c *Config) Factory() (core.Factory, error) {
	f, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sim %q", ErrInvalidConfig, c.Sim)
	}
	return f, nil
}
