// Package config loads the demo host configuration from defaults, an optional
// YAML file and GAMEDEBUG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full host configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Headless HeadlessConfig `mapstructure:"headless" yaml:"headless"`
	Debug    DebugConfig    `mapstructure:"debug" yaml:"debug"`
	Demo     DemoConfig     `mapstructure:"demo" yaml:"demo"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// WindowConfig sizes the framebuffer and the ebiten window.
type WindowConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
	Scale  int `mapstructure:"scale" yaml:"scale"`
	TPS    int `mapstructure:"tps" yaml:"tps"`
}

// HeadlessConfig drives the windowless ticker runner.
type HeadlessConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Hz         int    `mapstructure:"hz" yaml:"hz"`
	Ticks      uint64 `mapstructure:"ticks" yaml:"ticks"`
	StepBudget int    `mapstructure:"step_budget" yaml:"step_budget"`
}

// DebugConfig sets the instrument's initial gate, echo and exit dump.
type DebugConfig struct {
	StartEnabled bool `mapstructure:"start_enabled" yaml:"start_enabled"`
	Echo         bool `mapstructure:"echo" yaml:"echo"`
	DumpOnExit   int  `mapstructure:"dump_on_exit" yaml:"dump_on_exit"` // persistent records printed at exit
}

// DemoConfig sizes the demo scene.
type DemoConfig struct {
	Producers int `mapstructure:"producers" yaml:"producers"`
	Entities  int `mapstructure:"entities" yaml:"entities"`
}

// LogConfig selects the zerolog level.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.scale", 1)
	v.SetDefault("window.tps", 60)
	v.SetDefault("headless.enabled", false)
	v.SetDefault("headless.hz", 60)
	v.SetDefault("headless.ticks", 0)
	v.SetDefault("headless.step_budget", 1)
	v.SetDefault("debug.start_enabled", true)
	v.SetDefault("debug.echo", false)
	v.SetDefault("debug.dump_on_exit", 0)
	v.SetDefault("demo.producers", 2)
	v.SetDefault("demo.entities", 4)
	v.SetDefault("log.level", "info")
}

// Load returns the defaults overlaid with the YAML file at path (if non-empty)
// and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GAMEDEBUG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the host cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Width > 32767 || c.Window.Height > 32767:
		return fmt.Errorf("%w: window size %dx%d exceeds 32767", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Headless.Hz <= 0:
		return fmt.Errorf("%w: headless.hz %d", ErrInvalid, c.Headless.Hz)
	case c.Demo.Producers < 0 || c.Demo.Entities < 0:
		return fmt.Errorf("%w: negative demo counts", ErrInvalid)
	}
	return nil
}

// Dump writes the effective configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
