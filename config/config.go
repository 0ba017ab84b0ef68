package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/canvasball/ball"
	"github.com/milk9111/canvasball/canvas"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Ball    BallConfig    `yaml:"ball"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	Background   string `yaml:"background"`
}

type BallConfig struct {
	Radius       float64    `yaml:"radius"`
	Color        string     `yaml:"color"`
	Acceleration float64    `yaml:"acceleration"`
	StartX       float64    `yaml:"start_x"`
	StartY       float64    `yaml:"start_y"`
	Keys         KeysConfig `yaml:"keys"`
}

type KeysConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic("config: embedded default: " + err.Error())
	}
	return cfg
}

// Parse overlays data on top of the embedded defaults and validates the
// result. Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", filename, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// MustLoad loads the configuration and panics on error
func MustLoad(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size %dx%d: %w", d.ScreenWidth, d.ScreenHeight, ErrInvalid)
	}
	if _, err := canvas.ParseColor(d.Background); err != nil {
		return fmt.Errorf("config: display.background: %v: %w", err, ErrInvalid)
	}

	b := c.Ball
	if b.Radius <= 0 {
		return fmt.Errorf("config: ball.radius must be positive, got %v: %w", b.Radius, ErrInvalid)
	}
	if b.Acceleration <= 0 {
		return fmt.Errorf("config: ball.acceleration must be positive, got %v: %w", b.Acceleration, ErrInvalid)
	}
	if _, err := canvas.ParseColor(b.Color); err != nil {
		return fmt.Errorf("config: ball.color: %v: %w", err, ErrInvalid)
	}
	keys := []struct{ name, key string }{
		{"up", b.Keys.Up},
		{"down", b.Keys.Down},
		{"left", b.Keys.Left},
		{"right", b.Keys.Right},
	}
	for _, k := range keys {
		if k.key == "" {
			return fmt.Errorf("config: ball.keys.%s is empty: %w", k.name, ErrInvalid)
		}
	}
	return nil
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// Binding converts the configured keys to a ball key binding.
func (b *BallConfig) Binding() ball.KeyBinding {
	return ball.KeyBinding{
		Up:    b.Keys.Up,
		Down:  b.Keys.Down,
		Left:  b.Keys.Left,
		Right: b.Keys.Right,
	}
}
