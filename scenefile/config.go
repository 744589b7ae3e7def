package scenefile

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/dlist"
)

// Config holds render settings read from TOML:
//
//	output = "page.png"
//	scale = 2.0
//	background = "#ffffff"
//	log_level = "debug"
//
//	[tiles]
//	size = 128
//	workers = 4
//
//	[debug]
//	dump = true
//	dump_optimized = false
type Config struct {
	Output     string  `toml:"output"`
	Scale      float32 `toml:"scale"`
	Background string  `toml:"background"`
	LogLevel   string  `toml:"log_level"`

	Tiles TileConfig  `toml:"tiles"`
	Debug DebugConfig `toml:"debug"`
}

// TileConfig controls tiled painting.
type TileConfig struct {
	Size    int `toml:"size"`
	Workers int `toml:"workers"`
}

// DebugConfig selects diagnostic output.
type DebugConfig struct {
	// Dump prints the display list tree before painting.
	Dump bool `toml:"dump"`
	// DumpOptimized prints every optimized list while painting.
	DumpOptimized bool `toml:"dump_optimized"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Output:     "out.png",
		Scale:      1,
		Background: "#ffffff",
		LogLevel:   "info",
		Tiles:      TileConfig{Size: 256},
	}
}

// LoadConfig reads a TOML config. Keys missing from the file keep their
// DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scenefile: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML config data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("scenefile: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and keywords.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scenefile: scale %v: %w", c.Scale, ErrInvalidValue)
	}
	if c.Tiles.Size < 0 || c.Tiles.Workers < 0 {
		return fmt.Errorf("scenefile: negative tile settings: %w", ErrInvalidValue)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background. An empty value means transparent.
func (c Config) BackgroundColor() (color.Color, error) {
	if c.Background == "" {
		return nil, nil
	}
	bg, err := dlist.ParseHex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("scenefile: background: %w", err)
	}
	return bg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("scenefile: log_level %q: %w", c.LogLevel, ErrInvalidValue)
	}
	return l, nil
}
