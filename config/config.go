// Package config holds the settings shared by the ldtk command line tools:
// which schema revision to force, logging, hot reload and the viewer.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Version forces a schema revision ("0.6.3", "0.9.2", "1.1.3"). Empty or
	// "auto" picks one from the document's jsonVersion.
	Version  string      `yaml:"version"`
	LogLevel string      `yaml:"log_level"`
	Watch    WatchConfig `yaml:"watch"`
	View     ViewConfig  `yaml:"view"`
}

type WatchConfig struct {
	Debounce   time.Duration `yaml:"debounce"`
	Extensions []string      `yaml:"extensions"`
}

type ViewConfig struct {
	Background YAMLColor `yaml:"background"`
	Scale      float64   `yaml:"scale"`
	Level      string    `yaml:"level"`
}

func Default() Config {
	return Config{
		Version:  "auto",
		LogLevel: "info",
		Watch: WatchConfig{
			Debounce:   100 * time.Millisecond,
			Extensions: []string{".ldtk", ".ldtkl"},
		},
		View: ViewConfig{
			Background: YAMLColor{color.NRGBA{R: 0x40, G: 0x46, B: 0x5b, A: 0xff}},
			Scale:      2,
		},
	}
}

// Load reads a YAML file over the defaults. Keys the file leaves out keep
// their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Version != "" && c.Version != "auto" && !semver.IsValid(Canonical(c.Version)) {
		return fmt.Errorf("version %q is not a semantic version", c.Version)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.View.Scale < 0 {
		return fmt.Errorf("view.scale must not be negative")
	}
	return nil
}

// Level maps LogLevel onto zerolog. An empty value means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Canonical prefixes v so a bare jsonVersion like "1.1.3" can be handed to
// the semver package.
func Canonical(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHex(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out color.NRGBA
	var err error
	if out.R, err = parse(0); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}
	if out.G, err = parse(2); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}
	if out.B, err = parse(4); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}
	out.A = 0xff
	if len(hex) == 8 {
		if out.A, err = parse(6); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
		}
	}
	return out, nil
}
