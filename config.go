package mathsketch

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	defaultWidth         = 640
	defaultHeight        = 480
	defaultTitle         = "sketch"
	defaultScreenshotDir = "screenshots"
)

// RunConfig configures a Sketch. Zero fields take defaults.
//
// A RunConfig can be loaded from TOML:
//
//	title = "Triangle centers"
//	width = 800
//	height = 600
//	hit_radius = 10
//
//	[palette]
//	background = "#101010"
//	foreground = ["#ffffff", "#ff0000"]
type RunConfig struct {
	Title         string        `toml:"title"`
	Width         int           `toml:"width"`
	Height        int           `toml:"height"`
	ShowFPS       bool          `toml:"show_fps"`
	Debug         bool          `toml:"debug"`
	HitRadius     float64       `toml:"hit_radius"`
	ScreenshotDir string        `toml:"screenshot_dir"`
	Palette       PaletteConfig `toml:"palette"`
}

// PaletteConfig holds hex color strings. Empty fields keep DefaultPalette's
// colors.
type PaletteConfig struct {
	Background string   `toml:"background"`
	Foreground []string `toml:"foreground"`
}

// Resolve parses the configured colors on top of DefaultPalette.
func (c PaletteConfig) Resolve() (Palette, error) {
	p := Palette{
		Background: DefaultPalette.Background,
		Foreground: append([]Color(nil), DefaultPalette.Foreground...),
	}
	if c.Background != "" {
		bg, err := ColorFromHex(c.Background)
		if err != nil {
			return Palette{}, fmt.Errorf("palette background: %w", err)
		}
		p.Background = bg
	}
	if len(c.Foreground) > 0 {
		p.Foreground = make([]Color, 0, len(c.Foreground))
		for i, s := range c.Foreground {
			fg, err := ColorFromHex(s)
			if err != nil {
				return Palette{}, fmt.Errorf("palette foreground[%d]: %w", i, err)
			}
			p.Foreground = append(p.Foreground, fg)
		}
	}
	return p, nil
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.HitRadius <= 0 {
		c.HitRadius = DefaultHitRadius
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// DecodeRunConfig parses TOML data into a RunConfig with defaults applied.
// Unknown keys and malformed colors are errors.
func DecodeRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("decode run config: %w", err)
	}
	return finishConfig(cfg, md)
}

// LoadRunConfig reads a TOML file into a RunConfig with defaults applied.
func LoadRunConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load run config %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg RunConfig, md toml.MetaData) (RunConfig, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return RunConfig{}, fmt.Errorf("run config: unknown key %q", undecoded[0].String())
	}
	if _, err := cfg.Palette.Resolve(); err != nil {
		return RunConfig{}, fmt.Errorf("run config: %w", err)
	}
	return cfg.withDefaults(), nil
}
