package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yuzeguitarist/qrpanel/internal/display"
	"github.com/yuzeguitarist/qrpanel/internal/qr"
	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
)

type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Panel   PanelConfig   `yaml:"panel"`
	Encoder EncoderConfig `yaml:"encoder"`
	Output  OutputConfig  `yaml:"output"`
	Audit   AuditConfig   `yaml:"audit"`
	Web     WebConfig     `yaml:"web"`
}

// CanvasConfig is the square area the QR code is rasterized into.
type CanvasConfig struct {
	Width int `yaml:"width"`
}

// PanelConfig describes the display the canvas is drawn onto.
type PanelConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	CenterDivisor int `yaml:"centerDivisor"` // 0 disables the horizontal offset
}

type EncoderConfig struct {
	Level   string `yaml:"level"`   // L, M, Q or H
	Backend string `yaml:"backend"` // skip2 or boombuler
}

type OutputConfig struct {
	Format string `yaml:"format"` // used when the output path has no known extension
}

type AuditConfig struct {
	Path string `yaml:"path,omitempty"` // empty disables the render log
}

type WebConfig struct {
	Listen string `yaml:"listen"`
}

// Default matches a 320x240 panel with a 240 pixel square canvas.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 240},
		Panel: PanelConfig{
			Width:         320,
			Height:        240,
			CenterDivisor: qrdraw.DefaultCenterDivisor,
		},
		Encoder: EncoderConfig{
			Level:   string(qr.LevelMedium),
			Backend: string(qr.BackendSkip2),
		},
		Output: OutputConfig{Format: string(display.FormatPNG)},
		Web:    WebConfig{Listen: "127.0.0.1:3334"},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 {
		return fmt.Errorf("canvas.width must be positive")
	}
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return fmt.Errorf("panel.width/panel.height must be positive")
	}
	if c.Panel.CenterDivisor < 0 {
		return fmt.Errorf("panel.centerDivisor must not be negative")
	}
	if _, err := qr.ParseLevel(c.Encoder.Level); err != nil {
		return fmt.Errorf("encoder.level: %w", err)
	}
	if _, err := qr.ParseBackend(c.Encoder.Backend); err != nil {
		return fmt.Errorf("encoder.backend: %w", err)
	}
	if _, err := display.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Web.Listen == "" {
		return fmt.Errorf("web.listen required")
	}
	return nil
}

// EncoderOptions returns the validated encoder settings.
func (c *Config) EncoderOptions() (qr.Options, error) {
	level, err := qr.ParseLevel(c.Encoder.Level)
	if err != nil {
		return qr.Options{}, err
	}
	backend, err := qr.ParseBackend(c.Encoder.Backend)
	if err != nil {
		return qr.Options{}, err
	}
	return qr.Options{Level: level, Backend: backend}, nil
}
