package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"starfield/demolib/canvas"
	"starfield/demos/starfield"
)

var ErrInvalidConfig = errors.New("app: invalid config")

// Config is everything needed to build an App. It loads from YAML; fields
// missing from the file keep their DefaultConfig values.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed fixes the random stream. Nil seeds from the wall clock.
	Seed *uint32 `yaml:"seed"`

	Background string `yaml:"background"`
	HUD        bool   `yaml:"hud"`

	Stars starfield.Params `yaml:"stars"`
}

func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "black",
		HUD:        true,
		Stars:      starfield.DefaultParams(),
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config against itself; surface-dependent checks happen
// again in New against the real display.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if float64(c.Width) <= 2*c.Stars.Gap || float64(c.Height) <= 2*c.Stars.Gap {
		return fmt.Errorf("%w: size %dx%d too small for gap %v", ErrInvalidConfig, c.Width, c.Height, c.Stars.Gap)
	}
	if _, err := canvas.ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := canvas.ParseColor(c.Stars.Color); err != nil {
		return fmt.Errorf("%w: star colour: %v", ErrInvalidConfig, err)
	}
	if err := c.Stars.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
