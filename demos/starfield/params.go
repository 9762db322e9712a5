package starfield

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("starfield: invalid config")

// Growth selects how the field reaches its capacity.
type Growth uint8

const (
	// GrowthFixed creates every star when the field is built.
	GrowthFixed Growth = iota
	// GrowthSpawn starts empty and adds one star after each random delay in
	// [0, SpawnDelayMax) until the field is full.
	GrowthSpawn
)

func (g Growth) String() string {
	switch g {
	case GrowthFixed:
		return "fixed"
	case GrowthSpawn:
		return "spawn"
	}
	return fmt.Sprintf("Growth(%d)", uint8(g))
}

func (g *Growth) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "fixed", "":
		*g = GrowthFixed
	case "spawn":
		*g = GrowthSpawn
	default:
		return fmt.Errorf("%w: unknown growth %q", ErrInvalidConfig, b)
	}
	return nil
}

func (g Growth) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// SpeedSource selects where the speed multiplier comes from.
type SpeedSource uint8

const (
	// SpeedPerStar uses each star's own modifier, drawn from [1, 2) at respawn.
	SpeedPerStar SpeedSource = iota
	// SpeedPointer uses one field-wide modifier mapped from the pointer's
	// distance to the centre onto [PointerMinModifier, PointerMaxModifier].
	SpeedPointer
)

func (s SpeedSource) String() string {
	switch s {
	case SpeedPerStar:
		return "star"
	case SpeedPointer:
		return "pointer"
	}
	return fmt.Sprintf("SpeedSource(%d)", uint8(s))
}

func (s *SpeedSource) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "star", "":
		*s = SpeedPerStar
	case "pointer":
		*s = SpeedPointer
	default:
		return fmt.Errorf("%w: unknown speed source %q", ErrInvalidConfig, b)
	}
	return nil
}

func (s SpeedSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Params are the constant bounds of a field.
type Params struct {
	Count int `yaml:"count"`

	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`

	TrailMinSize  float64 `yaml:"trail_min_size"`
	TrailMaxSize  float64 `yaml:"trail_max_size"`
	TrailMinAlpha float64 `yaml:"trail_min_alpha"`
	TrailMaxAlpha float64 `yaml:"trail_max_alpha"`

	// Gap insets the spawn rectangle from every surface edge.
	Gap float64 `yaml:"gap"`

	MinModifier float64 `yaml:"min_modifier"`
	MaxModifier float64 `yaml:"max_modifier"`

	Growth        Growth  `yaml:"growth"`
	SpawnDelayMax float64 `yaml:"spawn_delay_max"`

	Speed              SpeedSource `yaml:"speed_source"`
	PointerMinModifier float64     `yaml:"pointer_min_modifier"`
	PointerMaxModifier float64     `yaml:"pointer_max_modifier"`

	// Color is the star and trail colour: "#rrggbb" or an SVG name.
	Color string `yaml:"color"`
}

func DefaultParams() Params {
	return Params{
		Count: 100,

		MinSize:  0,
		MaxSize:  4,
		MinSpeed: 50,
		MaxSpeed: 900,

		TrailMinSize:  0,
		TrailMaxSize:  30,
		TrailMinAlpha: 0,
		TrailMaxAlpha: 0.5,

		Gap: 50,

		MinModifier: 1,
		MaxModifier: 2,

		Growth:        GrowthFixed,
		SpawnDelayMax: 0.1,

		Speed:              SpeedPerStar,
		PointerMinModifier: 1.2,
		PointerMaxModifier: 2.5,

		Color: "white",
	}
}

// Validate reports the first inconsistent bound.
func (p Params) Validate() error {
	switch {
	case p.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, p.Count)
	case p.MinSpeed < 0 || p.MaxSpeed < p.MinSpeed:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidConfig, p.MinSpeed, p.MaxSpeed)
	case p.MinSize < 0 || p.MaxSize < p.MinSize:
		return fmt.Errorf("%w: size range [%v, %v]", ErrInvalidConfig, p.MinSize, p.MaxSize)
	case p.TrailMinSize < 0 || p.TrailMaxSize < p.TrailMinSize:
		return fmt.Errorf("%w: trail size range [%v, %v]", ErrInvalidConfig, p.TrailMinSize, p.TrailMaxSize)
	case p.TrailMinAlpha < 0 || p.TrailMaxAlpha > 1 || p.TrailMaxAlpha < p.TrailMinAlpha:
		return fmt.Errorf("%w: trail alpha range [%v, %v]", ErrInvalidConfig, p.TrailMinAlpha, p.TrailMaxAlpha)
	case p.Gap < 0:
		return fmt.Errorf("%w: negative gap %v", ErrInvalidConfig, p.Gap)
	case p.MinModifier <= 0 || p.MaxModifier < p.MinModifier:
		return fmt.Errorf("%w: modifier range [%v, %v]", ErrInvalidConfig, p.MinModifier, p.MaxModifier)
	case p.PointerMinModifier <= 0 || p.PointerMaxModifier < p.PointerMinModifier:
		return fmt.Errorf("%w: pointer modifier range [%v, %v]", ErrInvalidConfig, p.PointerMinModifier, p.PointerMaxModifier)
	case p.SpawnDelayMax < 0:
		return fmt.Errorf("%w: negative spawn delay %v", ErrInvalidConfig, p.SpawnDelayMax)
	case p.Growth > GrowthSpawn:
		return fmt.Errorf("%w: growth %v", ErrInvalidConfig, p.Growth)
	case p.Speed > SpeedPointer:
		return fmt.Errorf("%w: speed source %v", ErrInvalidConfig, p.Speed)
	}
	return nil
}
