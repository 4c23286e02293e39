package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stride-sim/stride/game"
)

// Config carries the host-tunable physics numbers. Defaults reproduce the
// reference movement model exactly; hosts override individual values via a
// YAML file.
type Config struct {
	Gravity   Gravity   `yaml:"gravity"`
	Wind      Wind      `yaml:"wind"`
	Walk      Walk      `yaml:"walk"`
	Quicksand Quicksand `yaml:"quicksand"`
	Stepping  Stepping  `yaml:"stepping"`
}

type Gravity struct {
	Default    float32 `yaml:"default"`
	Hazard     float32 `yaml:"hazard"`
	MetalWater float32 `yaml:"metal_water"`

	Terminal           float32 `yaml:"terminal"`
	TerminalHazard     float32 `yaml:"terminal_hazard"`
	TerminalMetalWater float32 `yaml:"terminal_metal_water"`
	TerminalFlutter    float32 `yaml:"terminal_flutter"`
}

type Wind struct {
	ReferenceAltitude float32 `yaml:"reference_altitude"`
	BandBelow         float32 `yaml:"band_below"`
	BandAbove         float32 `yaml:"band_above"`
	MaxUpdraft        float32 `yaml:"max_updraft"`
	ApproachDivisor   float32 `yaml:"approach_divisor"`
}

type Walk struct {
	TargetCap    float32 `yaml:"target_cap"`
	SlowFloorCap float32 `yaml:"slow_floor_cap"`
	HardCap      float32 `yaml:"hard_cap"`
	Accel        float32 `yaml:"accel"`
}

type Quicksand struct {
	SinkRate   float32 `yaml:"sink_rate"`
	DeathDepth float32 `yaml:"death_depth"`
}

type Stepping struct {
	// Continuous switches the steppers from four sub-steps per tick to a
	// single full-length step.
	Continuous bool `yaml:"continuous"`
}

// Default returns the reference tuning.
func Default() *Config {
	return &Config{
		Gravity: Gravity{
			Default:            game.DefaultGravity,
			Hazard:             game.HazardGravity,
			MetalWater:         game.MetalWaterGravity,
			Terminal:           game.TerminalVelocity,
			TerminalHazard:     game.HazardTerminalVelocity,
			TerminalMetalWater: game.MetalWaterTerminalVelocity,
			TerminalFlutter:    game.FlutterTerminalVelocity,
		},
		Wind: Wind{
			ReferenceAltitude: game.WindReferenceAltitude,
			BandBelow:         game.WindBandBelow,
			BandAbove:         game.WindBandAbove,
			MaxUpdraft:        game.WindMaxUpdraft,
			ApproachDivisor:   game.WindApproachDivisor,
		},
		Walk: Walk{
			TargetCap:    game.WalkTargetCap,
			SlowFloorCap: game.SlowFloorCap,
			HardCap:      game.WalkHardCap,
			Accel:        game.WalkAccel,
		},
		Quicksand: Quicksand{
			SinkRate:   game.DefaultSinkRate,
			DeathDepth: game.QuicksandDeathDepth,
		},
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default
// values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the steppers cannot work with.
func (c *Config) Validate() error {
	if c.Gravity.Default <= 0 {
		return fmt.Errorf("gravity.default must be positive, got %v", c.Gravity.Default)
	}
	if c.Gravity.Terminal >= 0 {
		return fmt.Errorf("gravity.terminal must be negative, got %v", c.Gravity.Terminal)
	}
	if c.Quicksand.SinkRate < 0 {
		return fmt.Errorf("quicksand.sink_rate must not be negative, got %v", c.Quicksand.SinkRate)
	}
	if c.Wind.ApproachDivisor <= 0 {
		return fmt.Errorf("wind.approach_divisor must be positive, got %v", c.Wind.ApproachDivisor)
	}
	return nil
}
