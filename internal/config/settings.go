package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings wraps every validation failure from Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the tunables a user may override from a YAML file.
//
// Example:
//
//	gravity: 9.8
//	timestep: 0.02
//	scale: 5
//	defaultSpeed: 20
//	defaultAngle: 45
//	sound: true
//	dialogs: true
type Settings struct {
	// Gravity is the downward acceleration in m/s².
	Gravity float64 `yaml:"gravity"`

	// Timestep is the logical seconds advanced per tick.
	Timestep float64 `yaml:"timestep"`

	// Scale is pixels per metre on the desktop canvas.
	Scale float64 `yaml:"scale"`

	// DefaultSpeed and DefaultAngle prefill the input fields.
	DefaultSpeed float64 `yaml:"defaultSpeed"`
	DefaultAngle float64 `yaml:"defaultAngle"`

	// Sound enables the launch and landing tones.
	Sound bool `yaml:"sound"`

	// Dialogs enables native error dialogs for malformed input.
	Dialogs bool `yaml:"dialogs"`
}

// Default returns the settings of the reference behaviour: g = 9.8, 20 ms
// ticks, 5 px/m.
func Default() Settings {
	return Settings{
		Gravity:      9.8,
		Timestep:     0.02,
		Scale:        5,
		DefaultSpeed: 20,
		DefaultAngle: 45,
		Sound:        true,
		Dialogs:      true,
	}
}

// Load reads a YAML settings file. Keys missing from the file keep their
// Default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault returns Default when path is empty and Load(path) otherwise.
func LoadOrDefault(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes YAML settings on top of Default and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the physical parameters are usable.
func (s Settings) Validate() error {
	if !(s.Gravity > 0) || math.IsInf(s.Gravity, 0) {
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidSettings, s.Gravity)
	}
	if !(s.Timestep > 0) || s.Timestep > 1 {
		return fmt.Errorf("%w: timestep must be in (0, 1], got %v", ErrInvalidSettings, s.Timestep)
	}
	if !(s.Scale > 0) || math.IsInf(s.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidSettings, s.Scale)
	}
	if math.IsNaN(s.DefaultSpeed) || math.IsInf(s.DefaultSpeed, 0) ||
		math.IsNaN(s.DefaultAngle) || math.IsInf(s.DefaultAngle, 0) {
		return fmt.Errorf("%w: default speed and angle must be finite", ErrInvalidSettings)
	}
	return nil
}

// TicksPerSecond is the driver cadence that makes one tick per Timestep.
func (s Settings) TicksPerSecond() int {
	tps := int(math.Round(1 / s.Timestep))
	if tps < 1 {
		return 1
	}
	return tps
}
