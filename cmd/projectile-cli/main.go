// Command projectile-cli flies a single launch to the ground without a window
// and prints the ideal and integrated results as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/sim"
)

// maxTicks bounds a flight that would otherwise never land within reason.
const maxTicks = 1_000_000

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ideal struct {
	MaxHeight    float64 `yaml:"maxHeight"`
	TimeOfFlight float64 `yaml:"timeOfFlight"`
	Range        float64 `yaml:"range"`
}

type integrated struct {
	Ticks    int     `yaml:"ticks"`
	Landed   bool    `yaml:"landed"`
	Elapsed  float64 `yaml:"elapsed"`
	PeakY    float64 `yaml:"peakHeight"`
	LandingX float64 `yaml:"landingX"`
	Path     []point `yaml:"path,omitempty"`
}

type report struct {
	Speed      float64    `yaml:"speed"`
	Angle      float64    `yaml:"angle"`
	Gravity    float64    `yaml:"gravity"`
	Timestep   float64    `yaml:"timestep"`
	Ideal      ideal      `yaml:"ideal"`
	Integrated integrated `yaml:"integrated"`
}

// fly launches once and integrates until landing or maxTicks.
func fly(settings config.Settings, speed, angle float64, withPath bool) (report, error) {
	s := sim.New(settings.Gravity)
	if err := s.Launch(speed, angle); err != nil {
		return report{}, fmt.Errorf("launch speed=%v angle=%v: %w", speed, angle, err)
	}
	st := s.Stats()
	ticks := sim.RunToLanding(s, settings.Timestep, maxTicks)

	r := report{
		Speed:    speed,
		Angle:    angle,
		Gravity:  s.Gravity(),
		Timestep: settings.Timestep,
		Ideal:    ideal{MaxHeight: st.MaxHeight, TimeOfFlight: st.TimeOfFlight, Range: st.Range},
		Integrated: integrated{
			Ticks:    ticks,
			Landed:   s.Landed(),
			Elapsed:  s.Elapsed(),
			LandingX: s.Position().X,
		},
	}
	traj := s.Trajectory()
	for _, seg := range traj {
		r.Integrated.PeakY = math.Max(r.Integrated.PeakY, seg.To.Y)
	}
	if withPath {
		r.Integrated.Path = make([]point, 0, len(traj)+1)
		r.Integrated.Path = append(r.Integrated.Path, point{})
		for _, seg := range traj {
			r.Integrated.Path = append(r.Integrated.Path, point{X: seg.To.X, Y: seg.To.Y})
		}
	}
	return r, nil
}

func writeReport(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	launch := config.RegisterLaunchFlags(flag.CommandLine)
	dt := flag.Float64("dt", 0, "timestep in seconds (overrides settings)")
	withPath := flag.Bool("path", false, "include every integrated point")
	flag.Parse()

	settings, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}
	if *dt > 0 {
		settings.Timestep = *dt
		if err := settings.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	launch.Apply(&settings)

	r, err := fly(settings, settings.DefaultSpeed, settings.DefaultAngle, *withPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}
	if err := writeReport(os.Stdout, r); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
