package config

import "flag"

// LaunchFlags are the -speed and -angle overrides shared by the commands.
type LaunchFlags struct {
	fs    *flag.FlagSet
	speed float64
	angle float64
}

func RegisterLaunchFlags(fs *flag.FlagSet) *LaunchFlags {
	l := &LaunchFlags{fs: fs}
	fs.Float64Var(&l.speed, "speed", 0, "initial speed in m/s (overrides settings)")
	fs.Float64Var(&l.angle, "angle", 0, "launch angle in degrees (overrides settings)")
	return l
}

// Apply copies the flags given on the command line onto s. Any value,
// including a negative angle, counts once the flag is set.
func (l *LaunchFlags) Apply(s *Settings) {
	l.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			s.DefaultSpeed = l.speed
		case "angle":
			s.DefaultAngle = l.angle
		}
	})
}
