// Package sim integrates two-dimensional projectile motion under constant
// gravity on a fixed, externally driven timestep.
//
// A Simulation holds no timer and performs no I/O: the caller advances it with
// Tick and reads Position, Trajectory and Stats to draw it. It is not safe for
// concurrent use.
package sim

import (
	"errors"
	"math"
)

// DefaultGravity is the gravitational acceleration in m/s².
const DefaultGravity = 9.8

// ErrNonFinite is returned by Launch when speed or angle is NaN or infinite.
var ErrNonFinite = errors.New("launch parameters must be finite")

// Phase is the state of a flight.
type Phase int

const (
	Idle Phase = iota
	Flying
	Paused
	Landed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Flying:
		return "flying"
	case Paused:
		return "paused"
	case Landed:
		return "landed"
	}
	return "unknown"
}

// Vec2 is a point or velocity in metres (or m/s).
type Vec2 struct {
	X, Y float64
}

// Segment is the path covered by a single tick.
type Segment struct {
	From, To Vec2
}

// Stats are the ideal flat-ground, drag-free values for the current launch.
// They do not follow the integrated path.
type Stats struct {
	MaxHeight    float64
	TimeOfFlight float64
	Range        float64
}

// Readout holds the values a shell displays as text.
type Readout struct {
	Elapsed float64
	Stats
}

type Simulation struct {
	gravity float64

	pos     Vec2
	vel     Vec2
	elapsed float64
	phase   Phase

	trajectory []Segment
	stats      Stats
}

// New returns an idle simulation. A non-positive or non-finite gravity is
// replaced with DefaultGravity.
func New(gravity float64) *Simulation {
	if !(gravity > 0) || math.IsInf(gravity, 0) {
		gravity = DefaultGravity
	}
	return &Simulation{gravity: gravity}
}

// Launch starts a new flight from the origin, discarding any previous one.
func (s *Simulation) Launch(speed, angleDegrees float64) error {
	if !finite(speed) || !finite(angleDegrees) {
		return ErrNonFinite
	}

	theta := angleDegrees * math.Pi / 180
	s.vel = Vec2{X: speed * math.Cos(theta), Y: speed * math.Sin(theta)}
	s.pos = Vec2{}
	s.elapsed = 0
	s.stats = idealStats(s.vel, s.gravity)
	s.trajectory = s.trajectory[:0]
	s.phase = Flying
	return nil
}

// verticalEpsilon is the vertical speed, in m/s, below which a launch is
// treated as horizontal. sin(180°) is not exactly zero in floating point.
const verticalEpsilon = 1e-9

// idealStats evaluates the closed-form trajectory. A projectile that does not
// rise above launch height has all-zero stats.
func idealStats(v0 Vec2, g float64) Stats {
	if v0.Y <= verticalEpsilon {
		return Stats{}
	}
	tof := 2 * v0.Y / g
	return Stats{
		MaxHeight:    v0.Y * v0.Y / (2 * g),
		TimeOfFlight: tof,
		Range:        v0.X * tof,
	}
}

// Tick advances a flying projectile by dt seconds and records the segment it
// covered. The step that crosses y = 0 is clamped to the ground before it is
// recorded, and ends the flight.
func (s *Simulation) Tick(dt float64) {
	if s.phase != Flying || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	prev := s.pos
	s.pos.X += s.vel.X * dt
	s.pos.Y += s.vel.Y*dt - 0.5*s.gravity*dt*dt
	s.vel.Y -= s.gravity * dt
	s.elapsed += dt

	if s.pos.Y < 0 {
		s.pos.Y = 0
		s.phase = Landed
	}

	s.trajectory = append(s.trajectory, Segment{From: prev, To: s.pos})
}

// TogglePause switches between Flying and Paused. It does nothing before the
// first launch or after landing.
func (s *Simulation) TogglePause() {
	switch s.phase {
	case Flying:
		s.phase = Paused
	case Paused:
		s.phase = Flying
	}
}

// Reset returns to Idle. Velocity and stats keep their last values.
func (s *Simulation) Reset() {
	s.phase = Idle
	s.pos = Vec2{}
	s.elapsed = 0
	s.trajectory = s.trajectory[:0]
}

func (s *Simulation) Gravity() float64 { return s.gravity }
func (s *Simulation) Position() Vec2 { return s.pos }
func (s *Simulation) Velocity() Vec2 { return s.vel }
func (s *Simulation) Elapsed() float64 { return s.elapsed }
func (s *Simulation) Phase() Phase { return s.phase }
func (s *Simulation) Running() bool { return s.phase == Flying }
func (s *Simulation) Landed() bool { return s.phase == Landed }
func (s *Simulation) Stats() Stats { return s.stats }
func (s *Simulation) TrajectoryLen() int { return len(s.trajectory) }

// Trajectory returns a copy of the recorded segments, oldest first.
func (s *Simulation) Trajectory() []Segment {
	out := make([]Segment, len(s.trajectory))
	copy(out, s.trajectory)
	return out
}

// Readout returns the display values. An idle simulation reads all zeros even
// though its stats from the previous flight are retained.
func (s *Simulation) Readout() Readout {
	if s.phase == Idle {
		return Readout{}
	}
	return Readout{Elapsed: s.elapsed, Stats: s.stats}
}

// RunToLanding ticks s until it stops running or limit ticks have elapsed, and
// returns the number of ticks taken.
func RunToLanding(s *Simulation, dt float64, limit int) int {
	n := 0
	for s.Running() && n < limit {
		s.Tick(dt)
		n++
	}
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
