package config

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Projectile Motion Simulation"

	// Readout row
	ReadoutY       = 12
	ReadoutSpacing = 250

	// Input row along the bottom edge
	ControlsY     = WindowHeight - 50
	ControlHeight = 30
	ControlGap    = 10
	FieldWidth    = 170
	ButtonWidth   = 90
	ControlsX     = 20

	// Drawing
	TrajectoryWidth = 2
	MarkerRadius    = 5

	// Audio cue
	CueSampleRate = 44100
)
