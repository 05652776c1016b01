package game

import (
	"fmt"
	"math"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/sim"
)

// worldToScreen maps metres to canvas pixels: origin at the bottom-left
// corner, y pointing up.
func worldToScreen(p sim.Vec2, scale float64) (float32, float32) {
	return float32(p.X * scale), float32(config.WindowHeight - p.Y*scale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// readoutLabels formats the three summary labels shown above the canvas.
func readoutLabels(r sim.Readout) [3]string {
	return [3]string{
		fmt.Sprintf("Time: %.2f s", hundredths(r.Elapsed)),
		fmt.Sprintf("Max Height: %.2f m", hundredths(r.MaxHeight)),
		fmt.Sprintf("Range: %.2f m", hundredths(r.Range)),
	}
}

// hundredths drops values that would print as "-0.00".
func hundredths(v float64) float64 {
	if math.Abs(v) < 0.005 {
		return 0
	}
	return v
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}
