// Package term plots the projectile simulation in a terminal with tcell.
package term

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/sim"
)

const (
	headerRows = 2
	minSpanX   = 10.0
	minSpanY   = 5.0
)

var (
	styleText   = tcell.StyleDefault
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// view is the world rectangle, in metres, stretched over the plot area.
type view struct {
	spanX, spanY float64
}

// viewFor sizes the plot around the ideal flight so the whole arc fits.
func viewFor(st sim.Stats) view {
	return view{
		spanX: math.Max(st.Range*1.1, minSpanX),
		spanY: math.Max(st.MaxHeight*1.2, minSpanY),
	}
}

// App owns one simulation and the screen it is drawn on. All state is touched
// only from the goroutine running Run.
type App struct {
	screen   tcell.Screen
	settings config.Settings
	sim      *sim.Simulation
	view     view

	speed, angle float64
	lastErr      error
}

func NewApp(screen tcell.Screen, settings config.Settings, speed, angle float64) *App {
	return &App{
		screen:   screen,
		settings: settings,
		sim:      sim.New(settings.Gravity),
		view:     view{spanX: minSpanX, spanY: minSpanY},
		speed:    speed,
		angle:    angle,
	}
}

// Simulation exposes the underlying state.
func (a *App) Simulation() *sim.Simulation { return a.sim }

// Run ticks the simulation at the configured timestep and handles key events
// until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(time.Duration(a.settings.Timestep * float64(time.Second)))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.Draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.Draw()
		case <-ticker.C:
			a.sim.Tick(a.settings.Timestep)
			a.Draw()
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.launch()
		case tcell.KeyUp:
			a.speed++
		case tcell.KeyDown:
			a.speed = math.Max(0, a.speed-1)
		case tcell.KeyRight:
			a.angle++
		case tcell.KeyLeft:
			a.angle--
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'l':
				a.launch()
			case ' ':
				a.sim.TogglePause()
			case 'r':
				a.sim.Reset()
				a.lastErr = nil
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) launch() {
	if err := a.sim.Launch(a.speed, a.angle); err != nil {
		log.Printf("[term] launch rejected: %v", err)
		a.lastErr = err
		return
	}
	a.lastErr = nil
	a.view = viewFor(a.sim.Stats())
}

// cell maps a world point to a screen cell. ok is false when the point falls
// outside the plot area.
func (a *App) cell(p sim.Vec2) (col, row int, ok bool) {
	w, h := a.screen.Size()
	ground := h - 1
	plotH := ground - headerRows
	if w < 2 || plotH < 1 {
		return 0, 0, false
	}
	col = int(math.Round(p.X / a.view.spanX * float64(w-1)))
	row = ground - int(math.Round(p.Y/a.view.spanY*float64(plotH)))
	if col < 0 || col >= w || row < headerRows || row > ground {
		return 0, 0, false
	}
	return col, row, true
}

// Draw renders the readouts, the ground line, the trajectory and the marker.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	r := a.sim.Readout()
	a.print(0, 0, styleText, fmt.Sprintf("Time: %.2f s  Max Height: %.2f m  Range: %.2f m", r.Elapsed, r.MaxHeight, r.Range))
	a.print(0, 1, styleStatus, a.status())

	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, '─', nil, styleGround)
	}
	for _, seg := range a.sim.Trajectory() {
		if col, row, ok := a.cell(seg.To); ok {
			a.screen.SetContent(col, row, '·', nil, stylePath)
		}
	}
	if col, row, ok := a.cell(a.sim.Position()); ok {
		a.screen.SetContent(col, row, 'o', nil, styleMarker)
	}
	a.screen.Show()
}

func (a *App) status() string {
	s := fmt.Sprintf("[%s] speed %g m/s  angle %g°  (l launch, space pause, r reset, arrows adjust, q quit)",
		a.sim.Phase(), a.speed, a.angle)
	if a.lastErr != nil {
		s += " | Error: " + a.lastErr.Error()
	}
	return s
}

func (a *App) print(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
