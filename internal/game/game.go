// Package game is the ebiten desktop shell around the projectile simulation:
// two input fields, Launch/Pause/Reset buttons, text readouts and a canvas
// showing the trajectory and the projectile.
package game

import (
	"errors"
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/projectile-motion/internal/config"
	"github.com/iburimskiy/projectile-motion/internal/sim"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	trajectoryColor = color.RGBA{R: 70, G: 130, B: 255, A: 255}
	markerColor     = color.RGBA{R: 230, G: 40, B: 40, A: 255}
)

// Game implements ebiten.Game. Each Update advances the simulation by one
// tick, so the caller must run ebiten at Settings.TicksPerSecond.
type Game struct {
	settings config.Settings
	sim      *sim.Simulation
	cue      *cuePlayer

	speedField *textField
	angleField *textField
	launchBtn  *button
	pauseBtn   *button
	resetBtn   *button

	frame   int
	lastErr error

	// dialogOpen is set while a native error box is showing.
	dialogOpen atomic.Bool
	dialog     func(msg string) error

	// showError reports rejected input to the user; nil when dialogs are off.
	showError func(error)
}

func New(settings config.Settings) *Game {
	g := &Game{
		settings: settings,
		sim:      sim.New(settings.Gravity),
		cue:      newCuePlayer(settings.Sound, config.CueSampleRate),
		dialog:   zenityError,
	}
	if settings.Dialogs {
		g.showError = g.errorDialog
	}

	x := config.ControlsX
	field := func(placeholder string) *textField {
		f := &textField{rect: rect{x, config.ControlsY, config.FieldWidth, config.ControlHeight}, placeholder: placeholder}
		x += config.FieldWidth + config.ControlGap
		return f
	}
	btn := func(label string) *button {
		b := &button{rect: rect{x, config.ControlsY, config.ButtonWidth, config.ControlHeight}, label: label}
		x += config.ButtonWidth + config.ControlGap
		return b
	}
	g.speedField = field("Initial speed (m/s)")
	g.angleField = field("Launch angle (deg)")
	g.launchBtn = btn("Launch")
	g.pauseBtn = btn("Pause")
	g.resetBtn = btn("Reset")

	g.speedField.set(formatValue(settings.DefaultSpeed))
	g.angleField.set(formatValue(settings.DefaultAngle))
	g.speedField.focused = true
	return g
}

// Simulation exposes the underlying state for other renderers and tests.
func (g *Game) Simulation() *sim.Simulation { return g.sim }

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if justPressed {
		g.focusAt(mouseX, mouseY)
	}
	if g.launchBtn.update(mouseX, mouseY, justPressed, justReleased) {
		g.launch()
	}
	if g.pauseBtn.update(mouseX, mouseY, justPressed, justReleased) {
		g.togglePause()
	}
	if g.resetBtn.update(mouseX, mouseY, justPressed, justReleased) {
		g.reset()
	}

	if f := g.focusedField(); f != nil {
		f.insert(ebiten.AppendInputChars(nil))
		// First frame immediately, then repeat while held.
		d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
		if d == 1 || (d >= 30 && d%3 == 0) {
			f.backspace()
		}
	}

	for _, k := range controlKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := g.handleKey(k); err != nil {
				return err
			}
		}
	}

	g.step()
	g.frame++
	return nil
}

var controlKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyTab, ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}

// handleKey applies a control key. Space pauses whether or not a field has
// focus; fields never accept whitespace.
func (g *Game) handleKey(k ebiten.Key) error {
	switch k {
	case ebiten.KeyEscape:
		return ebiten.Termination
	case ebiten.KeyTab:
		g.cycleFocus()
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		g.launch()
	case ebiten.KeySpace:
		g.togglePause()
	}
	return nil
}

// step advances the simulation by one tick and sounds the landing cue on
// ground contact.
func (g *Game) step() {
	wasRunning := g.sim.Running()
	g.sim.Tick(g.settings.Timestep)
	if wasRunning && g.sim.Landed() {
		log.Printf("[game] landed at x=%.2f m after %.2f s", g.sim.Position().X, g.sim.Elapsed())
		g.cue.landed()
	}
}

func (g *Game) launch() {
	speed, angle, err := parseLaunch(g.speedField.value(), g.angleField.value())
	if err == nil {
		err = g.sim.Launch(speed, angle)
	}
	if err != nil {
		g.reject(err)
		return
	}
	g.lastErr = nil
	st := g.sim.Stats()
	log.Printf("[game] launch speed=%g angle=%g: max height %.2f m, flight %.2f s, range %.2f m",
		speed, angle, st.MaxHeight, st.TimeOfFlight, st.Range)
	g.cue.launched()
}

func (g *Game) reject(err error) {
	log.Printf("[game] launch rejected: %v", err)
	g.lastErr = err
	if g.showError != nil {
		g.showError(err)
	}
}

func (g *Game) togglePause() {
	g.sim.TogglePause()
}

func (g *Game) reset() {
	g.sim.Reset()
	g.lastErr = nil
}

func (g *Game) focusAt(x, y int) {
	g.speedField.focused = g.speedField.contains(x, y)
	g.angleField.focused = g.angleField.contains(x, y)
}

func (g *Game) focusedField() *textField {
	switch {
	case g.speedField.focused:
		return g.speedField
	case g.angleField.focused:
		return g.angleField
	}
	return nil
}

func (g *Game) cycleFocus() {
	if g.speedField.focused {
		g.speedField.focused, g.angleField.focused = false, true
		return
	}
	g.speedField.focused, g.angleField.focused = true, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawTrajectory(screen)
	g.drawMarker(screen)

	for i, label := range readoutLabels(g.sim.Readout()) {
		ebitenutil.DebugPrintAt(screen, label, config.ControlsX+i*config.ReadoutSpacing, config.ReadoutY)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), config.ControlsX, config.ReadoutY+20)

	cursorOn := (g.frame/g.settings.TicksPerSecond())%2 == 0
	g.speedField.draw(screen, cursorOn)
	g.angleField.draw(screen, cursorOn)
	g.launchBtn.draw(screen)
	g.pauseBtn.draw(screen)
	g.resetBtn.draw(screen)
}

func (g *Game) drawTrajectory(screen *ebiten.Image) {
	scale := g.settings.Scale
	for _, seg := range g.sim.Trajectory() {
		x1, y1 := worldToScreen(seg.From, scale)
		x2, y2 := worldToScreen(seg.To, scale)
		vector.StrokeLine(screen, x1, y1, x2, y2, config.TrajectoryWidth, trajectoryColor, true)
	}
}

func (g *Game) drawMarker(screen *ebiten.Image) {
	x, y := worldToScreen(g.sim.Position(), g.settings.Scale)
	vector.DrawFilledCircle(screen, x, y, config.MarkerRadius, markerColor, true)
}

func (g *Game) status() string {
	var status string
	switch g.sim.Phase() {
	case sim.Idle:
		status = "Enter speed and angle, then Launch (Enter)"
	case sim.Flying:
		status = "Flying - Space to pause"
	case sim.Paused:
		status = "Paused - Space to resume"
	case sim.Landed:
		status = "Landed - Launch again or Reset"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close releases the audio device.
func (g *Game) Close() {
	g.cue.close()
}

// errorDialog shows a native error box without blocking the game loop. While
// one is open further errors are only shown in the status line.
func (g *Game) errorDialog(err error) {
	if !g.dialogOpen.CompareAndSwap(false, true) {
		return
	}
	msg := err.Error()
	if errors.Is(err, errInvalidInput) {
		msg = "Enter valid numbers for speed and angle.\n\n" + msg
	}
	go func() {
		defer g.dialogOpen.Store(false)
		if derr := g.dialog(msg); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
			log.Printf("[game] error dialog failed: %v", derr)
		}
	}()
}

func zenityError(msg string) error {
	return zenity.Error(msg, zenity.Title(config.WindowTitle), zenity.ErrorIcon)
}
