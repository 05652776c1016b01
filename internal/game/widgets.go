package game

import (
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxFieldRunes = 16

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// button tracks hover and press so a click only fires when the mouse is both
// pressed and released over it.
type button struct {
	rect
	label   string
	hovered bool
	pressed bool
}

func (b *button) update(mouseX, mouseY int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

// textField is a single-line numeric entry box.
type textField struct {
	rect
	placeholder string
	text        []rune
	focused     bool
}

// insert appends printable runes. Whitespace is dropped so Space stays free
// for pausing.
func (f *textField) insert(runes []rune) {
	for _, r := range runes {
		if len(f.text) >= maxFieldRunes {
			return
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			continue
		}
		f.text = append(f.text, r)
	}
}

func (f *textField) backspace() {
	if len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

func (f *textField) value() string { return string(f.text) }

func (f *textField) set(s string) {
	f.text = f.text[:0]
	f.insert([]rune(s))
}

func (f *textField) draw(screen *ebiten.Image, cursorOn bool) {
	border := color.RGBA{R: 120, G: 120, B: 130, A: 255}
	if f.focused {
		border = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	}
	vector.DrawFilledRect(screen, float32(f.x), float32(f.y), float32(f.w), float32(f.h), color.RGBA{R: 30, G: 34, B: 44, A: 255}, false)
	vector.StrokeRect(screen, float32(f.x), float32(f.y), float32(f.w), float32(f.h), 2, border, false)

	label := f.value()
	if label == "" && !f.focused {
		label = f.placeholder
	}
	if f.focused && cursorOn {
		label += "_"
	}
	ebitenutil.DebugPrintAt(screen, label, f.x+6, f.y+(f.h-16)/2)
}
