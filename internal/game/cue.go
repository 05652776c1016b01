package game

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	launchToneHz   = 660
	landingToneHz  = 196
	launchToneLen  = 80 * time.Millisecond
	landingToneLen = 160 * time.Millisecond
	cueVolume      = 0.3
)

// tone is an endless sine at freq scaled to cueVolume.
func tone(sr beep.SampleRate, freq int) (beep.Streamer, error) {
	sine, err := generators.SinTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %d Hz at %d Hz: %w", freq, sr, err)
	}
	return &effects.Gain{Streamer: sine, Gain: cueVolume - 1}, nil
}

// fadeOut wraps a beep.Streamer and ramps its gain linearly from 1 to 0 over
// length samples, then ends the stream.
type fadeOut struct {
	Source beep.Streamer
	length int
	pos    int
}

func newFadeOut(src beep.Streamer, length int) *fadeOut {
	return &fadeOut{Source: src, length: length}
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	if f.pos >= f.length {
		return 0, false
	}
	if rest := f.length - f.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := f.Source.Stream(samples)
	for i := 0; i < n; i++ {
		gain := clamp01(1 - float64(f.pos)/float64(f.length))
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok || n > 0
}

func (f *fadeOut) Err() error { return f.Source.Err() }

// cuePlayer plays short synthesized tones. The speaker is initialized on the
// first cue; if that fails, sound stays off for the rest of the session.
type cuePlayer struct {
	enabled  bool
	initDone bool
	sr       beep.SampleRate
}

func newCuePlayer(enabled bool, sampleRate int) *cuePlayer {
	return &cuePlayer{enabled: enabled, sr: beep.SampleRate(sampleRate)}
}

func (c *cuePlayer) init() bool {
	if c.initDone {
		return true
	}
	if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
		log.Printf("[audio] speaker init failed, sound disabled: %v", err)
		c.enabled = false
		return false
	}
	c.initDone = true
	return true
}

func (c *cuePlayer) play(freq int, d time.Duration) {
	if !c.enabled || !c.init() {
		return
	}
	s, err := c.tone(freq, d)
	if err != nil {
		log.Printf("[audio] cue skipped: %v", err)
		return
	}
	speaker.Play(s)
}

// tone is a freq Hz cue that fades to silence over d.
func (c *cuePlayer) tone(freq int, d time.Duration) (beep.Streamer, error) {
	src, err := tone(c.sr, freq)
	if err != nil {
		return nil, err
	}
	return newFadeOut(src, c.sr.N(d)), nil
}

func (c *cuePlayer) launched() { c.play(launchToneHz, launchToneLen) }
func (c *cuePlayer) landed() { c.play(landingToneHz, landingToneLen) }

func (c *cuePlayer) close() {
	if c.initDone {
		speaker.Close()
	}
}
