package game

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestFadeOutEndsAfterLength(t *testing.T) {
	c := newCuePlayer(false, 1000)
	s, err := c.tone(100, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("tone: %v", err)
	}

	buf := make([][2]float64, 32)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > 1000 {
			t.Fatal("tone did not end")
		}
	}
	if total != 50 {
		t.Errorf("expected 50 samples, got %d", total)
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFadeOutRampsGainDown(t *testing.T) {
	const length = 100
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	f := newFadeOut(ones, length)

	buf := make([][2]float64, length)
	n, ok := f.Stream(buf)
	if n != length || !ok {
		t.Fatalf("expected %d samples, got %d (ok=%v)", length, n, ok)
	}
	if buf[0][0] != 1 {
		t.Errorf("expected full gain at start, got %v", buf[0][0])
	}
	for i := 1; i < n; i++ {
		if buf[i][0] >= buf[i-1][0] {
			t.Fatalf("gain not decreasing at %d: %v >= %v", i, buf[i][0], buf[i-1][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("channels differ at %d", i)
		}
	}
	if n, ok := f.Stream(buf); n != 0 || ok {
		t.Errorf("expected drained stream, got n=%d ok=%v", n, ok)
	}
}

func TestToneAmplitude(t *testing.T) {
	s, err := tone(beep.SampleRate(8000), 440)
	if err != nil {
		t.Fatalf("tone: %v", err)
	}
	buf := make([][2]float64, 8000)
	if n, ok := s.Stream(buf); n != len(buf) || !ok {
		t.Fatalf("expected an endless tone, got n=%d ok=%v", n, ok)
	}
	peak := 0.0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(v[0]))
		if v[0] != v[1] {
			t.Fatal("channels differ")
		}
	}
	if peak > cueVolume+1e-9 || peak < cueVolume*0.99 {
		t.Errorf("expected peak ≈ %v, got %v", cueVolume, peak)
	}
}

func TestToneRejectsFrequencyAboveNyquist(t *testing.T) {
	c := newCuePlayer(false, 1000)
	if _, err := c.tone(landingToneHz*4, 10*time.Millisecond); err == nil {
		t.Error("expected an error for a tone above half the sample rate")
	}
}

func TestDisabledCuePlayerIsSilent(t *testing.T) {
	c := newCuePlayer(false, 44100)
	c.launched()
	c.landed()
	c.close()
	if c.initDone {
		t.Error("disabled cue player initialized the speaker")
	}
}
