package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skyhop/internal/core"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440, 100*time.Millisecond, w, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", w, n, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeCutsAndFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Source lasts longer than the envelope
	src := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, ok := env.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("Stream = %d, %v; want 100, true", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silent attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want full volume", buf[50][0])
	}
	if last := math.Abs(buf[99][0]); last > 0.11 {
		t.Errorf("last sample = %f, want faded", last)
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("drained envelope Stream = %d, %v", n, ok)
	}
}

func TestEffectsAreFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, s := range []core.Sound{core.SoundJump, core.SoundCoin, core.SoundHit} {
		streamer := CreateSound(s, rate, 1)
		if streamer == nil {
			t.Fatalf("%v: no streamer", s)
		}
		n, peak := drain(t, streamer)
		if n == 0 {
			t.Errorf("%v: empty effect", s)
		}
		if n > rate.N(time.Second) {
			t.Errorf("%v: effect lasts %d samples, too long", s, n)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("%v: peak = %f", s, peak)
		}
	}
}

func TestCreateSoundUnknown(t *testing.T) {
	if CreateSound(core.Sound(99), beep.SampleRate(44100), 1) != nil {
		t.Error("unknown sound should yield nil")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateJumpSound(beep.SampleRate(44100), 0))
	if peak != 0 {
		t.Errorf("silent effect peak = %f", peak)
	}
}

func TestMusicLoopsForever(t *testing.T) {
	rate := beep.SampleRate(8000)
	m := NewMusic(rate, 1)
	buf := make([][2]float64, rate.N(3*time.Second))
	n, ok := m.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("music Stream = %d, %v; want endless", n, ok)
	}
}

func TestSoundManagerBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	if !sm.Enabled() {
		t.Error("sound should start enabled")
	}

	// No speaker yet: all calls are no-ops
	sm.Play(core.SoundJump)
	sm.PlayAll([]core.Sound{core.SoundCoin, core.SoundHit})
	sm.Cleanup()

	if sm.Toggle() {
		t.Error("Toggle should switch sound off")
	}
	if sm.Enabled() {
		t.Error("Enabled after toggle off")
	}
	sm.SetEnabled(true)
	if !sm.Enabled() {
		t.Error("SetEnabled(true) not applied")
	}
}
