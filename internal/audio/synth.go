package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skyhop/internal/core"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Effect timings.
const (
	jumpDuration  = 140 * time.Millisecond
	coinNote      = 70 * time.Millisecond
	hitDuration   = 350 * time.Millisecond
	attackTime    = 5 * time.Millisecond
	releaseTime   = 40 * time.Millisecond
	musicStepTime = 180 * time.Millisecond
)

// oscillator produces a finite wave whose frequency glides linearly
// from freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a constant-pitch wave lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep returns a wave gliding from start to end Hz.
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(start*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, cutting it at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent since
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateJumpSound is a short rising chirp.
func CreateJumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(320, 760, jumpDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, jumpDuration, attackTime, releaseTime, rate), vol*0.5)
}

// CreateCoinSound is a two-note chime, B5 then E6.
func CreateCoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	first := NewEnvelope(NewOscillator(987.77, coinNote, WaveSine, rate), coinNote, attackTime, 10*time.Millisecond, rate)
	second := NewEnvelope(NewOscillator(1318.51, 2*coinNote, WaveSine, rate), 2*coinNote, attackTime, releaseTime, rate)
	return newVolume(beep.Seq(first, second), vol*0.6)
}

// CreateHitSound is a falling buzz over a noise burst.
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := NewEnvelope(NewSweep(220, 60, hitDuration, WaveTriangle, rate), hitDuration, attackTime, 200*time.Millisecond, rate)
	noise := NewEnvelope(NewOscillator(0, hitDuration/3, WaveNoise, rate), hitDuration/3, 0, 80*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(buzz, 0.7), newVolume(noise, 0.3)), vol)
}

// CreateSound builds the effect for s, or nil for an unknown sound.
func CreateSound(s core.Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case core.SoundJump:
		return CreateJumpSound(rate, vol)
	case core.SoundCoin:
		return CreateCoinSound(rate, vol)
	case core.SoundHit:
		return CreateHitSound(rate, vol)
	}
	return nil
}

// musicNotes is a looping pentatonic arpeggio in A minor.
var musicNotes = []float64{220.00, 261.63, 329.63, 392.00, 440.00, 392.00, 329.63, 261.63}

// musicStream plays musicNotes forever.
type musicStream struct {
	rate  beep.SampleRate
	step  int
	pos   int
	phase float64
}

// NewMusic returns an endless soft background tune.
func NewMusic(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(&musicStream{rate: rate}, vol*0.15)
}

func (m *musicStream) Stream(samples [][2]float64) (n int, ok bool) {
	stepLen := m.rate.N(musicStepTime)
	for i := range samples {
		// Pluck: each note decays over its step
		env := math.Exp(-4 * float64(m.pos) / float64(stepLen))
		val := env * (4*math.Abs(m.phase-0.5) - 1)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += musicNotes[m.step] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
		if m.pos >= stepLen {
			m.pos = 0
			m.step = (m.step + 1) % len(musicNotes)
		}
	}
	return len(samples), true
}

func (m *musicStream) Err() error { return nil }
