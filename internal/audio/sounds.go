package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// fade shapes a finite stream with a linear attack and release.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.position >= f.total {
			return i, false
		}
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if rest := f.total - f.position; rest < f.release {
			vol = float64(rest) / float64(f.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0f Hz: %w", freq, err)
	}
	return newFade(beep.Take(rate.N(d), sine), d, attack, release, rate), nil
}

// HitSound is a short bright pop.
func HitSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	fund, err := tone(1046.5, 70*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, rate)
	if err != nil {
		return nil, err
	}
	over, err := tone(2093, 40*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, rate)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), vol), nil
}

// OverSound is a falling three-note phrase for the end of a round.
func OverSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes := []float64{659.25, 523.25, 392}
	seq := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		d := 160 * time.Millisecond
		if i == len(notes)-1 {
			d = 400 * time.Millisecond
		}
		s, err := tone(freq, d, 5*time.Millisecond, d/2, rate)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s)
	}
	return newVolume(beep.Seq(seq...), vol), nil
}
