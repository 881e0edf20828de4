package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"shootinggallery/internal/game"
	"shootinggallery/internal/targets"
)

// Player plays a sound on every hit and at the end of a round. Until Init
// succeeds it stays silent, so a machine without an audio device still plays.
type Player struct {
	game.NopListener

	mu          sync.Mutex
	volume      float64
	initialized bool
	play        func(beep.Streamer)
}

func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.play = func(s beep.Streamer) { speaker.Play(s) }
	p.initialized = true
	return nil
}

// Close stops anything still playing. The device itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
	p.play = nil
}

func (p *Player) OnHit(targets.Target) {
	p.emit("hit", HitSound)
}

func (p *Player) OnGameOver(game.Result) {
	p.emit("over", OverSound)
}

func (p *Player) emit(name string, build func(beep.SampleRate, float64) (beep.Streamer, error)) {
	p.mu.Lock()
	play := p.play
	p.mu.Unlock()
	if play == nil {
		return
	}

	s, err := build(sampleRate, p.volume)
	if err != nil {
		log.Printf("[Audio] %s sound: %v", name, err)
		return
	}
	play(s)
}
