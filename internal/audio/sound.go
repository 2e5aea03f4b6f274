// Package audio plays short synthesised effects for match events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one beep: a sine at Freq for Duration. A victory plays several.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Effect picks the tones for an event. Paddle hits rise in pitch with ball
// speed. ok is false for events that make no sound.
func Effect(ev pong.Event) (tones []Tone, ok bool) {
	switch ev.Kind {
	case pong.EventPaddleHit:
		freq := 440.0
		if ev.Speed > 10 {
			freq += (ev.Speed - 10) * 40
		}
		return []Tone{{Freq: freq, Duration: 60 * time.Millisecond}}, true
	case pong.EventWallBounce:
		return []Tone{{Freq: 220, Duration: 40 * time.Millisecond}}, true
	case pong.EventOut:
		return []Tone{{Freq: 150, Duration: 250 * time.Millisecond}}, true
	case pong.EventVictory:
		return []Tone{
			{Freq: 523.25, Duration: 120 * time.Millisecond},
			{Freq: 659.25, Duration: 120 * time.Millisecond},
			{Freq: 783.99, Duration: 240 * time.Millisecond},
		}, true
	}
	return nil, false
}

// Streamer builds the finite beep streamer for a tone sequence.
func Streamer(sr beep.SampleRate, tones []Tone, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.1fHz: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(t.Duration), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SoundManager owns the speaker and plays effects through one mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. It is silent until Initialize.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// OnEvent plays the effect for a match event. Subscribe it to a match.
func (sm *SoundManager) OnEvent(ev pong.Event) {
	tones, ok := Effect(ev)
	if !ok {
		return
	}
	sm.play(tones)
}

func (sm *SoundManager) play(tones []Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, ok := sm.effect(tones)
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// effect builds the streamer for tones, logging tones that can't be played.
func (sm *SoundManager) effect(tones []Tone) (beep.Streamer, bool) {
	s, err := Streamer(sampleRate, tones, sm.volume)
	if err != nil {
		log.Debug().Err(err).Int("tones", len(tones)).Msg("build effect")
		return nil, false
	}
	return s, true
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
