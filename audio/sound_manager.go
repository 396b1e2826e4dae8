// Package audio synthesizes the game's sound cues with beep. Audio is an
// optional subsystem: when speaker initialization fails (headless session,
// no audio device) every Play call is a safe no-op and the game runs
// silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// minDamageGap rate-limits the contact buzz; drone overlap repeats
	// every frame and one buzz per frame is noise, not feedback.
	minDamageGap = 150 * time.Millisecond
)

// SoundManager plays the game's cues through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastDamage  time.Time
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize sets up the speaker and starts the mixer. Safe to call twice.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// play queues tones on the mixer under the speaker lock.
func (sm *SoundManager) play(streamers ...beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Seq(streamers...))
	speaker.Unlock()
}

// tone builds one enveloped note.
func tone(freq float64, duration time.Duration, wave WaveType) beep.Streamer {
	osc := NewTone(freq, duration, wave, sampleRate)
	return NewEnvelope(osc, duration, 5*time.Millisecond, 30*time.Millisecond, sampleRate)
}

// PlayPickup plays the two-note coin chirp for an orb pickup.
func (sm *SoundManager) PlayPickup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(
		tone(880, 60*time.Millisecond, WaveSine),
		tone(1318.5, 120*time.Millisecond, WaveSine),
	)
}

// PlayDamage plays a low buzz for drone contact, rate-limited because
// contact damage repeats every frame.
func (sm *SoundManager) PlayDamage() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	if now.Sub(sm.lastDamage) < minDamageGap {
		return
	}
	sm.lastDamage = now
	sm.play(tone(110, 90*time.Millisecond, WaveSquare))
}

// PlayPowerUp plays a rising third for a claimed power-up.
func (sm *SoundManager) PlayPowerUp() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(
		tone(659.3, 80*time.Millisecond, WaveSine),
		tone(830.6, 160*time.Millisecond, WaveSine),
	)
}

// PlayGameOver plays the descending end-of-game figure.
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(
		tone(440, 180*time.Millisecond, WaveSine),
		tone(330, 180*time.Millisecond, WaveSine),
		tone(220, 360*time.Millisecond, WaveSine),
	)
}
