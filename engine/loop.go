// Package engine drives the game: it owns the authoritative state
// snapshot, runs the frame ticker, merges asynchronous key events into the
// pressed-keys set, and hands each new snapshot to the presenter. The
// simulation itself lives in the game package; the engine is the single
// writer of its state.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/game"
	"github.com/nightwell/stardrift/input"
)

// Presenter consumes one full snapshot per frame and owns all drawing.
type Presenter interface {
	Render(s *game.State)
	Resize(w, h int)
}

// Sounder receives the cue calls derived from snapshot transitions. The
// audio package implements it; tests plug in recorders.
type Sounder interface {
	PlayPickup()
	PlayDamage()
	PlayPowerUp()
	PlayGameOver()
}

// NopSounder is a Sounder that does nothing, for muted sessions.
type NopSounder struct{}

func (NopSounder) PlayPickup()   {}
func (NopSounder) PlayDamage()   {}
func (NopSounder) PlayPowerUp()  {}
func (NopSounder) PlayGameOver() {}

// Loop runs the cooperative frame loop. One goroutine (Run) owns the state;
// key events arrive through the tracker, which is the only concurrently
// touched cell.
type Loop struct {
	cfg       *config.Config
	rng       *rand.Rand
	state     game.State
	tracker   *input.Tracker
	presenter Presenter
	sounds    Sounder

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop builds the initial state from the factories and wires the loop.
// A nil sounds falls back to NopSounder.
func NewLoop(cfg *config.Config, rng *rand.Rand, presenter Presenter, sounds Sounder) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	state, err := game.NewState(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build initial state: %w", err)
	}
	if sounds == nil {
		sounds = NopSounder{}
	}
	return &Loop{
		cfg:       cfg,
		rng:       rng,
		state:     state,
		tracker:   input.NewTracker(cfg.KeyHoldFrames),
		presenter: presenter,
		sounds:    sounds,
		stopChan:  make(chan struct{}),
	}, nil
}

// Run processes terminal events and frame ticks until a quit key, a closed
// event channel, or Stop. The ticker is released on return, so no tick can
// fire after the loop's owner tears the screen down.
func (l *Loop) Run(events <-chan tcell.Event) {
	ticker := time.NewTicker(l.cfg.FrameInterval)
	defer ticker.Stop()

	l.presenter.Render(&l.state)

	for {
		select {
		case <-l.stopChan:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !l.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stop cancels the loop. Safe to call from any goroutine, any number of
// times, including before Run.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// handleEvent processes one terminal event. Returns false to quit.
func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.handleKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		l.presenter.Resize(w, h)
	}
	return true
}

func (l *Loop) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			// Restart from the game-over screen only; an accidental tap
			// mid-flight should not wipe a run.
			if l.state.GameOver {
				l.Restart()
			}
			return true
		case 'R':
			l.Restart()
			return true
		}
	}
	if d, ok := input.DirectionForKey(ev); ok {
		l.tracker.Press(d)
	}
	return true
}

// Tick advances the simulation by one frame and renders the new snapshot.
// Exported for the benefit of headless tests; Run is the only production
// caller.
func (l *Loop) Tick() {
	keys := l.tracker.Tick()
	prev := l.state
	next := game.Step(l.cfg, prev, keys)
	l.emitSounds(&prev, &next)
	l.state = next
	l.presenter.Render(&l.state)
}

// Restart discards the current session and rebuilds everything from the
// factories with fresh randomization.
func (l *Loop) Restart() {
	state, err := game.NewState(l.cfg, l.rng)
	if err != nil {
		// Config was validated at construction, so the factories cannot
		// reject counts here; keep the old state if they somehow do.
		return
	}
	l.state = state
	l.tracker.Reset()
}

// State returns a copy of the current snapshot.
func (l *Loop) State() game.State {
	return l.state
}

// emitSounds derives audio cues from the transition between two snapshots.
func (l *Loop) emitSounds(prev, next *game.State) {
	if next.Score > prev.Score {
		l.sounds.PlayPickup()
	}
	if next.Ship.Hull < prev.Ship.Hull {
		l.sounds.PlayDamage()
	}
	for i := range next.PowerUps {
		if next.PowerUps[i].Claimed && !prev.PowerUps[i].Claimed {
			l.sounds.PlayPowerUp()
		}
	}
	if next.GameOver && !prev.GameOver {
		l.sounds.PlayGameOver()
		// Movement keys are dead until restart
		l.tracker.Suppress(true)
	}
}
