package input

import "sync"

// Tracker owns the pressed-keys set. Key events arrive asynchronously from
// the terminal poller while the frame loop drains the set once per tick, so
// all access goes through one mutex. Terminal input reports presses only
// (no release events); a direction therefore stays pressed for holdFrames
// frames after its last event, and terminal autorepeat keeps a held key
// alive by refreshing the window.
type Tracker struct {
	mu         sync.Mutex
	hold       [numDirections]int
	holdFrames int
	suppressed bool
}

// NewTracker creates a tracker whose directions stay pressed for holdFrames
// frames after the last key event.
func NewTracker(holdFrames int) *Tracker {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Tracker{holdFrames: holdFrames}
}

// Press registers a key event for direction d. Ignored while suppressed.
func (t *Tracker) Press(d Direction) {
	if d >= numDirections {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.suppressed {
		return
	}
	t.hold[d] = t.holdFrames
}

// Tick returns the current pressed set and ages every hold window by one
// frame. Called exactly once per frame by the loop, which guarantees each
// press is observed at least once before it can expire.
func (t *Tracker) Tick() KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()

	var keys KeySet
	for d := Direction(0); d < numDirections; d++ {
		if t.hold[d] > 0 {
			keys = keys.With(d)
			t.hold[d]--
		}
	}
	return keys
}

// Suppress toggles input suppression. While suppressed, presses are dropped
// and any live holds are cleared, so a game-over screen never accumulates
// movement for the next session.
func (t *Tracker) Suppress(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.suppressed = on
	if on {
		t.hold = [numDirections]int{}
	}
}

// Reset clears all holds and lifts suppression. Used on restart.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hold = [numDirections]int{}
	t.suppressed = false
}
