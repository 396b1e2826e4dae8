package game

// PowerKind selects a power-up effect.
type PowerKind uint8

const (
	// PowerHullRestore adds hull integrity, capped at max hull.
	PowerHullRestore PowerKind = iota
	// PowerSpeedBoost resets the ship boost timer to its full duration.
	PowerSpeedBoost
)

func (k PowerKind) String() string {
	switch k {
	case PowerHullRestore:
		return "hull-restore"
	case PowerSpeedBoost:
		return "speed-boost"
	}
	return "unknown"
}

// DroneBehavior selects one of the three fixed patrol rules. The
// enumeration is closed: drone motion dispatches over exactly these tags.
type DroneBehavior uint8

const (
	PatrolHorizontal DroneBehavior = iota
	PatrolVertical
	PatrolDiagonal
)

func (b DroneBehavior) String() string {
	switch b {
	case PatrolHorizontal:
		return "horizontal"
	case PatrolVertical:
		return "vertical"
	case PatrolDiagonal:
		return "diagonal"
	}
	return "unknown"
}

// Ship is the player vessel. Position is the top-left corner in sector
// coordinates; Hull is in [0, MaxHull]; BoostTimer counts the remaining
// frames of boosted speed (0 = inactive).
type Ship struct {
	X, Y          float64
	Width, Height float64
	Hull          float64
	BoostTimer    int
}

// Orb is a collectible stardust mote. Collected is a one-way transition.
type Orb struct {
	ID        int
	X, Y      float64
	Collected bool
}

// PowerUp grants its effect exactly once, at the moment Claimed flips.
type PowerUp struct {
	ID      int
	X, Y    float64
	Kind    PowerKind
	Claimed bool
}

// Drone patrols the sector and drains hull on contact. Direction is the
// shared sign for its motion: +1 or -1. Diagonal drones apply it to both
// axes at once.
type Drone struct {
	X, Y          float64
	Width, Height float64
	Behavior      DroneBehavior
	Direction     float64
}

// Star is decorative background. Opacity oscillates inside [0.2, 1.0];
// Delta is the signed per-frame change.
type Star struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	Delta   float64
}

// State is one frame's complete snapshot. The frame step computes a wholly
// new State from the previous one; nothing is shared between the two except
// when the game is over, at which point the state is frozen and returned
// as is.
type State struct {
	Ship     Ship
	Orbs     []Orb
	PowerUps []PowerUp
	Drones   []Drone
	Stars    []Star
	Score    int
	GameOver bool
}

// clone returns a deep copy; the step mutates the copy, never the original.
func (s State) clone() State {
	next := s
	next.Orbs = append([]Orb(nil), s.Orbs...)
	next.PowerUps = append([]PowerUp(nil), s.PowerUps...)
	next.Drones = append([]Drone(nil), s.Drones...)
	next.Stars = append([]Star(nil), s.Stars...)
	return next
}

// OrbsCollected counts collected orbs, for the status display.
func (s *State) OrbsCollected() int {
	n := 0
	for _, o := range s.Orbs {
		if o.Collected {
			n++
		}
	}
	return n
}
