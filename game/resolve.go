package game

import (
	"math"

	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/vmath"
)

// resolveCollisions applies pickup, damage and power-up outcomes against the
// ship's post-motion position, then decides the game-over transition.
//
// Ordering matters in one place: power-up effects run after drone damage,
// and a speed-boost claim writes the boost timer last, overriding the decay
// the motion model already applied this frame.
func resolveCollisions(cfg *config.Config, s *State) {
	sh := &s.Ship
	centerX := sh.X + sh.Width/2
	centerY := sh.Y + sh.Height/2

	// Orb pickup: proximity of ship center to orb center
	for i := range s.Orbs {
		o := &s.Orbs[i]
		if o.Collected {
			continue
		}
		if vmath.WithinRadius(o.X, o.Y, centerX, centerY, cfg.OrbPickupRadius) {
			o.Collected = true
			s.Score += cfg.OrbScore
		}
	}

	// Drone contact: damage repeats every frame the overlap persists
	for _, d := range s.Drones {
		if vmath.BoxesOverlap(sh.X, sh.Y, sh.Width, sh.Height, d.X, d.Y, d.Width, d.Height) {
			sh.Hull -= cfg.ContactDamage
			if sh.Hull < 0 {
				sh.Hull = 0
			}
		}
	}

	// Power-ups: the pickup zone is a square centered on the stored position
	half := cfg.PowerUpBoxSize / 2
	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		if p.Claimed {
			continue
		}
		if !vmath.BoxesOverlap(sh.X, sh.Y, sh.Width, sh.Height,
			p.X-half, p.Y-half, cfg.PowerUpBoxSize, cfg.PowerUpBoxSize) {
			continue
		}
		p.Claimed = true
		switch p.Kind {
		case PowerHullRestore:
			sh.Hull = math.Min(cfg.MaxHull, sh.Hull+cfg.HullRestore)
		case PowerSpeedBoost:
			// Last claim wins, no stacking: a partially decayed boost is
			// overwritten with the full duration.
			sh.BoostTimer = cfg.BoostDuration
		}
	}

	if sh.Hull <= 0 {
		s.GameOver = true
	}
}
