package game

import (
	"fmt"
	"math/rand"

	"github.com/nightwell/stardrift/config"
)

// Factories take an injected random source so tests can seed exact layouts.
// Callers that want system entropy pass rand.New(rand.NewSource(seed)) with
// a clock-derived seed.

// NewShip places the ship at the sector center with full hull and no boost.
func NewShip(cfg *config.Config) Ship {
	return Ship{
		X:      cfg.SectorWidth/2 - cfg.ShipWidth/2,
		Y:      cfg.SectorHeight/2 - cfg.ShipHeight/2,
		Width:  cfg.ShipWidth,
		Height: cfg.ShipHeight,
		Hull:   cfg.MaxHull,
	}
}

// NewOrbs creates n collectible orbs at uniform-random positions inside the
// spawn inset, with sequential ids starting at 0.
func NewOrbs(cfg *config.Config, n int, rng *rand.Rand) ([]Orb, error) {
	if n < 0 {
		return nil, fmt.Errorf("orb count must not be negative, got %d", n)
	}
	orbs := make([]Orb, n)
	for i := range orbs {
		orbs[i] = Orb{
			ID: i,
			X:  insetCoord(rng, cfg.SectorWidth, cfg.SpawnInset),
			Y:  insetCoord(rng, cfg.SectorHeight, cfg.SpawnInset),
		}
	}
	return orbs, nil
}

// NewPowerUps creates n power-ups inside the spawn inset with sequential ids
// and kinds alternating by index parity: even indexes restore hull, odd
// indexes grant a speed boost.
func NewPowerUps(cfg *config.Config, n int, rng *rand.Rand) ([]PowerUp, error) {
	if n < 0 {
		return nil, fmt.Errorf("power-up count must not be negative, got %d", n)
	}
	ups := make([]PowerUp, n)
	for i := range ups {
		kind := PowerHullRestore
		if i%2 == 1 {
			kind = PowerSpeedBoost
		}
		ups[i] = PowerUp{
			ID:   i,
			X:    insetCoord(rng, cfg.SectorWidth, cfg.SpawnInset),
			Y:    insetCoord(rng, cfg.SectorHeight, cfg.SpawnInset),
			Kind: kind,
		}
	}
	return ups, nil
}

// NewStars creates n background stars over the full sector: radius in
// [1, 3], opacity in [0.5, 1.0], opacity delta magnitude in [0.005, 0.015]
// with random sign.
func NewStars(cfg *config.Config, n int, rng *rand.Rand) ([]Star, error) {
	if n < 0 {
		return nil, fmt.Errorf("star count must not be negative, got %d", n)
	}
	stars := make([]Star, n)
	for i := range stars {
		delta := 0.005 + rng.Float64()*0.010
		if rng.Intn(2) == 0 {
			delta = -delta
		}
		stars[i] = Star{
			X:       rng.Float64() * cfg.SectorWidth,
			Y:       rng.Float64() * cfg.SectorHeight,
			Radius:  1 + rng.Float64()*2,
			Opacity: 0.5 + rng.Float64()*0.5,
			Delta:   delta,
		}
	}
	return stars, nil
}

// NewDrones places the fixed patrol: one drone per behavior, deterministic
// starting positions, all moving in the positive direction.
func NewDrones(cfg *config.Config) []Drone {
	size := func(d Drone) Drone {
		d.Width = cfg.DroneWidth
		d.Height = cfg.DroneHeight
		d.Direction = 1
		return d
	}
	return []Drone{
		size(Drone{X: cfg.Patrol.Left, Y: 150, Behavior: PatrolHorizontal}),
		size(Drone{X: 650, Y: cfg.Patrol.Top, Behavior: PatrolVertical}),
		size(Drone{X: 300, Y: 300, Behavior: PatrolDiagonal}),
	}
}

// NewState builds a complete starting snapshot from the factories. Restart
// goes through here as well; fresh randomization for orbs, power-ups and
// stars, fixed initial values for ship and drones.
func NewState(cfg *config.Config, rng *rand.Rand) (State, error) {
	orbs, err := NewOrbs(cfg, cfg.OrbCount, rng)
	if err != nil {
		return State{}, err
	}
	ups, err := NewPowerUps(cfg, cfg.PowerUpCount, rng)
	if err != nil {
		return State{}, err
	}
	stars, err := NewStars(cfg, cfg.StarCount, rng)
	if err != nil {
		return State{}, err
	}
	return State{
		Ship:     NewShip(cfg),
		Orbs:     orbs,
		PowerUps: ups,
		Drones:   NewDrones(cfg),
		Stars:    stars,
	}, nil
}

// insetCoord draws a uniform coordinate in [inset, span-inset]. A span too
// small for the inset collapses to the sector center.
func insetCoord(rng *rand.Rand, span, inset float64) float64 {
	usable := span - 2*inset
	if usable <= 0 {
		return span / 2
	}
	return inset + rng.Float64()*usable
}
