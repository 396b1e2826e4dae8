// Package game holds the per-frame simulation core: the data model, the
// entity factories, and the pure frame transition. It knows nothing about
// terminals, audio or timers; the engine package drives it and the render
// package draws its snapshots.
package game

import (
	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/input"
)

// Step computes the next frame from the previous one. It is a pure
// transition: prev is never mutated, the returned State shares nothing with
// it, and the same (prev, keys) always yields the same result. Once the
// game is over the state is frozen and returned unchanged until an external
// restart rebuilds it from the factories.
//
// Frame order: starfield flicker, ship motion, drone patrol, then collision
// and scoring resolution against the ship's new position.
func Step(cfg *config.Config, prev State, keys input.KeySet) State {
	if prev.GameOver {
		return prev
	}

	next := prev.clone()
	animateStars(next.Stars)
	next.Ship = moveShip(cfg, next.Ship, keys)
	moveDrones(cfg, next.Drones)
	resolveCollisions(cfg, &next)
	return next
}
