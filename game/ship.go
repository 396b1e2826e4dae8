package game

import (
	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/input"
	"github.com/nightwell/stardrift/vmath"
)

// moveShip applies the pressed-direction set to the ship. Each axis moves
// independently, so holding two perpendicular keys moves diagonally at
// speed×√2 — no normalization. The result is clamped into the sector, and
// the boost timer ages by one frame; the resolver overwrites that decayed
// value if a speed boost is claimed this same frame.
func moveShip(cfg *config.Config, sh Ship, keys input.KeySet) Ship {
	speed := cfg.BaseSpeed
	if sh.BoostTimer > 0 {
		speed = cfg.BoostSpeed
	}

	if keys.Has(input.Left) {
		sh.X -= speed
	}
	if keys.Has(input.Right) {
		sh.X += speed
	}
	if keys.Has(input.Up) {
		sh.Y -= speed
	}
	if keys.Has(input.Down) {
		sh.Y += speed
	}

	sh.X = vmath.Clamp(sh.X, 0, cfg.SectorWidth-sh.Width)
	sh.Y = vmath.Clamp(sh.Y, 0, cfg.SectorHeight-sh.Height)

	if sh.BoostTimer > 0 {
		sh.BoostTimer--
	}
	return sh
}
