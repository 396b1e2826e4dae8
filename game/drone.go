package game

import "github.com/nightwell/stardrift/config"

// moveDrones advances every drone one frame along its patrol rule,
// snap-and-flip reflecting at the patrol bounds.
func moveDrones(cfg *config.Config, drones []Drone) {
	for i := range drones {
		d := &drones[i]
		switch d.Behavior {
		case PatrolHorizontal:
			d.X += d.Direction * cfg.HorizontalDroneSpeed
			bounceX(d, cfg.Patrol)
		case PatrolVertical:
			d.Y += d.Direction * cfg.VerticalDroneSpeed
			bounceY(d, cfg.Patrol)
		case PatrolDiagonal:
			// Both axes advance on the one shared direction value, so a
			// bounce on either axis reverses the whole diagonal. The
			// original patrol behaves this way; keep it.
			d.X += d.Direction * cfg.DiagonalDroneSpeed
			d.Y += d.Direction * cfg.DiagonalDroneSpeed
			bounceX(d, cfg.Patrol)
			bounceY(d, cfg.Patrol)
		}
	}
}

func bounceX(d *Drone, b config.PatrolBounds) {
	if d.X < b.Left {
		d.X = b.Left
		d.Direction = 1
	} else if d.X > b.Right {
		d.X = b.Right
		d.Direction = -1
	}
}

func bounceY(d *Drone, b config.PatrolBounds) {
	if d.Y < b.Top {
		d.Y = b.Top
		d.Direction = 1
	} else if d.Y > b.Bottom {
		d.Y = b.Bottom
		d.Direction = -1
	}
}
