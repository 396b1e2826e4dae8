package input

import "github.com/gdamore/tcell/v2"

// DirectionForKey maps a terminal key event to a movement direction.
// Arrows, vi keys (hjkl) and WASD are accepted; every other key returns
// ok=false and is ignored for movement.
func DirectionForKey(ev *tcell.EventKey) (Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return Left, true
	case tcell.KeyRight:
		return Right, true
	case tcell.KeyUp:
		return Up, true
	case tcell.KeyDown:
		return Down, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return Left, true
		case 'l', 'd':
			return Right, true
		case 'k', 'w':
			return Up, true
		case 'j', 's':
			return Down, true
		}
	}
	return 0, false
}
