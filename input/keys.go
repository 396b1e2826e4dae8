package input

// Direction is one of the four movement directions the simulation accepts.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down

	numDirections = 4
)

// String returns the direction name for logs and tests.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// KeySet is the pressed-direction set consumed once per frame by the
// simulation step. It is a value type; the frame loop takes a snapshot
// from the Tracker and the step never sees concurrent mutation.
type KeySet uint8

// Has reports whether direction d is pressed.
func (k KeySet) Has(d Direction) bool {
	return k&(1<<d) != 0
}

// With returns a copy of the set with d pressed.
func (k KeySet) With(d Direction) KeySet {
	return k | 1<<d
}

// Empty reports whether no direction is pressed.
func (k KeySet) Empty() bool {
	return k == 0
}
