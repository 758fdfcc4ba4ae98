package types

// Direction represents a cardinal direction
type Direction int

const (
	NONE Direction = iota // 0
	UP                    // 1
	RIGHT                 // 2
	DOWN                  // 3
	LEFT                  // 4
)

// ToPoint converts a Direction into a movement step
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// DirectionOf maps a unit step back to its Direction, NONE for anything else
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return UP
	case Point{X: 1, Y: 0}:
		return RIGHT
	case Point{X: 0, Y: 1}:
		return DOWN
	case Point{X: -1, Y: 0}:
		return LEFT
	default:
		return NONE
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
