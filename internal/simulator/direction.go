package simulator

import "strings"

// Direction is a cardinal direction, cyclically ordered
// NORTH -> EAST -> SOUTH -> WEST.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

// ParseDirection resolves a direction name, case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(s) {
	case "NORTH":
		return North, true
	case "EAST":
		return East, true
	case "SOUTH":
		return South, true
	case "WEST":
		return West, true
	}
	return North, false
}

func (d Direction) String() string {
	if d < North || d > West {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// Left returns the direction one quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the direction one quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Step returns the unit move deltas for the direction.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Glyph returns the single-character marker used by the ASCII render.
func (d Direction) Glyph() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}
