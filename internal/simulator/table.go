package simulator

// Position is a cell on the tabletop.
type Position struct {
	X, Y int
}

// Table is the bounded rectangular tabletop the robot moves on.
// Valid positions satisfy 0 <= x < Width and 0 <= y < Height.
type Table struct {
	Width  int
	Height int
}

// NewTable returns the default 5x5 tabletop.
func NewTable() Table {
	return Table{Width: 5, Height: 5}
}

func (t Table) Contains(p Position) bool {
	return p.X >= 0 && p.X < t.Width && p.Y >= 0 && p.Y < t.Height
}
