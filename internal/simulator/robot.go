package simulator

import "fmt"

// State is the robot state threaded through the command fold. The zero
// value is the initial, unplaced state.
type State struct {
	Placed bool
	Pos    Position
	Facing Direction
}

func (s State) String() string {
	if !s.Placed {
		return "unplaced"
	}
	return fmt.Sprintf("%d,%d,%s", s.Pos.X, s.Pos.Y, s.Facing)
}

// Apply returns the state after executing cmd on table t. Every
// rejection is silent: a PLACE off the table, a MOVE that would leave
// it, and any non-PLACE command while unplaced return the state
// untouched. A placed state therefore never holds an out-of-bounds
// position.
func Apply(t Table, st State, cmd *Command) State {
	if cmd == nil {
		return st
	}
	switch {
	case cmd.Place != nil:
		f, ok := ParseDirection(cmd.Place.Facing)
		p := Position{X: cmd.Place.X, Y: cmd.Place.Y}
		if !ok || !t.Contains(p) {
			return st
		}
		return State{Placed: true, Pos: p, Facing: f}
	case !st.Placed:
		return st
	case cmd.Move:
		dx, dy := st.Facing.Step()
		next := Position{X: st.Pos.X + dx, Y: st.Pos.Y + dy}
		if t.Contains(next) {
			st.Pos = next
		}
		return st
	case cmd.Left:
		st.Facing = st.Facing.Left()
		return st
	case cmd.Right:
		st.Facing = st.Facing.Right()
		return st
	}
	// REPORT and anything else leave the state as-is.
	return st
}
