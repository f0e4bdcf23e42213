package simulator

import (
	"fmt"
	"strings"
)

// Render returns an ASCII picture of the tabletop with the robot cell
// marked by its facing glyph. The top row is the highest Y. Pure
// function of the state; it never affects the simulation.
func Render(t Table, st State) string {
	var b strings.Builder

	border := "+" + strings.Repeat("---+", t.Width)
	for y := t.Height - 1; y >= 0; y-- {
		b.WriteString(border)
		b.WriteByte('\n')
		for x := 0; x < t.Width; x++ {
			if st.Placed && st.Pos.X == x && st.Pos.Y == y {
				fmt.Fprintf(&b, "| %c ", st.Facing.Glyph())
			} else {
				b.WriteString("|   ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	b.WriteByte('\n')

	if st.Placed {
		fmt.Fprintf(&b, "Robot: %d,%d,%s", st.Pos.X, st.Pos.Y, st.Facing)
	} else {
		b.WriteString("Robot not placed.")
	}
	return b.String()
}
