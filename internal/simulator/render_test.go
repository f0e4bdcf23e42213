package simulator

import (
	"strings"
	"testing"
)

func TestRenderPlaced(t *testing.T) {
	st := State{Placed: true, Pos: Position{0, 0}, Facing: North}

	want := strings.Join([]string{
		"+---+---+---+---+---+",
		"|   |   |   |   |   |",
		"+---+---+---+---+---+",
		"|   |   |   |   |   |",
		"+---+---+---+---+---+",
		"|   |   |   |   |   |",
		"+---+---+---+---+---+",
		"|   |   |   |   |   |",
		"+---+---+---+---+---+",
		"| ^ |   |   |   |   |",
		"+---+---+---+---+---+",
		"Robot: 0,0,NORTH",
	}, "\n")

	if got := Render(NewTable(), st); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderGlyphFollowsFacing(t *testing.T) {
	st := State{Placed: true, Pos: Position{2, 2}, Facing: East}

	got := Render(NewTable(), st)
	if !strings.Contains(got, "| > |") {
		t.Errorf("render missing east glyph:\n%s", got)
	}
	if !strings.HasSuffix(got, "Robot: 2,2,EAST") {
		t.Errorf("render missing status line:\n%s", got)
	}
}

func TestRenderUnplaced(t *testing.T) {
	got := Render(NewTable(), State{})

	if strings.ContainsAny(got, "^>v<") {
		t.Errorf("unplaced render contains a robot glyph:\n%s", got)
	}
	if !strings.HasSuffix(got, "Robot not placed.") {
		t.Errorf("unplaced render missing status line:\n%s", got)
	}
}

func TestRenderSmallTable(t *testing.T) {
	st := State{Placed: true, Pos: Position{1, 0}, Facing: South}

	want := strings.Join([]string{
		"+---+---+",
		"|   | v |",
		"+---+---+",
		"Robot: 1,0,SOUTH",
	}, "\n")

	if got := Render(Table{Width: 2, Height: 1}, st); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}
