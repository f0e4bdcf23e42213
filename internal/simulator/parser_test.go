package simulator

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, cmd *Command)
	}{
		{"PLACE 0,0,NORTH", func(t *testing.T, cmd *Command) {
			if cmd.Place == nil || cmd.Place.X != 0 || cmd.Place.Y != 0 || cmd.Place.Facing != "NORTH" {
				t.Errorf("got %+v", cmd.Place)
			}
		}},
		{"place 4,2,west", func(t *testing.T, cmd *Command) {
			if cmd.Place == nil || cmd.Place.X != 4 || cmd.Place.Y != 2 {
				t.Errorf("got %+v", cmd.Place)
			}
			if _, ok := ParseDirection(cmd.Place.Facing); !ok {
				t.Errorf("unparseable facing %q", cmd.Place.Facing)
			}
		}},
		{"PLACE -1,2,NORTH", func(t *testing.T, cmd *Command) {
			if cmd.Place == nil || cmd.Place.X != -1 || cmd.Place.Y != 2 {
				t.Errorf("got %+v", cmd.Place)
			}
		}},
		{"  PLACE 1,3,SOUTH  ", func(t *testing.T, cmd *Command) {
			if cmd.Place == nil || cmd.Place.X != 1 || cmd.Place.Y != 3 {
				t.Errorf("got %+v", cmd.Place)
			}
		}},
		{"MOVE", func(t *testing.T, cmd *Command) {
			if !cmd.Move {
				t.Errorf("got %+v", cmd)
			}
		}},
		{"move", func(t *testing.T, cmd *Command) {
			if !cmd.Move {
				t.Errorf("got %+v", cmd)
			}
		}},
		{"LeFt", func(t *testing.T, cmd *Command) {
			if !cmd.Left {
				t.Errorf("got %+v", cmd)
			}
		}},
		{"RIGHT", func(t *testing.T, cmd *Command) {
			if !cmd.Right {
				t.Errorf("got %+v", cmd)
			}
		}},
		{"report", func(t *testing.T, cmd *Command) {
			if !cmd.Report {
				t.Errorf("got %+v", cmd)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) rejected", tt.input)
			}
			tt.check(t, cmd)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"JUMP",
		"PLACE",
		"PLACE 1",
		"PLACE 1,2",
		"PLACE 1,2,",
		"PLACE 1,2,NORTH,EXTRA",
		"PLACE 1,2,NORTH EXTRA",
		"PLACE one,2,NORTH",
		"PLACE 1,two,NORTH",
		"PLACE 1.5,2,NORTH",
		"PLACE 1,2,NORTHWEST",
		"PLACE 1,2,3",
		"PLACE 1 2 NORTH",
		"MOVE NORTH",
		"REPORT please",
		"LEFTY",
	}

	for _, input := range tests {
		if cmd, ok := Parse(input); ok {
			t.Errorf("Parse(%q) accepted as %+v, want rejection", input, cmd)
		}
	}
}
