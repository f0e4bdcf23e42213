package simulator

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Command is one parsed input line. Exactly one branch is set.
type Command struct {
	Place  *Place `parser:"'PLACE' @@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
}

// Place holds the PLACE arguments: two integer coordinates and a
// direction name, comma-separated.
type Place struct {
	X      int    `parser:"@('-'? Int)"`
	Y      int    `parser:"',' @('-'? Int)"`
	Facing string `parser:"',' @Ident"`
}

var commandParser = participle.MustBuild[Command](
	participle.CaseInsensitive("Ident"),
)

// Parse parses a single input line into a command. ok is false for
// blank lines, unrecognized keywords, malformed PLACE arguments, and
// unknown direction names; callers treat such lines as no-ops.
func Parse(line string) (*Command, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	cmd, err := commandParser.ParseString("", line)
	if err != nil {
		return nil, false
	}
	if cmd.Place != nil {
		if _, ok := ParseDirection(cmd.Place.Facing); !ok {
			return nil, false
		}
	}
	return cmd, true
}
