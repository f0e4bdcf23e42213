package simulator

import (
	"bufio"
	"fmt"
	"io"

	"toyrobot/internal/log"
)

// Runner folds input lines over the robot state, writing one report
// line per REPORT command processed while placed. Lines that parse to
// no valid command are skipped without interrupting the run.
type Runner struct {
	table    Table
	reporter *Reporter
	visual   bool
	out      io.Writer
}

func NewRunner(table Table, reporter *Reporter, visual bool, out io.Writer) *Runner {
	return &Runner{table: table, reporter: reporter, visual: visual, out: out}
}

// Run consumes in line by line until EOF. The only error it can return
// comes from reading the input itself.
func (r *Runner) Run(in io.Reader) error {
	st := State{}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		cmd, ok := Parse(sc.Text())
		if !ok {
			log.Debugf("ignoring line: %q", sc.Text())
			continue
		}
		st = Apply(r.table, st, cmd)
		if !cmd.Report {
			continue
		}
		line, placed := r.reporter.Line(st)
		if !placed {
			log.Debugf("REPORT before PLACE, nothing to print")
			continue
		}
		fmt.Fprintln(r.out, line)
		if r.visual {
			fmt.Fprintln(r.out, Render(r.table, st))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
