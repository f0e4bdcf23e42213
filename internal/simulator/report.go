package simulator

import (
	"strconv"

	"github.com/valyala/fasttemplate"
)

// DefaultReportTemplate produces the canonical "X,Y,F" report line.
const DefaultReportTemplate = "{{x}},{{y}},{{facing}}"

// Reporter formats report lines from a template with {{x}}, {{y}} and
// {{facing}} placeholders.
type Reporter struct {
	tmpl *fasttemplate.Template
}

func NewReporter(template string) (*Reporter, error) {
	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return nil, err
	}
	return &Reporter{tmpl: t}, nil
}

// Line renders the report line for st. ok is false while unplaced: an
// unplaced robot reports nothing.
func (r *Reporter) Line(st State) (string, bool) {
	if !st.Placed {
		return "", false
	}
	return r.tmpl.ExecuteString(map[string]interface{}{
		"x":      strconv.Itoa(st.Pos.X),
		"y":      strconv.Itoa(st.Pos.Y),
		"facing": st.Facing.String(),
	}), true
}
