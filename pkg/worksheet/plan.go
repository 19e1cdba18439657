package worksheet

import (
	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// Plan is a document laid out without drawing it.
type Plan struct {
	Problems []bond.Problem
	Pages    []int // problems per page
	Traces   []*surface.Trace
}

// PlanRun lays out cfg on a pageW x pageH page. It produces the same problems
// a freshly configured Session would generate for cfg.Seed, each rendered
// into a Trace over its page cell.
func PlanRun(cfg Config, pageW, pageH float64) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	if err := cfg.CheckPage(pageW, pageH); err != nil {
		return Plan{}, err
	}
	grid := cfg.Grid()

	c := grid.Capacity()
	problems := bond.NewSeededGenerator(cfg.Seed).Batch(cfg.Range, cfg.Kinds, cfg.Count)
	plan := Plan{
		Problems: problems,
		Pages:    surface.PageSizes(len(problems), c),
		Traces:   make([]*surface.Trace, 0, len(problems)),
	}
	for i, p := range problems {
		t := surface.NewTrace(grid.Inner(pageW, pageH, i%c))
		if err := RenderProblem(t, p, t.Region(i), cfg); err != nil {
			return Plan{}, err
		}
		plan.Traces = append(plan.Traces, t)
	}
	return plan, nil
}

// Calls returns the total number of drawing calls in the plan.
func (p Plan) Calls() int {
	n := 0
	for _, t := range p.Traces {
		n += len(t.Calls)
	}
	return n
}
