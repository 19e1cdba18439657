package surface

import "github.com/matzehuels/worksheets/pkg/bond"

// Call is one recorded drawing operation.
type Call struct {
	Shape Shape
	Slot  Slot
	Text  string
	Args  []float64
}

// Trace records drawing calls instead of producing output. Every index maps
// to the same Cell. It is used by tests and by dry runs.
type Trace struct {
	Cell    bond.Region
	Calls   []Call
	Indices []int // Region lookups in call order
	Cleared int   // number of ClearAids calls

	err error
}

// NewTrace returns a Trace whose regions are all cell.
func NewTrace(cell bond.Region) *Trace { return &Trace{Cell: cell} }

func (t *Trace) DrawCircle(x, y, r float64, st Style) {
	t.Calls = append(t.Calls, Call{Shape: ShapeCircle, Slot: st.Slot, Args: []float64{x, y, r}})
}

func (t *Trace) DrawLine(x1, y1, x2, y2 float64, st Style) {
	t.Calls = append(t.Calls, Call{Shape: ShapeLine, Slot: st.Slot, Args: []float64{x1, y1, x2, y2}})
}

func (t *Trace) DrawText(text string, x, y float64, st Style) {
	t.Calls = append(t.Calls, Call{Shape: ShapeText, Slot: st.Slot, Text: text, Args: []float64{x, y}})
}

func (t *Trace) ClearAids() { t.Cleared++ }

func (t *Trace) Region(index int) bond.Region {
	t.Indices = append(t.Indices, index)
	return t.Cell
}

// Fail makes Err report err, simulating a backend failure.
func (t *Trace) Fail(err error) { t.err = err }

func (t *Trace) Err() error { return t.err }

// Count returns how many calls drew shape into slot.
func (t *Trace) Count(shape Shape, slot Slot) int {
	n := 0
	for _, c := range t.Calls {
		if c.Shape == shape && c.Slot == slot {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn into slot, in call order.
func (t *Trace) Texts(slot Slot) []string {
	var out []string
	for _, c := range t.Calls {
		if c.Shape == ShapeText && c.Slot == slot {
			out = append(out, c.Text)
		}
	}
	return out
}

// Compile-time interface checks.
var (
	_ Surface = (*Scene)(nil)
	_ Surface = (*Document)(nil)
	_ Surface = (*Trace)(nil)
)
