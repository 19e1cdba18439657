package aids

import (
	"math"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
)

// LineStyle sizes a number line, in page units.
type LineStyle struct {
	Margin          float64 // horizontal inset from the region edges
	MinWidth        float64 // floor for the computed width, capped by the region width
	FixedWidth      float64 // overrides the computed width when > 0
	BottomOffset    float64 // distance from the region bottom to the line
	TickHeight      float64
	MinLabelSpacing float64 // labels closer than this are thinned out
}

// DefaultLineStyle is tuned for worksheet cells in millimeters.
var DefaultLineStyle = LineStyle{
	Margin:          8,
	MinWidth:        80,
	BottomOffset:    10,
	TickHeight:      2,
	MinLabelSpacing: 8,
}

// Label offsets from the line. Even values sit below, odd values above, so
// neighbouring labels never collide.
const (
	labelBelow = 5.0
	labelAbove = 3.0
)

// Tick is one integer mark on the number line.
type Tick struct {
	Value  int
	X      float64
	Label  bool    // whether Value is printed
	LabelY float64 // baseline of the printed value
}

// NumberLine is a horizontal line with one tick per integer of a range.
type NumberLine struct {
	X1, X2     float64
	Y          float64
	TickHeight float64
	Spacing    float64 // distance between adjacent ticks
	LabelStep  int     // every LabelStep-th tick is labeled
	Ticks      []Tick
}

// LayoutNumberLine lays out a line covering r, centered in region and
// style.BottomOffset above its bottom edge.
func LayoutNumberLine(r bond.Range, region bond.Region, style LineStyle) (NumberLine, error) {
	span := r.Span()
	if span <= 0 {
		return NumberLine{}, errors.New(errors.ErrCodeInvalidRange,
			"number line needs at least two values, got %d..%d", r.Min, r.Max)
	}

	width := min(region.Width, max(style.MinWidth, region.Width-2*style.Margin))
	if style.FixedWidth > 0 {
		width = style.FixedWidth
	}
	if width <= 0 {
		return NumberLine{}, errors.New(errors.ErrCodeInvalidLayout,
			"no room for a number line in a %.1f wide region", region.Width)
	}
	x1 := region.CenterX() - width/2
	y := region.Bottom() - style.BottomOffset
	spacing := width / float64(span)

	step := 1
	if style.MinLabelSpacing > 0 {
		step = max(1, int(math.Ceil(style.MinLabelSpacing/spacing)))
	}

	nl := NumberLine{
		X1:         x1,
		X2:         x1 + width,
		Y:          y,
		TickHeight: style.TickHeight,
		Spacing:    spacing,
		LabelStep:  step,
		Ticks:      make([]Tick, 0, span+1),
	}
	for i := 0; i <= span; i++ {
		v := r.Min + i
		t := Tick{Value: v, X: x1 + float64(i)*spacing, Label: i%step == 0}
		if v%2 == 0 {
			t.LabelY = y + style.TickHeight + labelBelow
		} else {
			t.LabelY = y - style.TickHeight - labelAbove
		}
		nl.Ticks = append(nl.Ticks, t)
	}
	return nl, nil
}

// Labeled returns the ticks that carry a printed value.
func (nl NumberLine) Labeled() []Tick {
	var out []Tick
	for _, t := range nl.Ticks {
		if t.Label {
			out = append(out, t)
		}
	}
	return out
}
