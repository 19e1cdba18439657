package aids

import "github.com/matzehuels/worksheets/pkg/bond"

// DotStyle controls the size and packing of counting dots, in page units.
type DotStyle struct {
	Size    float64 // dot radius
	Spacing float64 // center-to-center distance
	Padding float64 // gap between the circle edge and the first column
	Columns int     // dots per row
}

// DefaultDotStyle fits ten dots in two rows beside a minimum-size circle.
var DefaultDotStyle = DotStyle{Size: 1.4, Spacing: 3.6, Padding: 2, Columns: 5}

// Reach returns how far a full row of dots extends past the right edge of
// its circle.
func (s DotStyle) Reach() float64 {
	return s.Padding + float64(max(s.Columns, 1)-1)*s.Spacing + s.Size
}

// Depth returns the height of count dots measured from the top of their
// circle.
func (s DotStyle) Depth(count int) float64 {
	if count <= 0 {
		return 0
	}
	cols := max(s.Columns, 1)
	rows := (count + cols - 1) / cols
	return float64(rows-1)*s.Spacing + 2*s.Size
}

// Dot is one filled counting dot.
type Dot struct {
	X, Y float64
	R    float64
}

// DotArray places count dots in row-major order to the right of anchor, with
// the first row aligned to the top of the circle.
func DotArray(count int, anchor bond.Node, style DotStyle) []Dot {
	if count <= 0 {
		return nil
	}
	cols := max(style.Columns, 1)
	ax := anchor.X + anchor.R + style.Padding
	ay := anchor.Y - anchor.R + style.Size

	dots := make([]Dot, count)
	for i := range dots {
		dots[i] = Dot{
			X: ax + float64(i%cols)*style.Spacing,
			Y: ay + float64(i/cols)*style.Spacing,
			R: style.Size,
		}
	}
	return dots
}

// DotGroups returns the dots for every circle of p's diagram. The counts
// mirror the numbers printed in the circles, so a hidden value gets none.
func DotGroups(p bond.Problem, g bond.Geometry, style DotStyle) []Dot {
	left, right, bottom := p.DotCounts()

	dots := DotArray(left, g.Left, style)
	dots = append(dots, DotArray(right, g.Right, style)...)
	dots = append(dots, DotArray(bottom, g.Bottom, style)...)
	return dots
}
