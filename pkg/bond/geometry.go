package bond

import "math"

// Scaling factors and clamps for the diagram. Every dimension is proportional
// to the region and clamped so the circles stay legible in tiny cells and do
// not balloon on a full-page preview.
const (
	radiusFactor = 0.09
	radiusMin    = 7.0
	radiusMax    = 12.0

	topFactor = 0.2
	topMin    = 8.0
	topMax    = 16.0

	dropFactor = 0.22
	dropMin    = 16.0
	dropMax    = 28.0

	spreadFactor = 0.33
	spreadMin    = 28.0
	spreadMax    = 48.0
)

// Node is a circle of the diagram.
type Node struct {
	X, Y float64
	R    float64
}

// Segment is a straight connector line.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 { return math.Hypot(s.X2-s.X1, s.Y2-s.Y1) }

// Geometry holds the three circles and the two connectors of one diagram.
type Geometry struct {
	Left, Right, Bottom Node
	LeftLink, RightLink Segment
}

// Layout computes the diagram for region.
func Layout(region Region) Geometry {
	r := clamp(region.Width*radiusFactor, radiusMin, radiusMax)
	topY := region.Y + clamp(region.Height*topFactor, topMin, topMax)
	bottomY := topY + clamp(region.Height*dropFactor, dropMin, dropMax)
	dx := clamp(region.Width*spreadFactor, spreadMin, spreadMax)
	cx := region.CenterX()

	g := Geometry{
		Left:   Node{X: cx - dx, Y: topY, R: r},
		Right:  Node{X: cx + dx, Y: topY, R: r},
		Bottom: Node{X: cx, Y: bottomY, R: r},
	}
	g.LeftLink = Connect(g.Left, g.Bottom)
	g.RightLink = Connect(g.Right, g.Bottom)
	return g
}

// Connect returns the segment from the boundary of a to the boundary of b
// along the line joining their centers.
//
// Coincident centers yield a zero-length segment at a's center. Overlapping
// circles (see Overlap) yield a zero-length segment midway between the two
// boundary points, so a connector is never drawn backwards.
func Connect(a, b Node) Segment {
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return Segment{X1: a.X, Y1: a.Y, X2: a.X, Y2: a.Y}
	}
	ux, uy := dx/dist, dy/dist

	s := Segment{
		X1: a.X + ux*a.R, Y1: a.Y + uy*a.R,
		X2: b.X - ux*b.R, Y2: b.Y - uy*b.R,
	}
	if dist < a.R+b.R {
		mx, my := (s.X1+s.X2)/2, (s.Y1+s.Y2)/2
		return Segment{X1: mx, Y1: my, X2: mx, Y2: my}
	}
	return s
}

// Overlap reports whether the two circles intersect.
func Overlap(a, b Node) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.R+b.R
}

// Bounds returns the smallest region enclosing the three circles.
func (g Geometry) Bounds() Region {
	minX := min(g.Left.X-g.Left.R, g.Bottom.X-g.Bottom.R)
	maxX := max(g.Right.X+g.Right.R, g.Bottom.X+g.Bottom.R)
	minY := min(g.Left.Y-g.Left.R, g.Right.Y-g.Right.R)
	maxY := g.Bottom.Y + g.Bottom.R
	return Region{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
