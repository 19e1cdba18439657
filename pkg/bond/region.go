package bond

// Region is a rectangular drawing area in page or screen units.
// Y grows downward, as on both the PDF page and the SVG canvas.
type Region struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Region) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Region) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Region) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Region) CenterY() float64 { return r.Y + r.Height/2 }

// Inset shrinks r by pad on every side. Width and height never go negative.
func (r Region) Inset(pad float64) Region {
	return Region{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  max(0, r.Width-2*pad),
		Height: max(0, r.Height-2*pad),
	}
}

// Contains reports whether o lies entirely inside r (edges may touch).
func (r Region) Contains(o Region) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and o share any interior area.
func (r Region) Overlaps(o Region) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
