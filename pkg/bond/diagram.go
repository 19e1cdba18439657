package bond

// Offsets of the text baselines relative to the geometry.
const (
	// LabelBaseline drops a node label's baseline below the circle center so
	// the digits look vertically centered.
	LabelBaseline = 2.0
	// CaptionGap separates the bottom circle from the caption baseline.
	CaptionGap = 8.0
)

// Label is a piece of text anchored at its horizontal center and baseline.
type Label struct {
	Text string
	X, Y float64
}

// Diagram is a problem laid out in a region: geometry plus text.
type Diagram struct {
	Problem  Problem
	Region   Region
	Geometry Geometry

	LeftLabel   Label
	RightLabel  Label
	BottomLabel Label
	Caption     Label
}

// Compose lays out p in region.
func Compose(p Problem, region Region) Diagram {
	g := Layout(region)
	left, right, bottom := p.Labels()

	return Diagram{
		Problem:     p,
		Region:      region,
		Geometry:    g,
		LeftLabel:   labelAt(left, g.Left),
		RightLabel:  labelAt(right, g.Right),
		BottomLabel: labelAt(bottom, g.Bottom),
		Caption: Label{
			Text: p.Caption(),
			X:    region.CenterX(),
			Y:    g.Bottom.Y + g.Bottom.R + CaptionGap,
		},
	}
}

func labelAt(text string, n Node) Label {
	return Label{Text: text, X: n.X, Y: n.Y + LabelBaseline}
}
