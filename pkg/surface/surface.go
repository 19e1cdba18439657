package surface

import "github.com/matzehuels/worksheets/pkg/bond"

// Surface is a drawing target. Coordinates are in the surface's own units
// (millimeters for both the preview canvas and the document page).
//
// Drawing methods do not return errors. A surface that fails keeps the first
// error and reports it from Err; later calls become no-ops.
type Surface interface {
	DrawCircle(x, y, r float64, st Style)
	DrawLine(x1, y1, x2, y2 float64, st Style)
	// DrawText draws text with its baseline at y, aligned horizontally on x
	// according to st.Align.
	DrawText(text string, x, y float64, st Style)
	// ClearAids removes every element drawn in SlotAid, where the target
	// supports removal.
	ClearAids()
	// Region returns the drawable area for the index-th problem.
	Region(index int) bond.Region
	Err() error
}

// Slot names the diagram element a drawing call produces.
type Slot string

// Named slots of a number bond diagram.
const (
	SlotNone        Slot = ""
	SlotLeftNode    Slot = "left-node"
	SlotRightNode   Slot = "right-node"
	SlotBottomNode  Slot = "bottom-node"
	SlotLeftLink    Slot = "left-link"
	SlotRightLink   Slot = "right-link"
	SlotLeftLabel   Slot = "left-label"
	SlotRightLabel  Slot = "right-label"
	SlotBottomLabel Slot = "bottom-label"
	SlotCaption     Slot = "caption"
	SlotAid         Slot = "aid"
)

// Align is the horizontal text anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Style describes how one element is drawn. The zero value is a thin black
// stroke with no fill and 10pt text.
type Style struct {
	Slot Slot

	Stroke    uint8 // gray level, 0 is black
	Fill      uint8
	Filled    bool
	LineWidth float64 // 0 selects DefaultLineWidth
	Dash      []float64

	FontSize float64 // points, 0 selects DefaultFontSize
	Bold     bool
	Align    Align
}

// Defaults applied when a Style leaves a field zero.
const (
	DefaultLineWidth = 0.2  // mm
	DefaultFontSize  = 10.0 // pt
)

// ptToMM converts a font size in points to millimeters.
const ptToMM = 25.4 / 72

func (st Style) lineWidth() float64 {
	if st.LineWidth > 0 {
		return st.LineWidth
	}
	return DefaultLineWidth
}

func (st Style) fontSize() float64 {
	if st.FontSize > 0 {
		return st.FontSize
	}
	return DefaultFontSize
}

// alignOffset returns how far left of x text of the given width starts.
func alignOffset(a Align, width float64) float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return width
	default:
		return width / 2
	}
}
