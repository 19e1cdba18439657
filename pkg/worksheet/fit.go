package worksheet

import (
	"github.com/matzehuels/worksheets/pkg/aids"
	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
)

const layoutHint = "use the 2x2 layout or a larger page size"

// placement positions one diagram inside its region.
type placement struct {
	dots  aids.DotStyle
	shift float64 // added to the region's X before the diagram is laid out
}

// place fits cfg's diagrams into region. Drawing may run up to bleed past
// the region edges, which covers the cell padding on a page grid.
//
// The circles stay centered unless their dots would cross the right edge; then
// the diagram moves left just enough. If that is not enough the dot rows get
// narrower, down to a single column.
func (c Config) place(region bond.Region, bleed float64) (placement, error) {
	limit := region.Inset(-bleed)
	g := bond.Layout(region)
	b := g.Bounds()
	if !limit.Contains(b) {
		return placement{}, errors.New(errors.ErrCodeInvalidLayout,
			"a %.0fx%.0f mm cell is too small for a %.0fx%.0f mm number bond diagram",
			limit.Width, limit.Height, b.Width, b.Height).
			WithHint(layoutHint)
	}
	if !c.Aids.Dots {
		return placement{dots: aids.DefaultDotStyle}, nil
	}

	for style := aids.DefaultDotStyle; style.Columns >= 1; style.Columns-- {
		shift := min(0, limit.Right()-(b.Right()+style.Reach()))
		if b.X+shift < limit.X {
			continue
		}
		if g.Bottom.Y-g.Bottom.R+style.Depth(c.Range.Max) > limit.Bottom() {
			continue
		}
		return placement{dots: style, shift: shift}, nil
	}
	return placement{}, errors.New(errors.ErrCodeInvalidLayout,
		"counting dots do not fit beside a diagram in a %.0f mm wide cell", limit.Width).
		WithHint("turn off dots, or %s", layoutHint)
}

// CheckPage reports whether the configured grid and its diagrams fit on a
// pageW x pageH page. Every cell of a grid has the same size, so checking
// the first one is enough.
func (c Config) CheckPage(pageW, pageH float64) error {
	grid := c.Grid()
	if !grid.Validate(pageW, pageH) {
		return errors.New(errors.ErrCodeInvalidLayout,
			"a %dx%d grid does not fit on a %.0fx%.0f mm page", grid.Columns, grid.Rows, pageW, pageH).
			WithHint(layoutHint)
	}
	_, err := c.place(grid.Inner(pageW, pageH, 0), grid.Padding)
	return err
}
