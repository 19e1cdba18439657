package surface

import "github.com/matzehuels/worksheets/pkg/bond"

// PageGrid splits a page into equal cells. All lengths are page units.
type PageGrid struct {
	Columns, Rows int

	Margin        float64 // left and right page margin
	Gap           float64 // space between neighbouring cells
	Top           float64 // y of the first row, below the page header
	FooterReserve float64 // kept free at the bottom for the footer
	Padding       float64 // inner cell padding removed by Inner

	// Landscape lays the grid out on a sideways page.
	Landscape bool
}

// A4 page size in millimeters, the default document page.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// Page band defaults in millimeters.
const (
	GridMargin          = 12.0
	GridGap             = 8.0
	GridTop             = 35.0
	GridTopInstructions = 45.0
	GridFooterReserve   = 18.0
	GridPadding         = 8.0
)

// Grid2x2 is the four-problem print layout. Pages with instructions start
// lower to make room for them.
func Grid2x2(instructions bool) PageGrid { return newGrid(2, 2, instructions) }

// Grid3x2 is the six-problem print layout. Three diagrams side by side need
// the width of a landscape page.
func Grid3x2(instructions bool) PageGrid {
	g := newGrid(3, 2, instructions)
	g.Landscape = true
	return g
}

func newGrid(cols, rows int, instructions bool) PageGrid {
	top := GridTop
	if instructions {
		top = GridTopInstructions
	}
	return PageGrid{
		Columns:       cols,
		Rows:          rows,
		Margin:        GridMargin,
		Gap:           GridGap,
		Top:           top,
		FooterReserve: GridFooterReserve,
		Padding:       GridPadding,
	}
}

// Capacity returns the number of cells per page.
func (g PageGrid) Capacity() int { return g.Columns * g.Rows }

// CellSize returns the outer cell dimensions on a page of the given size.
func (g PageGrid) CellSize(pageW, pageH float64) (w, h float64) {
	w = (pageW - 2*g.Margin - float64(g.Columns-1)*g.Gap) / float64(g.Columns)
	h = (pageH - g.Top - g.FooterReserve - float64(g.Rows-1)*g.Gap) / float64(g.Rows)
	return w, h
}

// Cell returns the outer rectangle of slot (0 ≤ slot < Capacity), filled
// row by row.
func (g PageGrid) Cell(pageW, pageH float64, slot int) bond.Region {
	w, h := g.CellSize(pageW, pageH)
	col, row := slot%g.Columns, slot/g.Columns
	return bond.Region{
		X:      g.Margin + float64(col)*(w+g.Gap),
		Y:      g.Top + float64(row)*(h+g.Gap),
		Width:  w,
		Height: h,
	}
}

// Inner returns the drawable part of slot with the padding removed.
func (g PageGrid) Inner(pageW, pageH float64, slot int) bond.Region {
	return g.Cell(pageW, pageH, slot).Inset(g.Padding)
}

// Validate reports whether every cell has a positive drawable area on a page
// of the given size.
func (g PageGrid) Validate(pageW, pageH float64) bool {
	if g.Columns < 1 || g.Rows < 1 {
		return false
	}
	w, h := g.CellSize(pageW, pageH)
	return w > 2*g.Padding && h > 2*g.Padding
}

// Pages returns how many pages n problems need at capacity c.
func Pages(n, c int) int {
	if n <= 0 || c <= 0 {
		return 0
	}
	return (n + c - 1) / c
}

// PageSizes returns the number of problems placed on each page. Every page
// is full except possibly the last.
func PageSizes(n, c int) []int {
	pages := Pages(n, c)
	sizes := make([]int, pages)
	for i := range sizes {
		sizes[i] = min(c, n-i*c)
	}
	return sizes
}
