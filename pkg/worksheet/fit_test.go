package worksheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// circleBounds returns the box around every circle drawn into tr.
func circleBounds(tr *surface.Trace) bond.Region {
	var minX, minY, maxX, maxY float64
	first := true
	for _, c := range tr.Calls {
		if c.Shape != surface.ShapeCircle {
			continue
		}
		x, y, r := c.Args[0], c.Args[1], c.Args[2]
		if first {
			minX, minY, maxX, maxY = x-r, y-r, x+r, y+r
			first = false
			continue
		}
		minX, minY = min(minX, x-r), min(minY, y-r)
		maxX, maxY = max(maxX, x+r), max(maxY, y+r)
	}
	return bond.Region{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func TestDiagramsStayInsideTheirCells(t *testing.T) {
	// The largest dot groups each kind can draw at Max 20.
	worst := []bond.Problem{
		{Whole: 20, Part1: 10, Part2: 10, Kind: bond.ShowAll},
		{Whole: 20, Part1: 20, Part2: 0, Kind: bond.FindPart},
		{Whole: 20, Part1: 0, Part2: 20, Kind: bond.FindWhole},
	}
	pages := map[string][]surface.DocumentOption{
		"A4":               nil,
		"A4 landscape":     {surface.WithLandscape()},
		"Letter":           {surface.WithPageSize("Letter")},
		"Letter landscape": {surface.WithPageSize("Letter"), surface.WithLandscape()},
	}

	for _, layout := range []string{Layout2x2, Layout3x2} {
		for _, instructions := range []string{"", "Fill in the missing number."} {
			for _, dots := range []bool{false, true} {
				for page, opts := range pages {
					name := fmt.Sprintf("%s/%s/instructions=%t/dots=%t", layout, page, instructions != "", dots)
					t.Run(name, func(t *testing.T) {
						cfg := Config{
							Title:        "Fit",
							Instructions: instructions,
							Range:        bond.Range{Min: 0, Max: 20},
							Kinds:        bond.Kinds,
							Aids:         VisualAids{Dots: dots, NumberLine: true},
							Layout:       layout,
							Count:        1,
						}
						grid := cfg.Grid()
						w, h := surface.NewDocument(grid, cfg.Header(), opts...).PageSize()
						require.NoError(t, cfg.CheckPage(w, h))

						for slot := 0; slot < grid.Capacity(); slot++ {
							cell := grid.Cell(w, h, slot).Inset(-1e-9)
							for _, p := range worst {
								tr := surface.NewTrace(grid.Inner(w, h, slot))
								require.NoError(t, RenderProblem(tr, p, tr.Cell, cfg))
								b := circleBounds(tr)
								assert.True(t, cell.Contains(b), "slot %d %v: drawing %+v leaves cell %+v", slot, p.Kind, b, cell)
							}
						}
					})
				}
			}
		}
	}
}

func TestPlaceKeepsDiagramCenteredWithRoom(t *testing.T) {
	region := bond.Region{Width: 160, Height: 100}
	cfg := Config{Range: bond.Range{Max: 20}, Aids: VisualAids{Dots: true}}

	pl, err := cfg.place(region, 0)
	require.NoError(t, err)
	assert.Zero(t, pl.shift)
	assert.Equal(t, 5, pl.dots.Columns)
}

func TestPlaceShiftsThenNarrowsDots(t *testing.T) {
	cfg := Config{Range: bond.Range{Max: 20}, Aids: VisualAids{Dots: true}}

	// 2x2 portrait A4 inner cell: the full five-column rows fit once the
	// diagram moves left into the padding.
	pl, err := cfg.place(bond.Region{X: 20, Y: 43, Width: 73, Height: 102}, 8)
	require.NoError(t, err)
	assert.Equal(t, 5, pl.dots.Columns)
	assert.Negative(t, pl.shift)

	// 3x2 landscape A4 inner cell: five columns are too wide.
	pl, err = cfg.place(bond.Region{X: 20, Y: 43, Width: 69.67, Height: 58.5}, 8)
	require.NoError(t, err)
	assert.Less(t, pl.dots.Columns, 5)
	assert.Positive(t, pl.dots.Columns)
}

func TestCheckPageRejectsNarrowCells(t *testing.T) {
	cfg := Config{Range: bond.Range{Max: 10}, Kinds: bond.Kinds, Layout: Layout3x2, Count: 6}

	// Three columns across a portrait page leave 57 mm per cell.
	err := cfg.CheckPage(surface.A4Width, surface.A4Height)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout))
	assert.NotEmpty(t, errors.Hint(err))

	assert.NoError(t, cfg.CheckPage(surface.A4Height, surface.A4Width))
	assert.True(t, errors.Is(cfg.CheckPage(40, 40), errors.ErrCodeInvalidLayout))
}

func TestRenderProblemRejectsNarrowRegion(t *testing.T) {
	region := bond.Region{Width: 40, Height: 80}
	tr := surface.NewTrace(region)
	err := RenderProblem(tr, bond.Problem{Whole: 3, Part1: 1, Part2: 2}, region, Config{Range: bond.Range{Max: 10}})

	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout))
	assert.Empty(t, tr.Calls, "nothing is drawn for a diagram that does not fit")
}
