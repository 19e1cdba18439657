package aids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/worksheets/pkg/bond"
)

func TestDotArray(t *testing.T) {
	node := bond.Node{X: 20, Y: 30, R: 9}
	style := DefaultDotStyle

	dots := DotArray(7, node, style)
	require.Len(t, dots, 7)

	ax := node.X + node.R + style.Padding
	ay := node.Y - node.R + style.Size

	assert.InDelta(t, ax, dots[0].X, 1e-9)
	assert.InDelta(t, ay, dots[0].Y, 1e-9)
	assert.InDelta(t, ax+4*style.Spacing, dots[4].X, 1e-9)
	assert.InDelta(t, ay, dots[4].Y, 1e-9)
	// Sixth dot wraps to the second row.
	assert.InDelta(t, ax, dots[5].X, 1e-9)
	assert.InDelta(t, ay+style.Spacing, dots[5].Y, 1e-9)
	assert.InDelta(t, ax+style.Spacing, dots[6].X, 1e-9)

	for _, d := range dots {
		assert.Equal(t, style.Size, d.R)
		assert.Greater(t, d.X-d.R, node.X+node.R, "dots stay clear of the circle")
	}
}

func TestDotArrayEmpty(t *testing.T) {
	node := bond.Node{X: 0, Y: 0, R: 7}
	assert.Nil(t, DotArray(0, node, DefaultDotStyle))
	assert.Nil(t, DotArray(-3, node, DefaultDotStyle))
}

func TestDotArrayZeroColumns(t *testing.T) {
	dots := DotArray(3, bond.Node{R: 7}, DotStyle{Size: 1, Spacing: 2})
	require.Len(t, dots, 3)
	assert.InDelta(t, dots[0].X, dots[2].X, 1e-9, "zero columns degrades to one column")
}

func TestDotGroups(t *testing.T) {
	g := bond.Layout(bond.Region{Width: 100, Height: 80})

	tests := []struct {
		name  string
		p     bond.Problem
		total int
	}{
		{"whole", bond.Problem{Whole: 7, Part1: 3, Part2: 4, Kind: bond.FindWhole}, 7},
		{"part", bond.Problem{Whole: 7, Part1: 3, Part2: 4, Kind: bond.FindPart}, 10},
		{"mixed", bond.Problem{Whole: 7, Part1: 3, Part2: 4, Kind: bond.ShowAll}, 14},
		{"zero", bond.Problem{Whole: 0, Part1: 0, Part2: 0, Kind: bond.ShowAll}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, DotGroups(tt.p, g, DefaultDotStyle), tt.total)
		})
	}
}

func TestDotGroupsAnchors(t *testing.T) {
	g := bond.Layout(bond.Region{Width: 100, Height: 80})
	p := bond.Problem{Whole: 2, Part1: 1, Part2: 1, Kind: bond.ShowAll}
	dots := DotGroups(p, g, DefaultDotStyle)
	require.Len(t, dots, 4)

	assert.InDelta(t, g.Left.X+g.Left.R+DefaultDotStyle.Padding, dots[0].X, 1e-9)
	assert.InDelta(t, g.Right.X+g.Right.R+DefaultDotStyle.Padding, dots[1].X, 1e-9)
	assert.InDelta(t, g.Bottom.Y-g.Bottom.R+DefaultDotStyle.Size, dots[2].Y, 1e-9)
}

func TestDotStyleExtents(t *testing.T) {
	node := bond.Node{X: 50, Y: 40, R: 7}

	for _, cols := range []int{1, 3, 5} {
		style := DefaultDotStyle
		style.Columns = cols
		for _, count := range []int{1, 5, 13, 20} {
			dots := DotArray(count, node, style)
			right, bottom := 0.0, 0.0
			for _, d := range dots {
				right = max(right, d.X+d.R)
				bottom = max(bottom, d.Y+d.R)
			}
			if count >= cols {
				assert.InDelta(t, node.X+node.R+style.Reach(), right, 1e-9, "cols=%d count=%d", cols, count)
			}
			assert.InDelta(t, node.Y-node.R+style.Depth(count), bottom, 1e-9, "cols=%d count=%d", cols, count)
		}
	}
	assert.Zero(t, DefaultDotStyle.Depth(0))
}
