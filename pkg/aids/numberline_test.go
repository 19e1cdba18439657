package aids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
)

func TestLayoutNumberLineBasics(t *testing.T) {
	region := bond.Region{X: 10, Y: 20, Width: 116, Height: 90}
	nl, err := LayoutNumberLine(bond.Range{Min: 0, Max: 10}, region, DefaultLineStyle)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, nl.X2-nl.X1, 1e-9)
	assert.InDelta(t, 18.0, nl.X1, 1e-9)
	assert.InDelta(t, 100.0, nl.Y, 1e-9)
	assert.InDelta(t, 10.0, nl.Spacing, 1e-9)
	assert.Equal(t, 1, nl.LabelStep)
	require.Len(t, nl.Ticks, 11)

	for i, tk := range nl.Ticks {
		assert.Equal(t, i, tk.Value)
		assert.InDelta(t, nl.X1+float64(i)*10, tk.X, 1e-9)
		assert.True(t, tk.Label)
		if tk.Value%2 == 0 {
			assert.InDelta(t, nl.Y+2+5, tk.LabelY, 1e-9, "even labels below")
		} else {
			assert.InDelta(t, nl.Y-2-3, tk.LabelY, 1e-9, "odd labels above")
		}
	}
	assert.InDelta(t, nl.X2, nl.Ticks[10].X, 1e-9)
}

func TestLayoutNumberLineTickCount(t *testing.T) {
	region := bond.Region{Width: 90, Height: 60}
	for lo := 0; lo <= 19; lo++ {
		for hi := lo + 1; hi <= 20; hi++ {
			nl, err := LayoutNumberLine(bond.Range{Min: lo, Max: hi}, region, DefaultLineStyle)
			require.NoError(t, err)
			require.Len(t, nl.Ticks, hi-lo+1)
			assert.Equal(t, lo, nl.Ticks[0].Value)
			assert.Equal(t, hi, nl.Ticks[len(nl.Ticks)-1].Value)
			assert.True(t, nl.Ticks[0].Label, "first tick is always labeled")
		}
	}
}

func TestLabelStepMonotonic(t *testing.T) {
	r := bond.Range{Min: 0, Max: 20}
	prev := 1 << 30
	for w := 20.0; w <= 400; w += 5 {
		style := DefaultLineStyle
		style.FixedWidth = w
		nl, err := LayoutNumberLine(r, bond.Region{Width: 500, Height: 60}, style)
		require.NoError(t, err)
		assert.LessOrEqual(t, nl.LabelStep, prev, "wider lines never thin labels more")
		prev = nl.LabelStep

		labeled := nl.Labeled()
		for i := 1; i < len(labeled); i++ {
			assert.GreaterOrEqual(t, labeled[i].X-labeled[i-1].X, style.MinLabelSpacing-1e-9)
		}
	}
}

func TestLabelThinning(t *testing.T) {
	style := DefaultLineStyle
	style.FixedWidth = 80
	nl, err := LayoutNumberLine(bond.Range{Min: 0, Max: 20}, bond.Region{Width: 200, Height: 60}, style)
	require.NoError(t, err)

	// 80/20 = 4 per tick, so every second tick is labeled.
	assert.InDelta(t, 4.0, nl.Spacing, 1e-9)
	assert.Equal(t, 2, nl.LabelStep)
	assert.Len(t, nl.Labeled(), 11)
	assert.False(t, nl.Ticks[1].Label)
}

func TestLayoutNumberLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		fixed float64
		want  float64
	}{
		{"wide region uses margins", 150, 0, 134},
		{"min width applies", 85, 0, 80},
		{"capped by region", 60, 0, 60},
		{"fixed width wins", 150, 70, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultLineStyle
			style.FixedWidth = tt.fixed
			region := bond.Region{X: 5, Width: tt.width, Height: 50}
			nl, err := LayoutNumberLine(bond.Range{Min: 0, Max: 10}, region, style)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, nl.X2-nl.X1, 1e-9)
			assert.InDelta(t, region.CenterX(), (nl.X1+nl.X2)/2, 1e-9)
		})
	}
}

func TestLayoutNumberLineRejectsEmptySpan(t *testing.T) {
	_, err := LayoutNumberLine(bond.Range{Min: 4, Max: 4}, bond.Region{Width: 100, Height: 50}, DefaultLineStyle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange))

	_, err = LayoutNumberLine(bond.Range{Min: 0, Max: 4}, bond.Region{}, DefaultLineStyle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout))
}
