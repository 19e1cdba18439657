package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
)

func TestTraceRecords(t *testing.T) {
	cell := bond.Region{X: 1, Y: 2, Width: 30, Height: 40}
	tr := NewTrace(cell)

	assert.Equal(t, cell, tr.Region(0))
	assert.Equal(t, cell, tr.Region(5))
	assert.Equal(t, []int{0, 5}, tr.Indices)

	tr.DrawCircle(1, 2, 3, Style{Slot: SlotLeftNode})
	tr.DrawCircle(1, 2, 3, Style{Slot: SlotAid})
	tr.DrawText("?", 1, 2, Style{Slot: SlotBottomLabel})
	tr.DrawLine(0, 0, 1, 1, Style{Slot: SlotLeftLink})
	tr.ClearAids()

	assert.Equal(t, 1, tr.Count(ShapeCircle, SlotLeftNode))
	assert.Equal(t, 1, tr.Count(ShapeCircle, SlotAid))
	assert.Equal(t, 1, tr.Count(ShapeLine, SlotLeftLink))
	assert.Equal(t, []string{"?"}, tr.Texts(SlotBottomLabel))
	assert.Equal(t, 1, tr.Cleared)
	assert.NoError(t, tr.Err())

	tr.Fail(errors.New(errors.ErrCodeRender, "boom"))
	assert.True(t, errors.Is(tr.Err(), errors.ErrCodeRender))
}
