package surface

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneOverwritesNamedSlots(t *testing.T) {
	s := NewPreviewScene()
	s.DrawText("2", 10, 10, Style{Slot: SlotLeftLabel})
	s.DrawText("3", 20, 10, Style{Slot: SlotRightLabel})
	s.DrawText("2 + 3 = ?", 45, 50, Style{Slot: SlotCaption})

	s.DrawText("7", 11, 12, Style{Slot: SlotLeftLabel})
	s.DrawText("4 + 3 = ?", 45, 50, Style{Slot: SlotCaption})

	els := s.Elements()
	require.Len(t, els, 3)
	assert.Equal(t, "7", els[0].Text, "overwritten slot keeps its position")
	assert.Equal(t, "3", els[1].Text)
	assert.Equal(t, "4 + 3 = ?", els[2].Text)

	e, ok := s.Slot(SlotLeftLabel)
	require.True(t, ok)
	assert.Equal(t, 11.0, e.X)
	_, ok = s.Slot(SlotBottomLabel)
	assert.False(t, ok)
}

func TestSceneClearAids(t *testing.T) {
	s := NewPreviewScene()
	s.DrawCircle(10, 10, 5, Style{Slot: SlotLeftNode})
	for i := 0; i < 5; i++ {
		s.DrawCircle(float64(i), 0, 1, Style{Slot: SlotAid, Filled: true})
	}
	require.Len(t, s.Aids(), 5)

	s.ClearAids()
	assert.Empty(t, s.Aids())
	assert.Len(t, s.Elements(), 1, "diagram survives ClearAids")

	s.Reset()
	assert.Empty(t, s.Elements())
}

func TestSceneRegionIsWholeCanvas(t *testing.T) {
	s := NewScene(90, 70)
	for _, i := range []int{0, 1, 17} {
		r := s.Region(i)
		assert.Equal(t, 90.0, r.Width)
		assert.Equal(t, 70.0, r.Height)
		assert.Zero(t, r.X)
	}
	assert.NoError(t, s.Err())
}

func sampleScene() *Scene {
	s := NewScene(100, 80)
	s.DrawCircle(20, 20, 9, Style{Slot: SlotLeftNode})
	s.DrawLine(25, 27, 45, 40, Style{Slot: SlotLeftLink})
	s.DrawText("<5>", 20, 22, Style{Slot: SlotLeftLabel})
	s.DrawLine(10, 70, 90, 70, Style{Slot: SlotAid, Dash: []float64{1, 1}})
	s.DrawCircle(32, 13, 1.4, Style{Slot: SlotAid, Filled: true, Fill: 51, Stroke: 51})
	return s
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleScene().WriteSVG(&buf, WithScale(2)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="200"`)
	assert.Contains(t, out, `height="160"`)
	assert.Contains(t, out, `id="left-node"`)
	assert.Contains(t, out, `id="left-link"`)
	assert.Contains(t, out, `class="visual-aids"`)
	assert.Contains(t, out, "&lt;5&gt;", "text is escaped")
	assert.Contains(t, out, "stroke-dasharray:2.00,2.00")
	assert.Contains(t, out, "</svg>")

	aidsAt := strings.Index(out, `class="visual-aids"`)
	assert.Greater(t, aidsAt, strings.Index(out, `id="left-label"`), "aids group follows the diagram")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleScene().WritePNG(&buf, WithScale(3)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "background is white")
}

func TestWithScaleIgnoresNonPositive(t *testing.T) {
	cfg := newWriteConfig([]WriteOption{WithScale(0), WithScale(-2)})
	assert.Equal(t, DefaultScale, cfg.scale)
}
