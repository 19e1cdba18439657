package surface

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/worksheets/pkg/errors"
)

func newTestDocument(grid PageGrid, h Header) *Document {
	return NewDocument(grid, h, WithoutCompression(), WithCreationDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestDocumentPaginates(t *testing.T) {
	doc := newTestDocument(Grid2x2(false), Header{Title: "Number Bonds", Footer: "footer text"})
	w, h := doc.PageSize()
	assert.InDelta(t, a4W, w, 0.01)
	assert.InDelta(t, a4H, h, 0.01)

	first := doc.Region(0)
	assert.Equal(t, 1, doc.PageCount())
	doc.Region(3)
	assert.Equal(t, 1, doc.PageCount())
	fifth := doc.Region(4)
	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, first, fifth, "slot 0 of page 2 matches slot 0 of page 1")
	doc.Region(9)
	assert.Equal(t, 3, doc.PageCount())

	assert.Equal(t, Grid2x2(false).Inner(w, h, 1), doc.Region(5))
}

func TestDocumentOutput(t *testing.T) {
	doc := newTestDocument(Grid2x2(true), Header{Title: "Bonds", Instructions: "Fill in the circles", Footer: "made here"})
	r := doc.Region(0)
	doc.DrawCircle(r.X+10, r.Y+10, 7, Style{})
	doc.DrawLine(r.X, r.Y, r.X+5, r.Y+5, Style{Dash: []float64{1, 1}})
	doc.DrawText("2 + 3 = ?", r.CenterX(), r.Y+30, Style{})
	doc.DrawCircle(r.X+30, r.Y+10, 1.4, Style{Slot: SlotAid, Filled: true, Fill: 51, Stroke: 51})
	doc.ClearAids()
	require.NoError(t, doc.Err())

	var buf bytes.Buffer
	require.NoError(t, doc.Close(&buf))
	out := buf.Bytes()

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "(2 + 3 = ?) Tj")
	assert.Contains(t, string(out), "(Bonds) Tj")
	assert.Contains(t, string(out), "(Fill in the circles) Tj")
	assert.Contains(t, string(out), "(made here) Tj")
}

func TestDocumentCloseWithoutProblems(t *testing.T) {
	doc := newTestDocument(Grid3x2(false), Header{Title: "Empty"})
	w, h := doc.PageSize()
	assert.InDelta(t, a4H, w, 0.01, "3x2 pages are landscape")
	assert.InDelta(t, a4W, h, 0.01)

	var buf bytes.Buffer
	require.NoError(t, doc.Close(&buf))
	assert.Equal(t, 1, doc.PageCount())
}

func TestDocumentUnencodableTextIsSticky(t *testing.T) {
	doc := newTestDocument(Grid2x2(false), Header{})
	doc.Region(0)
	doc.DrawText("数字", 10, 10, Style{})

	err := doc.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRender))
	assert.NotEmpty(t, errors.Hint(err))

	doc.DrawText("ok", 10, 20, Style{})
	assert.Same(t, err, doc.Err(), "first error is kept")

	var buf bytes.Buffer
	assert.Error(t, doc.Close(&buf))
	assert.Zero(t, buf.Len())
}

func TestDocumentRejectsGridThatDoesNotFit(t *testing.T) {
	grid := Grid2x2(false)
	grid.Columns = 20
	doc := newTestDocument(grid, Header{})
	assert.True(t, errors.Is(doc.Err(), errors.ErrCodeInvalidLayout))
}

func TestDocumentRegionNegativeIndex(t *testing.T) {
	doc := newTestDocument(Grid2x2(false), Header{})
	assert.Zero(t, doc.Region(-1))
	assert.Zero(t, doc.PageCount())
}

func TestWinAnsi(t *testing.T) {
	got, err := WinAnsi("Größe €5")
	require.NoError(t, err)
	assert.Equal(t, "Gr\xf6\xdfe \x805", got)

	_, err = WinAnsi("→")
	assert.True(t, errors.Is(err, errors.ErrCodeRender))
}
