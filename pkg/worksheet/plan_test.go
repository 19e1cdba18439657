package worksheet

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
)

func TestPlanRunMatchesGenerate(t *testing.T) {
	f := Form{Title: "Plan", Min: "2", Max: "9", Kinds: []string{"whole", "part"}, Layout: "3x2", Count: 8, Seed: 77}
	cfg, _, err := f.Resolve()
	require.NoError(t, err)

	// 3x2 sheets are printed on landscape pages.
	plan, err := PlanRun(cfg, surface.A4Height, surface.A4Width)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2}, plan.Pages)
	require.Len(t, plan.Traces, 8)

	s := newTestSession(t)
	_, _, err = s.Configure(context.Background(), f)
	require.NoError(t, err)
	res, err := s.Generate(context.Background(), io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, res.Problems, plan.Problems)
	assert.Equal(t, len(plan.Pages), res.Pages)
}

func TestPlanRunCellsFollowGrid(t *testing.T) {
	cfg, _, err := Form{Count: 5, Seed: 1}.Resolve()
	require.NoError(t, err)

	plan, err := PlanRun(cfg, surface.A4Width, surface.A4Height)
	require.NoError(t, err)

	grid := cfg.Grid()
	for i, tr := range plan.Traces {
		assert.Equal(t, grid.Inner(surface.A4Width, surface.A4Height, i%4), tr.Cell)
		assert.Equal(t, []int{i}, tr.Indices)
		assert.Equal(t, 3, tr.Count(surface.ShapeCircle, surface.SlotLeftNode)+
			tr.Count(surface.ShapeCircle, surface.SlotRightNode)+
			tr.Count(surface.ShapeCircle, surface.SlotBottomNode))
	}
	assert.Positive(t, plan.Calls())
}

func TestPlanRunRejectsSmallPage(t *testing.T) {
	cfg, _, err := Form{Seed: 1}.Resolve()
	require.NoError(t, err)

	_, err = PlanRun(cfg, 40, 40)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout))

	_, err = PlanRun(Config{}, surface.A4Width, surface.A4Height)
	assert.True(t, errors.IsValidation(err))
}

func TestPlanRunMatchesGenerateAfterPreviews(t *testing.T) {
	f := Form{Min: "0", Max: "20", Kinds: []string{"whole", "part", "mixed"}, Count: 10, Seed: 42}
	cfg, _, err := f.Resolve()
	require.NoError(t, err)
	plan, err := PlanRun(cfg, surface.A4Width, surface.A4Height)
	require.NoError(t, err)

	s := newTestSession(t)
	ctx := context.Background()
	_, _, err = s.Configure(ctx, f)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := s.Preview(ctx)
		require.NoError(t, err)
	}

	first, err := s.Generate(ctx, io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, plan.Problems, first.Problems, "previews must not change the document")

	_, err = s.Preview(ctx)
	require.NoError(t, err)
	second, err := s.Generate(ctx, io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Problems, second.Problems, "the same seed gives the same sheet")
}

func TestPlanRunRejectsPortraitThreeColumns(t *testing.T) {
	cfg, _, err := Form{Layout: "3x2", Seed: 1}.Resolve()
	require.NoError(t, err)

	_, err = PlanRun(cfg, surface.A4Width, surface.A4Height)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLayout))
}
