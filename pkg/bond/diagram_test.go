package bond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeLabels(t *testing.T) {
	region := Region{X: 10, Y: 10, Width: 100, Height: 80}

	tests := []struct {
		name                string
		p                   Problem
		left, right, bottom string
		caption             string
	}{
		{"whole", Problem{Whole: 5, Part1: 2, Part2: 3, Kind: FindWhole}, "2", "3", "?", "2 + 3 = ?"},
		{"part", Problem{Whole: 5, Part1: 2, Part2: 3, Kind: FindPart}, "5", "2", "?", "5 - 2 = ?"},
		{"mixed", Problem{Whole: 5, Part1: 2, Part2: 3, Kind: ShowAll}, "2", "3", "5", "2 + 3 = 5"},
		{"zero part", Problem{Whole: 4, Part1: 0, Part2: 4, Kind: FindWhole}, "0", "4", "?", "0 + 4 = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compose(tt.p, region)
			assert.Equal(t, tt.left, d.LeftLabel.Text)
			assert.Equal(t, tt.right, d.RightLabel.Text)
			assert.Equal(t, tt.bottom, d.BottomLabel.Text)
			assert.Equal(t, tt.caption, d.Caption.Text)
		})
	}
}

func TestComposePlacement(t *testing.T) {
	region := Region{X: 10, Y: 10, Width: 100, Height: 80}
	d := Compose(Problem{Whole: 3, Part1: 1, Part2: 2}, region)
	g := d.Geometry

	assert.Equal(t, Layout(region), g)
	assert.InDelta(t, g.Left.X, d.LeftLabel.X, eps)
	assert.InDelta(t, g.Left.Y+LabelBaseline, d.LeftLabel.Y, eps)
	assert.InDelta(t, g.Bottom.Y+LabelBaseline, d.BottomLabel.Y, eps)
	assert.InDelta(t, region.CenterX(), d.Caption.X, eps)
	assert.InDelta(t, g.Bottom.Y+g.Bottom.R+CaptionGap, d.Caption.Y, eps)
	assert.Less(t, d.Caption.Y, region.Bottom(), "caption should fit inside a normal cell")
}

func TestProblemAnswer(t *testing.T) {
	p := Problem{Whole: 9, Part1: 4, Part2: 5}

	p.Kind = FindWhole
	if v, ok := p.Answer(); !ok || v != 9 {
		t.Errorf("FindWhole answer = %d, %v", v, ok)
	}
	p.Kind = FindPart
	if v, ok := p.Answer(); !ok || v != 5 {
		t.Errorf("FindPart answer = %d, %v", v, ok)
	}
	p.Kind = ShowAll
	if _, ok := p.Answer(); ok {
		t.Error("ShowAll should have no answer")
	}
}

func TestProblemDotCounts(t *testing.T) {
	p := Problem{Whole: 7, Part1: 3, Part2: 4}

	for _, tt := range []struct {
		kind    Kind
		l, r, b int
	}{
		{FindWhole, 3, 4, 0},
		{FindPart, 7, 3, 0},
		{ShowAll, 3, 4, 7},
	} {
		p.Kind = tt.kind
		l, r, b := p.DotCounts()
		if l != tt.l || r != tt.r || b != tt.b {
			t.Errorf("%v: DotCounts() = %d,%d,%d want %d,%d,%d", tt.kind, l, r, b, tt.l, tt.r, tt.b)
		}
	}
}
