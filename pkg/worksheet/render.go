package worksheet

import (
	"strconv"

	"github.com/matzehuels/worksheets/pkg/aids"
	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// Drawing styles shared by the preview and the document.
var (
	nodeStyle     = surface.Style{LineWidth: 0.3}
	linkStyle     = surface.Style{LineWidth: 0.3}
	labelStyle    = surface.Style{FontSize: 10}
	dotStyle      = surface.Style{Slot: surface.SlotAid, Filled: true, Fill: 51, Stroke: 51, LineWidth: 0.1}
	axisStyle     = surface.Style{Slot: surface.SlotAid, LineWidth: 0.5}
	tickStyle     = surface.Style{Slot: surface.SlotAid, LineWidth: 0.3}
	tickTextStyle = surface.Style{Slot: surface.SlotAid, FontSize: 7, Stroke: 51}
)

// PreviewLineWidth is the fixed number line length on the preview canvas.
const PreviewLineWidth = surface.DefaultSceneWidth - 2*20

// RenderProblem draws p into region: three circles, two trimmed connectors,
// the circle labels, the caption and the enabled visual aids. region is a
// padded grid cell; drawing stays within the cell around it.
func RenderProblem(s surface.Surface, p bond.Problem, region bond.Region, cfg Config) error {
	pl, err := cfg.place(region, cfg.Grid().Padding)
	if err != nil {
		return err
	}
	return renderProblem(s, p, region, cfg, aids.DefaultLineStyle, pl)
}

func renderProblem(s surface.Surface, p bond.Problem, region bond.Region, cfg Config, ls aids.LineStyle, pl placement) error {
	diagram := region
	diagram.X += pl.shift
	d := bond.Compose(p, diagram)
	g := d.Geometry

	s.DrawCircle(g.Left.X, g.Left.Y, g.Left.R, withSlot(nodeStyle, surface.SlotLeftNode))
	s.DrawCircle(g.Right.X, g.Right.Y, g.Right.R, withSlot(nodeStyle, surface.SlotRightNode))
	s.DrawCircle(g.Bottom.X, g.Bottom.Y, g.Bottom.R, withSlot(nodeStyle, surface.SlotBottomNode))

	drawSegment(s, g.LeftLink, withSlot(linkStyle, surface.SlotLeftLink))
	drawSegment(s, g.RightLink, withSlot(linkStyle, surface.SlotRightLink))

	drawLabel(s, d.LeftLabel, withSlot(labelStyle, surface.SlotLeftLabel))
	drawLabel(s, d.RightLabel, withSlot(labelStyle, surface.SlotRightLabel))
	drawLabel(s, d.BottomLabel, withSlot(labelStyle, surface.SlotBottomLabel))
	drawLabel(s, d.Caption, withSlot(labelStyle, surface.SlotCaption))

	if cfg.Aids.Dots {
		for _, dot := range aids.DotGroups(p, g, pl.dots) {
			s.DrawCircle(dot.X, dot.Y, dot.R, dotStyle)
		}
	}
	if cfg.Aids.NumberLine {
		nl, err := aids.LayoutNumberLine(cfg.Range, region, ls)
		if err != nil {
			return err
		}
		drawNumberLine(s, nl)
	}
	return s.Err()
}

func drawNumberLine(s surface.Surface, nl aids.NumberLine) {
	s.DrawLine(nl.X1, nl.Y, nl.X2, nl.Y, axisStyle)
	for _, t := range nl.Ticks {
		s.DrawLine(t.X, nl.Y-nl.TickHeight, t.X, nl.Y+nl.TickHeight, tickStyle)
		if t.Label {
			s.DrawText(strconv.Itoa(t.Value), t.X, t.LabelY, tickTextStyle)
		}
	}
}

func drawSegment(s surface.Surface, seg bond.Segment, st surface.Style) {
	s.DrawLine(seg.X1, seg.Y1, seg.X2, seg.Y2, st)
}

func drawLabel(s surface.Surface, l bond.Label, st surface.Style) {
	s.DrawText(l.Text, l.X, l.Y, st)
}

func withSlot(st surface.Style, slot surface.Slot) surface.Style {
	st.Slot = slot
	return st
}
