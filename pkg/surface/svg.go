package surface

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// DefaultScale is the raster and SVG resolution in pixels per millimeter.
const DefaultScale = 4.0

// WriteOption configures the SVG and PNG sinks.
type WriteOption func(*writeConfig)

type writeConfig struct {
	scale float64
}

// WithScale sets the output resolution in pixels per millimeter.
func WithScale(pxPerMM float64) WriteOption {
	return func(c *writeConfig) {
		if pxPerMM > 0 {
			c.scale = pxPerMM
		}
	}
}

func newWriteConfig(opts []WriteOption) writeConfig {
	c := writeConfig{scale: DefaultScale}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WriteSVG serializes the scene. Named elements carry their slot as id; aids
// are grouped under class "visual-aids".
func (s *Scene) WriteSVG(w io.Writer, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	px := func(mm float64) int { return int(math.Round(mm * cfg.scale)) }

	cw := &countingWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(px(s.Width), px(s.Height))
	canvas.Rect(0, 0, px(s.Width), px(s.Height), "fill:white")

	canvas.Gid("bond")
	for _, e := range s.Elements() {
		writeSVGElement(canvas, e, cfg.scale, px)
	}
	canvas.Gend()

	canvas.Group(`class="visual-aids"`)
	for _, e := range s.aids {
		writeSVGElement(canvas, e, cfg.scale, px)
	}
	canvas.Gend()
	canvas.End()
	return cw.err
}

func writeSVGElement(canvas *svg.SVG, e Element, scale float64, px func(float64) int) {
	attrs := []string{}
	if e.Style.Slot != SlotNone && e.Style.Slot != SlotAid {
		attrs = append(attrs, fmt.Sprintf(`id=%q`, string(e.Style.Slot)))
	}

	switch e.Shape {
	case ShapeCircle:
		canvas.Circle(px(e.X), px(e.Y), px(e.R), append(attrs, svgShapeStyle(e.Style, scale))...)
	case ShapeLine:
		canvas.Line(px(e.X), px(e.Y), px(e.X2), px(e.Y2), append(attrs, svgShapeStyle(e.Style, scale))...)
	case ShapeText:
		canvas.Text(px(e.X), px(e.Y), e.Text, append(attrs, svgTextStyle(e.Style, scale))...)
	}
}

func svgShapeStyle(st Style, scale float64) string {
	var b strings.Builder
	if st.Filled {
		fmt.Fprintf(&b, "fill:%s;", cssGray(st.Fill))
	} else {
		b.WriteString("fill:none;")
	}
	fmt.Fprintf(&b, "stroke:%s;stroke-width:%.2f", cssGray(st.Stroke), st.lineWidth()*scale)
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = fmt.Sprintf("%.2f", d*scale)
		}
		fmt.Fprintf(&b, ";stroke-dasharray:%s", strings.Join(parts, ","))
	}
	return b.String()
}

func svgTextStyle(st Style, scale float64) string {
	anchor := "middle"
	switch st.Align {
	case AlignLeft:
		anchor = "start"
	case AlignRight:
		anchor = "end"
	}
	weight := "normal"
	if st.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("text-anchor:%s;font-family:sans-serif;font-size:%.1fpx;font-weight:%s;fill:%s",
		anchor, st.fontSize()*ptToMM*scale, weight, cssGray(st.Stroke))
}

func cssGray(g uint8) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", g, g, g)
}

// countingWriter remembers the first write error; svgo does not report them.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
