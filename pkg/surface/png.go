package surface

import (
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/worksheets/pkg/errors"
)

var (
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	boldFont    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
)

// faceCache keeps one face per (weight, pixel size) for a single PNG export.
type faceCache map[faceKey]font.Face

type faceKey struct {
	bold bool
	size float64
}

func (fc faceCache) get(bold bool, size float64) (font.Face, error) {
	key := faceKey{bold, math.Round(size*10) / 10}
	if f, ok := fc[key]; ok {
		return f, nil
	}
	load := regularFont
	if bold {
		load = boldFont
	}
	ft, err := load()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: key.size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	fc[key] = f
	return f, nil
}

func (fc faceCache) close() {
	for _, f := range fc {
		f.Close()
	}
}

// WritePNG rasterizes the scene on a white background.
func (s *Scene) WritePNG(w io.Writer, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	width := int(math.Ceil(s.Width * cfg.scale))
	height := int(math.Ceil(s.Height * cfg.scale))

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.Scale(cfg.scale, cfg.scale)

	faces := faceCache{}
	defer faces.close()

	for _, e := range append(s.Elements(), s.aids...) {
		if err := drawPNGElement(dc, faces, e, cfg.scale); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "rasterize preview")
		}
	}
	return dc.EncodePNG(w)
}

func drawPNGElement(dc *gg.Context, faces faceCache, e Element, scale float64) error {
	st := e.Style
	dc.SetLineWidth(st.lineWidth() * scale)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * scale
		}
		dc.SetDash(dash...)
	} else {
		dc.SetDash()
	}

	switch e.Shape {
	case ShapeCircle:
		dc.DrawCircle(e.X, e.Y, e.R)
		if st.Filled {
			dc.SetColor(color.Gray{Y: st.Fill})
			dc.FillPreserve()
		}
		dc.SetColor(color.Gray{Y: st.Stroke})
		dc.Stroke()
	case ShapeLine:
		dc.SetColor(color.Gray{Y: st.Stroke})
		dc.DrawLine(e.X, e.Y, e.X2, e.Y2)
		dc.Stroke()
	case ShapeText:
		// Faces are sized in device pixels, so text is drawn unscaled.
		face, err := faces.get(st.Bold, st.fontSize()*ptToMM*scale)
		if err != nil {
			return err
		}
		dc.Push()
		dc.Identity()
		dc.SetFontFace(face)
		dc.SetColor(color.Gray{Y: st.Stroke})
		ax := 0.5
		switch st.Align {
		case AlignLeft:
			ax = 0
		case AlignRight:
			ax = 1
		}
		dc.DrawStringAnchored(e.Text, e.X*scale, e.Y*scale, ax, 0)
		dc.Pop()
	}
	return nil
}
