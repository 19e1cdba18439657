package surface

import "github.com/matzehuels/worksheets/pkg/bond"

// Preview canvas size in millimeters. Wide enough for the largest diagram
// plus the dots beside the right circle.
const (
	DefaultSceneWidth  = 160.0
	DefaultSceneHeight = 100.0
)

// Shape is the kind of primitive an Element holds.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeLine
	ShapeText
)

// Element is one retained primitive of a Scene.
type Element struct {
	Shape Shape
	X, Y  float64 // circle center, line start, or text anchor
	R     float64
	X2    float64
	Y2    float64
	Text  string
	Style Style
}

// Scene is the preview surface: one region covering the whole canvas, with
// one retained element per named slot.
//
// Redrawing a named slot replaces its element in place; the slot keeps its
// original position in drawing order. Aid elements live in their own group
// which ClearAids empties. Elements without a slot accumulate until Reset.
type Scene struct {
	Width, Height float64

	order []Slot
	slots map[Slot]Element
	free  []Element
	aids  []Element
}

// NewScene returns an empty canvas of the given size in millimeters.
func NewScene(width, height float64) *Scene {
	return &Scene{Width: width, Height: height, slots: make(map[Slot]Element)}
}

// NewPreviewScene returns a canvas of the default preview size.
func NewPreviewScene() *Scene {
	return NewScene(DefaultSceneWidth, DefaultSceneHeight)
}

func (s *Scene) DrawCircle(x, y, r float64, st Style) {
	s.put(Element{Shape: ShapeCircle, X: x, Y: y, R: r, Style: st})
}

func (s *Scene) DrawLine(x1, y1, x2, y2 float64, st Style) {
	s.put(Element{Shape: ShapeLine, X: x1, Y: y1, X2: x2, Y2: y2, Style: st})
}

func (s *Scene) DrawText(text string, x, y float64, st Style) {
	s.put(Element{Shape: ShapeText, X: x, Y: y, Text: text, Style: st})
}

func (s *Scene) put(e Element) {
	switch slot := e.Style.Slot; slot {
	case SlotAid:
		s.aids = append(s.aids, e)
	case SlotNone:
		s.free = append(s.free, e)
	default:
		if _, ok := s.slots[slot]; !ok {
			s.order = append(s.order, slot)
		}
		s.slots[slot] = e
	}
}

// ClearAids drops every aid element. Named slots are untouched.
func (s *Scene) ClearAids() { s.aids = s.aids[:0] }

// Reset empties the scene completely.
func (s *Scene) Reset() {
	s.order = s.order[:0]
	clear(s.slots)
	s.free = s.free[:0]
	s.aids = s.aids[:0]
}

// Region returns the whole canvas regardless of index.
func (s *Scene) Region(int) bond.Region {
	return bond.Region{Width: s.Width, Height: s.Height}
}

func (s *Scene) Err() error { return nil }

// Slot returns the element currently held by a named slot.
func (s *Scene) Slot(slot Slot) (Element, bool) {
	e, ok := s.slots[slot]
	return e, ok
}

// Elements returns the diagram elements in drawing order: named slots first,
// then unnamed ones. Aids are excluded.
func (s *Scene) Elements() []Element {
	out := make([]Element, 0, len(s.order)+len(s.free))
	for _, slot := range s.order {
		out = append(out, s.slots[slot])
	}
	return append(out, s.free...)
}

// Aids returns the elements of the aid group.
func (s *Scene) Aids() []Element {
	return append([]Element(nil), s.aids...)
}
