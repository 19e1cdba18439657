package phonics

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/worksheets/pkg/buildinfo"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// Example word limits.
const (
	MinExamples = 2
	MaxExamples = 9
)

// Footer is printed at the bottom of every sheet.
const Footer = "Created with TeacherForge Hub - Phonics Sound Sheet Maker"

// Tool is the name reported to observability hooks.
const Tool = "phonics"

// Difficulty levels, one per Kind.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// Difficulty returns the level used to pick the sheet color.
func Difficulty(kind Kind) string {
	switch kind {
	case Blends:
		return Intermediate
	case Digraphs:
		return Advanced
	}
	return Beginner
}

// DefaultColors are the box colors per difficulty level.
var DefaultColors = map[string]string{
	Beginner:     "#FFE0E0",
	Intermediate: "#E0FFE0",
	Advanced:     "#E0E0FF",
}

// Page layout in points on a US Letter page.
const (
	left            = 40.0
	titleY          = 40.0
	titleSize       = 20.0
	instructionsGap = 40.0
	instructionSize = 12.0
	boxGap          = 20.0
	boxSize         = 100.0
	soundSize       = 48.0
	wordsGap        = 40.0
	perRow          = 3
	wordBoxHeight   = 70.0
	wordBoxInset    = 10.0
	rowSpacing      = 15.0
	wordSize        = 24.0
	wordBaseline    = 40.0
	footerSize      = 8.0
	footerGray      = 150
	footerFromEdge  = 20.0
)

// Sheet is a phonics sound sheet.
type Sheet struct {
	Title        string
	Instructions string
	Kind         Kind
	Sound        string
	Examples     []string
	// Color overrides the box color; a hex string such as "#FFE0E0".
	Color string
}

// Validate checks the sheet can be rendered.
func (s Sheet) Validate() error {
	if strings.TrimSpace(s.Sound) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "please choose a sound")
	}
	for _, f := range []struct{ name, value string }{
		{"title", s.Title},
		{"instructions", s.Instructions},
	} {
		if err := errors.ValidateText(f.name, f.value); err != nil {
			return err
		}
	}
	n := 0
	for _, w := range s.Examples {
		if strings.TrimSpace(w) == "" {
			continue
		}
		if err := errors.ValidateText("example word", w); err != nil {
			return err
		}
		n++
	}
	if n < MinExamples {
		return errors.New(errors.ErrCodeInvalidInput, "please provide at least %d example words", MinExamples)
	}
	if n > MaxExamples {
		return errors.New(errors.ErrCodeInvalidInput, "at most %d example words fit on a sheet, got %d", MaxExamples, n)
	}
	if s.Color != "" {
		if _, err := colorful.Hex(s.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s.Color).
				WithHint("use a hex color such as #FFE0E0")
		}
	}
	return nil
}

// DisplayTitle returns the title, defaulting to "Phonics Practice: X".
func (s Sheet) DisplayTitle() string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return "Phonics Practice: " + strings.ToUpper(s.Sound)
}

// DisplayInstructions returns the instructions, defaulting to a sentence
// naming the sound.
func (s Sheet) DisplayInstructions() string {
	if t := strings.TrimSpace(s.Instructions); t != "" {
		return t
	}
	return fmt.Sprintf("Practice the %s %q in these words.", s.Kind.Noun(), strings.ToUpper(s.Sound))
}

// Filename returns phonics_<sound>.pdf.
func (s Sheet) Filename() string {
	return surface.Filename("phonics "+strings.ToLower(s.Sound), "phonics.pdf")
}

// BoxColor returns the sheet color as 0-255 RGB components.
func (s Sheet) BoxColor() (r, g, b int) {
	hex := s.Color
	if hex == "" {
		hex = DefaultColors[Difficulty(s.Kind)]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(DefaultColors[Beginner])
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}

func (s Sheet) words() []string {
	var out []string
	for _, w := range s.Examples {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Render writes the sheet as a single US Letter page.
func Render(w io.Writer, s Sheet) error {
	if err := s.Validate(); err != nil {
		return err
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer(buildinfo.Producer(), true)
	pdf.SetTitle(s.DisplayTitle(), true)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	t := &textWriter{pdf: pdf}
	br, bg, bb := s.BoxColor()

	t.draw(s.DisplayTitle(), pageW/2, titleY, titleSize, "B", true)
	y := titleY + instructionsGap
	t.draw(s.DisplayInstructions(), left, y, instructionSize, "", false)
	y += instructionSize + 10 + boxGap

	pdf.SetFillColor(br, bg, bb)
	boxX := (pageW - boxSize) / 2
	pdf.Rect(boxX, y, boxSize, boxSize, "F")
	t.draw(strings.ToUpper(s.Sound), pageW/2, y+boxSize/2, soundSize, "", true)
	y += boxSize + wordsGap

	cellW := (pageW - 2*left) / perRow
	for i, word := range s.words() {
		x := left + float64(i%perRow)*cellW
		wy := y + float64(i/perRow)*(wordBoxHeight+rowSpacing)
		pdf.Rect(x, wy, cellW-wordBoxInset, wordBoxHeight, "F")
		t.draw(word, x+(cellW-wordBoxInset)/2, wy+wordBaseline, wordSize, "", true)
	}

	pdf.SetTextColor(footerGray, footerGray, footerGray)
	t.draw(Footer, left, pageH-footerFromEdge, footerSize, "", false)

	if t.err != nil {
		return t.err
	}
	if err := pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write pdf")
	}
	return nil
}

type textWriter struct {
	pdf *fpdf.Fpdf
	err error
}

func (t *textWriter) draw(s string, x, y, size float64, style string, centered bool) {
	if t.err != nil {
		return
	}
	enc, err := surface.WinAnsi(s)
	if err != nil {
		t.err = err
		return
	}
	t.pdf.SetFont("Helvetica", style, size)
	if centered {
		x -= t.pdf.GetStringWidth(enc) / 2
	}
	t.pdf.Text(x, y, enc)
}
