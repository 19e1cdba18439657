// Package wordgrid renders word-list worksheets: a title, an optional
// description and the words laid out in a bordered four-column grid that
// continues across pages.
package wordgrid

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/worksheets/pkg/buildinfo"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// Columns is the number of words per grid row.
const Columns = 4

// Footer is printed in the bottom-left corner of every page.
const Footer = "Created with TeacherForge Hub"

// Tool is the name reported to observability hooks.
const Tool = "words"

// DefaultFilename names a sheet whose title yields no file name.
const DefaultFilename = "word-grid.pdf"

// Page geometry in millimeters.
const (
	margin          = 14.0
	titleY          = 20.0
	titleSize       = 20.0
	descriptionX    = 20.0
	descriptionY    = 35.0
	descriptionSize = 12.0
	gridTop         = 30.0
	gridTopDesc     = 45.0
	continuedTop    = 20.0
	rowHeight       = 10.0
	wordSize        = 14.0
	borderWidth     = 0.4
	footerSize      = 8.0
	footerGray      = 150
	footerFromEdge  = 10.0
	bottomReserve   = 18.0

	// wordBaseline drops the baseline below the row middle by half the cap
	// height of a bold 14pt word.
	wordBaseline = wordSize * 25.4 / 72 * 0.35
)

// Sheet is a word-list worksheet.
type Sheet struct {
	Title       string
	Description string
	Words       []string
}

// ParseWords splits text into one word per line, trimming blanks.
func ParseWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Rows chunks words into rows of cols cells. The last row is padded with
// empty strings.
func Rows(words []string, cols int) [][]string {
	if cols < 1 || len(words) == 0 {
		return nil
	}
	var rows [][]string
	for i := 0; i < len(words); i += cols {
		row := make([]string, cols)
		copy(row, words[i:min(i+cols, len(words))])
		rows = append(rows, row)
	}
	return rows
}

// Validate checks that the sheet can be rendered.
func (s Sheet) Validate() error {
	if err := errors.ValidateRequired("title", s.Title); err != nil {
		return err
	}
	if err := errors.ValidateText("description", s.Description); err != nil {
		return err
	}
	if len(s.Words) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "please enter at least one word")
	}
	for _, w := range s.Words {
		if err := errors.ValidateText("word", w); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the file name derived from the title, or DefaultFilename
// when the title has nothing usable in it.
func (s Sheet) Filename() string {
	return surface.Filename(s.Title, DefaultFilename)
}

// Render writes the sheet as an A4 PDF and returns the number of pages.
func Render(w io.Writer, s Sheet) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer(buildinfo.Producer(), true)
	pdf.SetTitle(s.Title, true)
	pageW, pageH := pdf.GetPageSize()
	r := &renderer{pdf: pdf, pageW: pageW, pageH: pageH}

	r.newPage()
	r.text(s.Title, pageW/2, titleY, titleSize, "", true)
	y := gridTop
	if s.Description != "" {
		r.text(s.Description, descriptionX, descriptionY, descriptionSize, "", false)
		y = gridTopDesc
	}

	cellW := (pageW - 2*margin) / Columns
	pdf.SetLineWidth(borderWidth)
	pdf.SetDrawColor(0, 0, 0)
	for _, row := range Rows(s.Words, Columns) {
		if y+rowHeight > pageH-bottomReserve {
			r.newPage()
			y = continuedTop
		}
		for col, word := range row {
			x := margin + float64(col)*cellW
			pdf.Rect(x, y, cellW, rowHeight, "D")
			if word != "" {
				r.text(word, x+cellW/2, y+rowHeight/2+wordBaseline, wordSize, "B", true)
			}
		}
		y += rowHeight
	}

	if r.err != nil {
		return 0, r.err
	}
	if err := pdf.Output(w); err != nil {
		return 0, errors.Wrap(errors.ErrCodeRender, err, "write pdf")
	}
	return pdf.PageCount(), nil
}

type renderer struct {
	pdf          *fpdf.Fpdf
	pageW, pageH float64
	err          error
}

func (r *renderer) newPage() {
	r.pdf.AddPage()
	r.pdf.SetTextColor(footerGray, footerGray, footerGray)
	r.text(Footer, margin, r.pageH-footerFromEdge, footerSize, "", false)
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *renderer) text(s string, x, y, size float64, style string, centered bool) {
	if r.err != nil {
		return
	}
	enc, err := surface.WinAnsi(s)
	if err != nil {
		r.err = err
		return
	}
	r.pdf.SetFont("Helvetica", style, size)
	if centered {
		x -= r.pdf.GetStringWidth(enc) / 2
	}
	r.pdf.Text(x, y, enc)
}
