package surface

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/buildinfo"
	"github.com/matzehuels/worksheets/pkg/errors"
)

// Header is the text repeated on every document page.
type Header struct {
	Title        string
	Instructions string
	Footer       string
}

// Page header and footer placement in millimeters.
const (
	titleY             = 20.0
	titleSize          = 16.0
	instructionsX      = 20.0
	instructionsY      = 35.0
	instructionsSize   = 12.0
	footerFromBottom   = 10.0
	footerSize         = 10.0
	footerGray         = 150
	documentFontFamily = "Helvetica"
)

// DocumentOption configures a Document.
type DocumentOption func(*docConfig)

type docConfig struct {
	orientation string
	size        string
	compress    bool
	created     time.Time
}

// WithPageSize selects a standard page size such as "A4" or "Letter".
func WithPageSize(size string) DocumentOption {
	return func(c *docConfig) { c.size = size }
}

// WithLandscape turns pages sideways. Grids marked Landscape are always
// sideways.
func WithLandscape() DocumentOption {
	return func(c *docConfig) { c.orientation = "L" }
}

// WithoutCompression leaves page content streams readable.
func WithoutCompression() DocumentOption {
	return func(c *docConfig) { c.compress = false }
}

// WithCreationDate pins the document timestamp for reproducible output.
func WithCreationDate(t time.Time) DocumentOption {
	return func(c *docConfig) { c.created = t }
}

// Document is the paginated print surface. Region hands out one padded grid
// cell per problem index and starts a new page, with header and footer,
// each time the index moves past the current page.
//
// A Document is not safe for concurrent use.
type Document struct {
	pdf    *fpdf.Fpdf
	grid   PageGrid
	header Header
	pageW  float64
	pageH  float64
	pages  int
	err    error
}

// NewDocument creates an empty document using grid for cell placement.
func NewDocument(grid PageGrid, header Header, opts ...DocumentOption) *Document {
	cfg := docConfig{orientation: "P", size: "A4", compress: true}
	if grid.Landscape {
		cfg.orientation = "L"
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := fpdf.New(cfg.orientation, "mm", cfg.size, "")
	pdf.SetCompression(cfg.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(buildinfo.Producer(), true)
	pdf.SetProducer(buildinfo.Producer(), true)
	if header.Title != "" {
		pdf.SetTitle(header.Title, true)
	}
	if !cfg.created.IsZero() {
		pdf.SetCreationDate(cfg.created)
		pdf.SetModificationDate(cfg.created)
	}
	pdf.SetFont(documentFontFamily, "", DefaultFontSize)

	w, h := pdf.GetPageSize()
	d := &Document{pdf: pdf, grid: grid, header: header, pageW: w, pageH: h}
	if !grid.Validate(w, h) {
		d.err = errors.New(errors.ErrCodeInvalidLayout,
			"a %dx%d grid does not fit on a %.0fx%.0f mm page", grid.Columns, grid.Rows, w, h)
	}
	return d
}

// PageSize returns the page dimensions in millimeters.
func (d *Document) PageSize() (w, h float64) { return d.pageW, d.pageH }

// PageCount returns the number of pages started so far.
func (d *Document) PageCount() int { return d.pages }

// Region returns the padded cell for problem index, adding pages as needed.
func (d *Document) Region(index int) bond.Region {
	c := d.grid.Capacity()
	if c <= 0 || index < 0 {
		return bond.Region{}
	}
	for d.pages <= index/c {
		d.addPage()
	}
	return d.grid.Inner(d.pageW, d.pageH, index%c)
}

func (d *Document) addPage() {
	d.pdf.AddPage()
	d.pages++

	if d.header.Title != "" {
		d.DrawText(d.header.Title, d.pageW/2, titleY, Style{FontSize: titleSize})
	}
	if d.header.Instructions != "" {
		d.DrawText(d.header.Instructions, instructionsX, instructionsY,
			Style{FontSize: instructionsSize, Align: AlignLeft})
	}
	if d.header.Footer != "" {
		d.DrawText(d.header.Footer, d.pageW/2, d.pageH-footerFromBottom,
			Style{FontSize: footerSize, Stroke: footerGray})
	}
}

func (d *Document) DrawCircle(x, y, r float64, st Style) {
	if d.failed() {
		return
	}
	d.applyStroke(st)
	mode := "D"
	if st.Filled {
		d.pdf.SetFillColor(int(st.Fill), int(st.Fill), int(st.Fill))
		mode = "FD"
		if st.Fill == st.Stroke {
			mode = "F"
		}
	}
	d.pdf.Circle(x, y, r, mode)
}

func (d *Document) DrawLine(x1, y1, x2, y2 float64, st Style) {
	if d.failed() {
		return
	}
	d.applyStroke(st)
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *Document) DrawText(text string, x, y float64, st Style) {
	if d.failed() {
		return
	}
	enc, err := WinAnsi(text)
	if err != nil {
		d.err = err
		return
	}
	fontStyle := ""
	if st.Bold {
		fontStyle = "B"
	}
	d.pdf.SetFont(documentFontFamily, fontStyle, st.fontSize())
	d.pdf.SetTextColor(int(st.Stroke), int(st.Stroke), int(st.Stroke))
	w := d.pdf.GetStringWidth(enc)
	d.pdf.Text(x-alignOffset(st.Align, w), y, enc)
}

func (d *Document) applyStroke(st Style) {
	g := int(st.Stroke)
	d.pdf.SetDrawColor(g, g, g)
	d.pdf.SetLineWidth(st.lineWidth())
	d.pdf.SetDashPattern(st.Dash, 0)
}

// ClearAids is a no-op: printed pages are append-only.
func (d *Document) ClearAids() {}

func (d *Document) failed() bool {
	return d.Err() != nil
}

// Err returns the first drawing or backend error.
func (d *Document) Err() error {
	if d.err != nil {
		return d.err
	}
	if err := d.pdf.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "pdf backend")
	}
	return nil
}

// Close writes the finished document to w. A document with no problems
// still gets one page so the header is printed.
func (d *Document) Close(w io.Writer) error {
	if err := d.Err(); err != nil {
		return err
	}
	if d.pages == 0 {
		d.addPage()
		if err := d.Err(); err != nil {
			return err
		}
	}
	if err := d.pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write pdf")
	}
	return nil
}
