package worksheet

import (
	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTitle is printed when the title field is left empty.
	DefaultTitle = "Number Bonds Practice"

	// DefaultFilename names the document when the title yields no usable name.
	DefaultFilename = "number-bonds-worksheet.pdf"

	// DefaultFooter is printed at the bottom of every page.
	DefaultFooter = "Created with TeacherForge Hub - Number Bond Creator"

	// MaxCount bounds the number of problems in one document.
	MaxCount = 120
)

// Layout names accepted by the form.
const (
	Layout2x2 = "2x2"
	Layout3x2 = "3x2"
)

// DefaultLayout is the four-per-page print layout.
const DefaultLayout = Layout2x2

// ValidLayouts is the set of supported page layouts.
var ValidLayouts = map[string]bool{
	Layout2x2: true,
	Layout3x2: true,
}

// VisualAids selects the aids drawn with each diagram.
type VisualAids struct {
	Dots       bool `json:"dots" toml:"dots" yaml:"dots"`
	NumberLine bool `json:"number_line" toml:"number_line" yaml:"number_line"`

	// TenFrame is reserved for a ten-frame aid. It is accepted and carried
	// through but nothing draws it yet.
	TenFrame bool `json:"ten_frame,omitempty" toml:"ten_frame" yaml:"ten_frame"`
}

// Any reports whether at least one drawable aid is enabled.
func (a VisualAids) Any() bool { return a.Dots || a.NumberLine }

// =============================================================================
// Config - validated worksheet settings
// =============================================================================

// Config is a fully validated worksheet configuration. Values are already
// clamped and defaulted; use Form.Resolve to build one.
type Config struct {
	Title        string
	Instructions string
	Footer       string
	Range        bond.Range
	Kinds        []bond.Kind
	Aids         VisualAids
	Layout       string
	Count        int
	Seed         uint64
}

// Grid returns the page grid for the configured layout.
func (c Config) Grid() surface.PageGrid {
	instructions := c.Instructions != ""
	if c.Layout == Layout3x2 {
		return surface.Grid3x2(instructions)
	}
	return surface.Grid2x2(instructions)
}

// Capacity returns the number of problems per page.
func (c Config) Capacity() int { return c.Grid().Capacity() }

// Pages returns the number of pages the document will have.
func (c Config) Pages() int { return surface.Pages(c.Count, c.Capacity()) }

// Header returns the text repeated on every page.
func (c Config) Header() surface.Header {
	return surface.Header{Title: c.Title, Instructions: c.Instructions, Footer: c.Footer}
}

// Validate checks the invariants Resolve guarantees. It exists for configs
// built by hand, such as in tests.
func (c Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return err
	}
	if len(c.Kinds) == 0 {
		return errors.New(errors.ErrCodeInvalidKind, "no problem types selected")
	}
	for _, k := range c.Kinds {
		if !k.Valid() {
			return errors.New(errors.ErrCodeInvalidKind, "invalid problem type %d", int(k))
		}
	}
	if !ValidLayouts[c.Layout] {
		return errors.New(errors.ErrCodeInvalidLayout, "invalid layout: %s", c.Layout)
	}
	if c.Count < 1 || c.Count > MaxCount {
		return errors.New(errors.ErrCodeInvalidConfig, "problem count must be between 1 and %d, got %d", MaxCount, c.Count)
	}
	return nil
}
