package worksheet

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
)

// Field is an untrusted form value kept as text. Config files may write it as
// a number or a string; both decode to the same text.
type Field string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(b []byte) error {
	*f = Field(b)
	return nil
}

// UnmarshalYAML accepts any scalar.
func (f *Field) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.New(errors.ErrCodeInvalidFormat, "line %d: expected a single value", n.Line)
	}
	*f = Field(n.Value)
	return nil
}

// Form holds raw worksheet settings as entered by a user, read from a config
// file, or collected from command-line flags. Nothing in it is trusted.
type Form struct {
	Title        string   `json:"title" toml:"title" yaml:"title"`
	Instructions string   `json:"instructions,omitempty" toml:"instructions" yaml:"instructions"`
	Footer       string   `json:"footer,omitempty" toml:"footer" yaml:"footer"`
	Min          Field    `json:"min" toml:"min" yaml:"min"`
	Max          Field    `json:"max" toml:"max" yaml:"max"`
	Kinds        []string `json:"kinds" toml:"kinds" yaml:"kinds"`
	Layout       string   `json:"layout,omitempty" toml:"layout" yaml:"layout"`
	Count        int      `json:"count,omitempty" toml:"count" yaml:"count"`
	Seed         uint64   `json:"seed,omitempty" toml:"seed" yaml:"seed"`

	Aids VisualAids `json:"aids" toml:"aids" yaml:"aids"`
}

// Notice lists the adjustments Resolve made so a front end can reflect them,
// for example by re-checking the "whole" option.
type Notice struct {
	DefaultTitle    bool // empty title replaced by DefaultTitle
	RangeAdjusted   bool // min or max was clamped or defaulted
	ForcedKind      bool // no problem type selected, "whole" was used
	DefaultCount    bool // count filled to one full page
	TenFrameIgnored bool // ten-frame aid requested but not available
}

// Adjusted reports whether any value was changed.
func (n Notice) Adjusted() bool {
	return n.DefaultTitle || n.RangeAdjusted || n.ForcedKind || n.DefaultCount || n.TenFrameIgnored
}

// Messages returns one short line per adjustment.
func (n Notice) Messages() []string {
	var out []string
	if n.RangeAdjusted {
		out = append(out, "number range adjusted to fit 0-20")
	}
	if n.ForcedKind {
		out = append(out, `no problem type selected, using "whole"`)
	}
	if n.TenFrameIgnored {
		out = append(out, "ten frames are not available yet and were skipped")
	}
	return out
}

// Resolve validates the form into a Config. Out-of-range numbers are clamped
// and missing values defaulted; only values with no safe default (unknown
// problem types or layouts, unprintable text) are errors.
func (f Form) Resolve() (Config, Notice, error) {
	var n Notice

	title := strings.TrimSpace(f.Title)
	if title == "" {
		title, n.DefaultTitle = DefaultTitle, true
	}
	instructions := strings.TrimSpace(f.Instructions)
	footer := strings.TrimSpace(f.Footer)
	if footer == "" {
		footer = DefaultFooter
	}
	for _, field := range []struct{ name, value string }{
		{"title", title},
		{"instructions", instructions},
		{"footer", footer},
	} {
		if err := errors.ValidateText(field.name, field.value); err != nil {
			return Config{}, n, err
		}
	}

	r := bond.ParseRange(string(f.Min), string(f.Max))
	n.RangeAdjusted = !rangeVerbatim(f.Min, f.Max, r)

	kinds, err := bond.ParseKinds(f.Kinds)
	if err != nil {
		return Config{}, n, err
	}
	kinds, n.ForcedKind = bond.ResolveKinds(kinds)

	layout := strings.ToLower(strings.TrimSpace(f.Layout))
	if layout == "" {
		layout = DefaultLayout
	}
	if !ValidLayouts[layout] {
		return Config{}, n, errors.New(errors.ErrCodeInvalidLayout,
			"invalid layout: %s (must be %s or %s)", f.Layout, Layout2x2, Layout3x2)
	}

	cfg := Config{
		Title:        title,
		Instructions: instructions,
		Footer:       footer,
		Range:        r,
		Kinds:        kinds,
		Aids:         f.Aids,
		Layout:       layout,
		Count:        f.Count,
		Seed:         f.Seed,
	}
	if cfg.Count == 0 {
		cfg.Count, n.DefaultCount = cfg.Capacity(), true
	}
	if cfg.Count < 0 || cfg.Count > MaxCount {
		return Config{}, n, errors.New(errors.ErrCodeInvalidConfig,
			"problem count must be between 1 and %d, got %d", MaxCount, f.Count)
	}
	n.TenFrameIgnored = f.Aids.TenFrame

	return cfg, n, nil
}

// rangeVerbatim reports whether the raw fields parse to exactly r.
func rangeVerbatim(lo, hi Field, r bond.Range) bool {
	l, err1 := strconv.Atoi(strings.TrimSpace(string(lo)))
	h, err2 := strconv.Atoi(strings.TrimSpace(string(hi)))
	return err1 == nil && err2 == nil && l == r.Min && h == r.Max
}

// Form returns the form that reproduces c, for writing clamped values back
// into an editor.
func (c Config) Form() Form {
	return Form{
		Title:        c.Title,
		Instructions: c.Instructions,
		Footer:       c.Footer,
		Min:          Field(strconv.Itoa(c.Range.Min)),
		Max:          Field(strconv.Itoa(c.Range.Max)),
		Kinds:        bond.KindNames(c.Kinds),
		Layout:       c.Layout,
		Count:        c.Count,
		Seed:         c.Seed,
		Aids:         c.Aids,
	}
}
