package bond

import (
	"strconv"
	"strings"

	"github.com/matzehuels/worksheets/pkg/errors"
)

// Range bounds.
const (
	// MinFloor and MinCeil bound Range.Min.
	MinFloor = 0
	MinCeil  = 19
	// MaxCeil bounds Range.Max; the lower bound is Min+1.
	MaxCeil = 20

	// DefaultMin and DefaultMax replace non-numeric input.
	DefaultMin = 0
	DefaultMax = 10
)

// Range is the inclusive interval the whole of a problem is drawn from.
// A clamped Range always satisfies 0 <= Min <= 19 and Min+1 <= Max <= 20.
type Range struct {
	Min int `json:"min" toml:"min" yaml:"min"`
	Max int `json:"max" toml:"max" yaml:"max"`
}

// Span returns Max - Min.
func (r Range) Span() int { return r.Max - r.Min }

// Contains reports whether n lies in [Min, Max].
func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Validate reports whether r already satisfies the clamp invariant.
func (r Range) Validate() error {
	if r.Min < MinFloor || r.Min > MinCeil {
		return errors.New(errors.ErrCodeInvalidRange, "min must be between %d and %d, got %d", MinFloor, MinCeil, r.Min)
	}
	if r.Max < r.Min+1 || r.Max > MaxCeil {
		return errors.New(errors.ErrCodeInvalidRange, "max must be between %d and %d, got %d", r.Min+1, MaxCeil, r.Max)
	}
	return nil
}

// ClampRange clamps min to [0, 19] first, then max to [min+1, 20].
// The order matters: max is clamped against the already clamped min.
func ClampRange(lo, hi int) Range {
	lo = max(MinFloor, min(MinCeil, lo))
	hi = max(lo+1, min(MaxCeil, hi))
	return Range{Min: lo, Max: hi}
}

// ParseRange clamps form input. Non-numeric values fall back to
// DefaultMin and DefaultMax before clamping.
func ParseRange(lo, hi string) Range {
	return ClampRange(atoiOr(lo, DefaultMin), atoiOr(hi, DefaultMax))
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
