package bond

import (
	"slices"
	"strings"

	"github.com/matzehuels/worksheets/pkg/errors"
)

// Kind selects which value of a number bond is hidden.
type Kind int

const (
	// FindWhole hides the whole: "2 + 3 = ?".
	FindWhole Kind = iota
	// FindPart hides the second part: "5 - 2 = ?".
	FindPart
	// ShowAll hides nothing: "2 + 3 = 5".
	ShowAll
)

// Kinds lists every kind in display order.
var Kinds = []Kind{FindWhole, FindPart, ShowAll}

// Wire names as used by the form layer and config files.
const (
	KindNameWhole = "whole"
	KindNamePart  = "part"
	KindNameMixed = "mixed"
)

var kindNames = map[Kind]string{
	FindWhole: KindNameWhole,
	FindPart:  KindNamePart,
	ShowAll:   KindNameMixed,
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a wire name (case-insensitive, surrounding space ignored).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind,
		"invalid problem type: %q (must be one of: whole, part, mixed)", s)
}

// ParseKinds parses a list of wire names. Blank entries are skipped so a
// trailing comma in "whole,part," is harmless.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// ResolveKinds deduplicates kinds into display order and drops invalid ones.
// An empty result fails closed to FindWhole; forced reports that this
// happened so the form layer can mark the "whole" option as selected.
func ResolveKinds(kinds []Kind) (resolved []Kind, forced bool) {
	for _, k := range Kinds {
		if slices.Contains(kinds, k) {
			resolved = append(resolved, k)
		}
	}
	if len(resolved) == 0 {
		return []Kind{FindWhole}, true
	}
	return resolved, false
}

// KindNames returns the wire names of kinds.
func KindNames(kinds []Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
