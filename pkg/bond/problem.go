package bond

import (
	"fmt"
	"strconv"
)

// Unknown is the glyph drawn in place of a hidden value.
const Unknown = "?"

// Problem is one number bond fact. Part1 + Part2 == Whole and all values are
// non-negative for every Problem produced by a Generator.
type Problem struct {
	Whole int
	Part1 int
	Part2 int
	Kind  Kind
}

// Valid reports whether the problem satisfies the bond invariant.
func (p Problem) Valid() bool {
	return p.Part1 >= 0 && p.Part2 >= 0 && p.Part1+p.Part2 == p.Whole && p.Kind.Valid()
}

// Caption returns the equation printed under the diagram.
func (p Problem) Caption() string {
	switch p.Kind {
	case FindPart:
		return fmt.Sprintf("%d - %d = %s", p.Whole, p.Part1, Unknown)
	case ShowAll:
		return fmt.Sprintf("%d + %d = %d", p.Part1, p.Part2, p.Whole)
	default:
		return fmt.Sprintf("%d + %d = %s", p.Part1, p.Part2, Unknown)
	}
}

// Labels returns the text for the left, right and bottom circles.
//
// The bottom circle always holds the unknown unless every value is shown;
// for FindPart the top circles carry the whole and the known part.
func (p Problem) Labels() (left, right, bottom string) {
	switch p.Kind {
	case FindPart:
		return itoa(p.Whole), itoa(p.Part1), Unknown
	case ShowAll:
		return itoa(p.Part1), itoa(p.Part2), itoa(p.Whole)
	default:
		return itoa(p.Part1), itoa(p.Part2), Unknown
	}
}

// DotCounts returns how many counting dots sit beside the left, right and
// bottom circles. They mirror the values printed in those circles.
func (p Problem) DotCounts() (left, right, bottom int) {
	switch p.Kind {
	case FindPart:
		return p.Whole, p.Part1, 0
	case ShowAll:
		return p.Part1, p.Part2, p.Whole
	default:
		return p.Part1, p.Part2, 0
	}
}

// Answer returns the hidden value, or false for ShowAll.
func (p Problem) Answer() (int, bool) {
	switch p.Kind {
	case FindWhole:
		return p.Whole, true
	case FindPart:
		return p.Part2, true
	default:
		return 0, false
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
