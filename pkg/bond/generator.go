package bond

import "math/rand/v2"

// Generator produces random problems from an injected random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator returns a deterministic Generator for seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate draws one problem. The whole is uniform over r (inclusive), part1
// is uniform over [0, whole] and part2 is the remainder. The kind is drawn
// uniformly from kinds; an empty slice yields FindWhole.
//
// r is clamped first, so Generate never panics on a degenerate range.
func (g *Generator) Generate(r Range, kinds []Kind) Problem {
	r = ClampRange(r.Min, r.Max)

	whole := r.Min + g.rng.IntN(r.Span()+1)
	part1 := g.rng.IntN(whole + 1)

	kind := FindWhole
	if len(kinds) > 0 {
		kind = kinds[g.rng.IntN(len(kinds))]
	}

	return Problem{
		Whole: whole,
		Part1: part1,
		Part2: whole - part1,
		Kind:  kind,
	}
}

// Batch draws n independent problems.
func (g *Generator) Batch(r Range, kinds []Kind, n int) []Problem {
	if n <= 0 {
		return nil
	}
	out := make([]Problem, n)
	for i := range out {
		out[i] = g.Generate(r, kinds)
	}
	return out
}
