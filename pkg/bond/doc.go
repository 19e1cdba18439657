// Package bond generates number bond problems and lays out the bond diagram.
//
// A number bond relates a whole to two parts that sum to it. It is drawn as a
// triangle of three circles: the two parts on top, the whole below, with
// connector lines running from circle edge to circle edge.
//
// # Problems
//
// A [Problem] is an immutable fact (whole, part1, part2) plus a [Kind] telling
// which value is hidden from the learner. Problems come from a [Generator],
// which takes an injected random source so tests can seed it:
//
//	gen := bond.NewSeededGenerator(42)
//	p := gen.Generate(bond.Range{Min: 3, Max: 7}, []bond.Kind{bond.FindWhole})
//	fmt.Println(p.Caption()) // e.g. "2 + 3 = ?"
//
// # Geometry
//
// [Layout] is a pure function from a [Region] to the three [Node] positions and
// the two trimmed [Segment] connectors. Radius and offsets scale with the
// region and are clamped to a legible range, so the same code serves a single
// on-screen preview and a cell in a six-up printable page.
//
// [Compose] adds the per-node labels and the equation caption for a problem.
package bond
