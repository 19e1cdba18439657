// Package worksheet turns form input into number bond worksheets.
//
// # Overview
//
// A worksheet run has three steps:
//
//  1. Resolve: raw [Form] values are clamped, defaulted and validated once
//     into a [Config]. Downstream code never re-validates.
//  2. Generate problems with a seeded [bond.Generator].
//  3. Render each problem with [RenderProblem] onto a [surface.Surface]:
//     the single-region preview [surface.Scene] or the paginated
//     [surface.Document].
//
// [Session] drives these steps as a small state machine shared by the CLI
// commands and the terminal editor:
//
//	s := worksheet.NewSession(logger)
//	cfg, notice, err := s.Configure(ctx, form)
//	p, err := s.Preview(ctx) // redraws s.Scene()
//	res, err := s.Generate(ctx, w, spinner)
//
// Generate draws its problems from cfg.Seed alone, so [PlanRun] with the same
// Config lists exactly the problems of the document.
//
// # Configuration Files
//
// [LoadForm] reads a [Form] from TOML or YAML so a class can keep its usual
// settings in a file:
//
//	title = "Bonds to 10"
//	min = "0"
//	max = "10"
//	kinds = ["whole", "part"]
//	layout = "2x2"
//
//	[aids]
//	dots = true
//	number_line = false
package worksheet
