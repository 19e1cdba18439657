// Package pkg provides the libraries behind the worksheets tool.
//
// # Overview
//
// Worksheets draws printable classroom practice sheets. The centerpiece is the
// number bond worksheet: three circles joined by two lines, two parts on top
// and their whole below, with one number left blank. The pkg directory is
// organized bottom-up:
//
//  1. [bond] - Problems, ranges and the closed-form diagram geometry
//  2. [aids] - Dot groups and number lines laid out beside a diagram
//  3. [surface] - Drawing backends: preview Scene (SVG, PNG) and paginated Document (PDF)
//  4. [worksheet] - Form validation, the Session state machine and shared rendering
//  5. [wordgrid], [phonics] - Word grid and phonics sound sheets
//
// # Architecture
//
// Geometry is computed as plain values and drawn through one interface, so a
// preview and a printed page of the same problem look alike:
//
//	Form (flags, TOML/YAML file, editor)
//	         ↓
//	    [worksheet] Resolve → Config
//	         ↓
//	    [bond] Generator → Problem, Layout → Geometry
//	         ↓
//	    [aids] DotGroups, LayoutNumberLine
//	         ↓
//	    [surface] Scene (SVG/PNG) or Document (PDF)
//
// # Quick Start
//
// Generate a four-problem page:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/worksheets/pkg/worksheet"
//	)
//
//	s := worksheet.NewSession(nil)
//	_, _, err := s.Configure(ctx, worksheet.Form{Min: "3", Max: "7", Kinds: []string{"whole"}})
//	f, _ := os.Create("bonds.pdf")
//	res, err := s.Generate(ctx, f, nil)
//
// Lay out a single diagram without drawing it:
//
//	p := bond.NewSeededGenerator(42).Generate(bond.Range{Min: 0, Max: 10}, bond.Kinds)
//	d := bond.Compose(p, bond.Region{Width: 90, Height: 70})
//
// # Supporting Packages
//
// [errors] - Coded errors (INVALID_RANGE, RENDER_FAILED, DELIVERY_FAILED, ...)
// with user messages and hints.
//
// [observability] - Hooks for configure, preview, generation and delivery
// events. No-op by default; the CLI logs them at debug level.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/bond/...     # Specific package
//	go test -run Example ./... # Examples only
//
// [bond]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/bond
// [aids]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/aids
// [surface]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/surface
// [worksheet]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/worksheet
// [wordgrid]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/wordgrid
// [phonics]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/phonics
// [errors]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/worksheets/pkg/buildinfo
package pkg
