// Package surface provides the drawing targets a worksheet renders onto.
//
// # Overview
//
// Every target implements [Surface], a small retained set of primitives
// (circles, lines, centered text) plus region lookup. Renderers never know
// whether they are drawing a live preview or a printable page:
//
//   - [Scene]: a single-region preview canvas whose named slots are
//     overwritten in place, serialized with [Scene.WriteSVG] or [Scene.WritePNG]
//   - [Document]: a paginated PDF that hands out one grid cell per problem
//     and adds pages as the cells run out
//   - [Trace]: a recorder for tests and dry runs
//
// # Slots
//
// A [Style] names the diagram element it draws through [Slot]. The preview
// keeps exactly one element per named slot, so refreshing a problem replaces
// the previous circles and labels instead of stacking new ones. Elements in
// [SlotAid] are grouped separately and dropped by [Surface.ClearAids].
//
// # Page Grid
//
// [PageGrid] splits a page into Columns × Rows cells below a header band and
// above a footer band. [Grid2x2] and [Grid3x2] are the two print layouts.
// Grid3x2 is a Landscape grid, so its documents are always sideways.
// [Pages] and [PageSizes] tell how many pages a batch of problems needs.
//
//	doc := surface.NewDocument(surface.Grid2x2(false), surface.Header{Title: "Number Bonds"})
//	for i, p := range problems {
//	    render(doc, p, doc.Region(i))
//	}
//	err := doc.Close(w)
//
// # Text Encoding
//
// PDF core fonts only cover the Windows-1252 character set. [WinAnsi]
// converts text for them; a label that cannot be encoded leaves the
// [Document] in an error state reported by [Surface.Err] and [Document.Close].
package surface
