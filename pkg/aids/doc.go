// Package aids lays out the optional visual aids drawn next to a number bond:
// counting dots beside each circle and a number line under the diagram.
//
// Everything here is pure geometry. Callers feed the results to a
// [surface.Surface] with the aid slot so a preview can clear and redraw them
// without touching the diagram itself.
package aids
