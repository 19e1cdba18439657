package worksheet

import "github.com/matzehuels/worksheets/pkg/surface"

// Filename names the document for c. A title that Resolve filled in by
// default yields DefaultFilename.
func (c Config) Filename(n Notice) string {
	if n.DefaultTitle {
		return DefaultFilename
	}
	return surface.Filename(c.Title, DefaultFilename)
}
